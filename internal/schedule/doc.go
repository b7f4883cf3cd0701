// Package schedule implements learning rate schedules for training loops.
//
// A Scheduler maps a monotonically non-decreasing update counter (roughly
// one per optimizer step) to a learning rate. Three schedules are provided:
//   - Factor: multiply the rate by a fixed factor every N updates
//   - MultiFactor: multiply the rate by a fixed factor at explicit milestones
//   - Cosine: anneal the rate along a half cosine wave
//
// Schedulers reconstruct their state when training resumes from a
// checkpoint: the first call with a non-zero counter replays every decay
// boundary the scheduler missed, so a resumed run produces the same rates
// as an uninterrupted one.
//
// Example usage:
//
//	sched, err := schedule.NewFactor(schedule.FactorConfig{
//	    Rate:     0.1,
//	    Interval: 1000,
//	    Factor:   0.5,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for step := 1; step <= maxSteps; step++ {
//	    lr, _ := sched.Rate(step)
//	    optimizer.SetLR(lr)
//	    // ... forward, backward, optimizer.Step ...
//	}
package schedule
