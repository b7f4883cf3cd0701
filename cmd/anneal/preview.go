package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/anneal-ml/anneal/schedule"
)

// scheduleSpec is the YAML schema accepted by --config. Flags override
// nothing: a config file and flags are mutually exclusive.
type scheduleSpec struct {
	Type       string  `yaml:"type"` // factor | multifactor | cosine
	Rate       float64 `yaml:"rate"`
	Interval   int     `yaml:"interval"`
	Factor     float64 `yaml:"factor"`
	Floor      float64 `yaml:"floor"`
	Milestones []int   `yaml:"milestones"`
	SlowStart  int     `yaml:"slow_start"`
	MaxRate    float64 `yaml:"max_rate"`
	MinRate    float64 `yaml:"min_rate"`
	MaxUpdate  int     `yaml:"max_update"`
	Steps      int     `yaml:"steps"`
}

func newPreviewCmd() *cobra.Command {
	var (
		configPath string
		spec       scheduleSpec
	)

	cmd := &cobra.Command{
		Use:   "preview [flags]",
		Short: "Print the learning rate transitions of a schedule",
		Long: `Sweep the update counter across a schedule and print one row per
learning rate transition.

The schedule is described either by a YAML file:

  type: factor
  rate: 0.1
  interval: 1000
  factor: 0.5
  steps: 10000

or by flags:

  anneal preview --type multifactor --rate 0.1 --milestones 30000,60000 --decay 0.1 --steps 100000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
				if err := yaml.Unmarshal(data, &spec); err != nil {
					return fmt.Errorf("failed to parse config: %w", err)
				}
			}
			return runPreview(cmd, spec)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML schedule description")
	cmd.Flags().StringVar(&spec.Type, "type", "factor", "schedule type: factor, multifactor or cosine")
	cmd.Flags().Float64Var(&spec.Rate, "rate", 0.01, "initial learning rate")
	cmd.Flags().IntVar(&spec.Interval, "interval", 0, "updates between decays (factor)")
	cmd.Flags().Float64Var(&spec.Factor, "decay", 1.0, "decay factor in (0, 1]")
	cmd.Flags().Float64Var(&spec.Floor, "floor", 0, "minimum rate (factor)")
	cmd.Flags().IntSliceVar(&spec.Milestones, "milestones", nil, "decay milestones (multifactor)")
	cmd.Flags().IntVar(&spec.SlowStart, "slow-start", 0, "slow-start window threshold")
	cmd.Flags().Float64Var(&spec.MaxRate, "max-rate", 0, "peak rate (cosine)")
	cmd.Flags().Float64Var(&spec.MinRate, "min-rate", 0, "final rate (cosine)")
	cmd.Flags().IntVar(&spec.MaxUpdate, "max-update", 0, "annealing horizon (cosine)")
	cmd.Flags().IntVar(&spec.Steps, "steps", 10_000, "number of updates to sweep")
	return cmd
}

func buildScheduler(spec scheduleSpec) (schedule.Scheduler, error) {
	// The preview renders transitions itself; drop the schedule's own log
	// records.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	switch spec.Type {
	case "factor", "":
		return schedule.NewFactor(schedule.FactorConfig{
			Rate:      spec.Rate,
			Interval:  spec.Interval,
			Factor:    spec.Factor,
			Floor:     spec.Floor,
			SlowStart: spec.SlowStart,
			Logger:    logger,
		})
	case "multifactor":
		return schedule.NewMultiFactor(schedule.MultiFactorConfig{
			Rate:       spec.Rate,
			Milestones: spec.Milestones,
			Factor:     spec.Factor,
			SlowStart:  spec.SlowStart,
			Logger:     logger,
		})
	case "cosine":
		return schedule.NewCosine(schedule.CosineConfig{
			MaxRate:   spec.MaxRate,
			MinRate:   spec.MinRate,
			MaxUpdate: spec.MaxUpdate,
			Logger:    logger,
		})
	default:
		return nil, fmt.Errorf("unknown schedule type %q", spec.Type)
	}
}

func runPreview(cmd *cobra.Command, spec scheduleSpec) error {
	sched, err := buildScheduler(spec)
	if err != nil {
		return err
	}
	if spec.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", spec.Steps)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Update", "Rate"})

	var prev float64
	for update := 0; update <= spec.Steps; update++ {
		rate, err := sched.Rate(update)
		if err != nil {
			return err
		}
		if update == 0 || rate != prev {
			t.AppendRow(table.Row{update, fmt.Sprintf("%.8g", rate)})
		}
		prev = rate
	}
	t.Render()
	return nil
}
