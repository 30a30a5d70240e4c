// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures schedule selection flags for commands.
type ScheduleOptions struct {
	Schedule string
	All      bool
}

// AddScheduleArg wires the schedule selector; empty means the active one.
func AddScheduleArg(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.Schedule, "schedule", "s", "",
		"Schedule id or name. Defaults to the active schedule.")
}

// AddAllSchedulesArg registers the flag that operates on all schedules.
func AddAllSchedulesArg(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"All schedules.")
}
