package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/timeline"
)

func addTimeline(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "timeline [schedule]",
		Short: "Render a schedule's timeline in the terminal",
		Example: `
dayplan timeline
dayplan timeline "Work day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				so.Schedule = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			t := timeline.Timeline{
				Schedule: so.Schedule,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(t.Do(context.Background()))
		},
	}

	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
