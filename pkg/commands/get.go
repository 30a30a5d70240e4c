package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [schedule]",
		Short: "List a schedule and its marks in timeline order",
		Example: `
dayplan get
dayplan get "Work day"
dayplan get --all --id
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

			g := get.Get{
				Schedule: so.Schedule,
				All:      so.All,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddAllSchedulesArg(cmd, so)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
