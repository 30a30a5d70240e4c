package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "remove <mark id>",
		Short: "Remove a mark from a schedule",
		Example: `
dayplan remove gym
dayplan remove 5e9d1c32-70e1-4f5e-8f6a-4a1a9c2b7f10 -s "Work day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a mark id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			r := remove.Remove{
				Schedule: so.Schedule,
				MarkID:   args[0],
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddScheduleArg(cmd, so)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
