package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	mo := &options.MarkOptions{}
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <mark id>",
		Short: "Edit a mark",
		Example: `
dayplan edit breakfast --at 8:15
dayplan edit 5e9d1c32-70e1-4f5e-8f6a-4a1a9c2b7f10 --title "Walk the dog"
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

			e := edit.Edit{
				Schedule:    so.Schedule,
				MarkID:      args[0],
				Emoji:       mo.Emoji,
				Title:       mo.Title,
				Description: mo.Description,
				Time:        mo.Time,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			return output.HandleError(e.Do(context.Background()))
		},
	}

	options.AddMarkArgs(cmd, mo)
	options.AddMarkTitleArg(cmd, mo)
	options.AddScheduleArg(cmd, so)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
