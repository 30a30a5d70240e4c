package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	mo := &options.MarkOptions{}
	so := &options.ScheduleOptions{}
	io := &options.IDOptions{}
	var in string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a mark to a schedule",
		Example: `
dayplan add Walk the dog --at 18:30 --emoji 🐕
dayplan add Standup --at 9:45 -s "Work day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a mark title")
			}
			mo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			a := add.Add{
				Schedule:    so.Schedule,
				In:          in,
				Emoji:       mo.Emoji,
				Title:       mo.Title,
				Description: mo.Description,
				Time:        mo.Time,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&in, "in", "", `Place the mark relative to now, example: --in=1h30m.`)
	options.AddMarkArgs(cmd, mo)
	options.AddScheduleArg(cmd, so)
	options.AddShowIDArg(cmd, io)

	_ = cmd.RegisterFlagCompletionFunc("schedule", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return scheduleCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
