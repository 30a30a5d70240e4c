package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/set"
)

func addSet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var name, wake, bed, sched string

	cmd := &cobra.Command{
		Use:   "set [schedule]",
		Short: "Rename or retime a schedule",
		Long: "Rename or retime a schedule. Changing the wake time or bedtime " +
			"shifts the schedule's default marks by the same amount; marks you " +
			"added yourself stay where they are.",
		Example: `
dayplan set --wake 08:00
dayplan set "Work day" --bed 23:30 --name "Late day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				sched = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			s := set.Set{
				Schedule: sched,
				Name:     name,
				WakeTime: wake,
				Bedtime:  bed,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New schedule name.")
	cmd.Flags().StringVar(&wake, "wake", "", `New wake time, example: --wake="08:00".`)
	cmd.Flags().StringVar(&bed, "bed", "", `New bedtime, example: --bed="23:00".`)
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
