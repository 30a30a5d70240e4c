package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/create"
)

func addCreate(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var wake, bed string
	var activate bool
	var name string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a schedule seeded with its default marks",
		Example: `
dayplan create "Work day" --wake 06:30 --bed 23:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a schedule name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			c := create.Create{
				Name:     name,
				WakeTime: wake,
				Bedtime:  bed,
				Activate: activate,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&wake, "wake", "", `Wake time, example: --wake="07:00".`)
	cmd.Flags().StringVar(&bed, "bed", "", `Bedtime, example: --bed="22:00".`)
	cmd.Flags().BoolVar(&activate, "use", false, "Make the new schedule active.")
	options.AddShowIDArg(cmd, io)

	topLevel.AddCommand(cmd)
}
