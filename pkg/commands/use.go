package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/use"
)

func addUse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "use <schedule>",
		Short: "Switch the active schedule",
		Example: `
dayplan use "Work day"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a schedule id or name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			u := use.Use{
				Schedule: args[0],
				Service:  svc,
			}
			return output.HandleError(u.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
