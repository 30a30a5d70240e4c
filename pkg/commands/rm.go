package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/rm"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <schedule>",
		Short: "Delete a schedule and all of its marks",
		Long: "Delete a schedule and all of its marks. When the last schedule " +
			"is deleted a fresh default one takes its place.",
		Example: `
dayplan rm "Work day"
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

			r := rm.Rm{
				Schedule: args[0],
				Service:  svc,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
