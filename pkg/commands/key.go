package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the default mark templates and their offsets",
		Example: `
dayplan key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			k := key.Key{}
			return output.HandleError(k.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
