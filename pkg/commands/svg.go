package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Maksimka101/daily-routine-calendar/pkg/commands/options"
	"github.com/Maksimka101/daily-routine-calendar/pkg/runner/svgout"
)

func addSVG(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	var out, theme string

	cmd := &cobra.Command{
		Use:   "svg [schedule]",
		Short: "Export a schedule's timeline as SVG",
		Example: `
dayplan svg -o today.svg
dayplan svg "Work day" --theme dark.yaml
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

			s := svgout.SVG{
				Schedule: so.Schedule,
				Output:   out,
				Theme:    theme,
				Service:  svc,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file. Defaults to stdout.")
	cmd.Flags().StringVar(&theme, "theme", "", "Yaml theme file overriding the default look.")

	topLevel.AddCommand(cmd)
}
