package options

import (
	"github.com/spf13/cobra"
)

// MarkOptions captures the mark content flags.
type MarkOptions struct {
	Emoji       string
	Title       string
	Description string
	Time        string
}

// AddMarkArgs wires the mark content flags on the provided command.
func AddMarkArgs(cmd *cobra.Command, o *MarkOptions) {
	cmd.Flags().StringVarP(&o.Time, "at", "t", "",
		`Time of the mark, example: --at="07:30" or --at=7.`)
	cmd.Flags().StringVarP(&o.Emoji, "emoji", "e", "",
		"Emoji shown on the timeline.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description.")
}

// AddMarkTitleArg wires the title flag for commands that do not take the
// title as positional arguments.
func AddMarkTitleArg(cmd *cobra.Command, o *MarkOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "",
		"Title of the mark.")
}

// IDOptions captures id display and selection flags.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArg wires the id column toggle.
func AddShowIDArg(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show ids.")
}
