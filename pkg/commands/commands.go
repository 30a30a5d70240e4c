package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Maksimka101/daily-routine-calendar/pkg/app"
	"github.com/Maksimka101/daily-routine-calendar/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Personal day planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addKey(topLevel)
	addCreate(topLevel)
	addGet(topLevel)
	addSet(topLevel)
	addRm(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addUse(topLevel)
	addTimeline(topLevel)
	addSVG(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// loadService wires the disk-backed stores into a Service.
func loadService() (*app.Service, error) {
	st, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(st), nil
}
