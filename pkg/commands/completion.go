package commands

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(dayplan completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(dayplan completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// scheduleCompletions offers schedule names for flag completion.
func scheduleCompletions(toComplete string) []string {
	svc, err := loadService()
	if err != nil {
		return nil
	}
	var names []string
	for _, sc := range svc.Schedules() {
		if toComplete == "" || strings.HasPrefix(sc.Name, toComplete) {
			names = append(names, strconv.Quote(sc.Name))
		}
	}
	return names
}
