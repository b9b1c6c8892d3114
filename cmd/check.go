package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd: headstamp check
var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Preview header changes as diffs without writing anything",
	Long: `The 'check' subcommand performs exactly the same computation as 'apply' but
routes every result to a diff on stdout instead of storage. The preview is
byte-accurate: whatever 'check' shows is precisely what 'apply' would write.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps := handleRootCommand(cmd)
		if deps == nil {
			return fmt.Errorf("failed to initialize")
		}

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		return runHeaderPass(deps, dir, true)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
