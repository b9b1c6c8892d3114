package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/headstamp/headstamp/constants/lipgloss"
	"github.com/headstamp/headstamp/utils"
	"github.com/spf13/cobra"
)

// applyCmd: headstamp apply
var applyCmd = &cobra.Command{
	Use:   "apply [directory]",
	Short: "Rewrite headers in place across a directory",
	Long: `The 'apply' subcommand scans a directory for supported source files and
rewrites their headers in place: existing headers get a fresh Updated stamp
while their Created fields stay untouched, and files without a header get a
new one when --add_missing is set. Each file is written atomically, so an
interrupted run never leaves a half-written header behind.`,
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

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			reader := bufio.NewReader(os.Stdin)
			ok, err := utils.ConfirmPrompt(reader, fmt.Sprintf("Rewrite headers under %q?", dir))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(lipgloss.Yellow.Render("Apply cancelled."))
				return nil
			}
		}

		return runHeaderPass(deps, dir, false)
	},
}

func init() {
	applyCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(applyCmd)
}
