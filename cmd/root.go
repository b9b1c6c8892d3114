package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/headstamp/headstamp/config"
	"github.com/headstamp/headstamp/constants/lipgloss"
	"github.com/headstamp/headstamp/header_engine"
	"github.com/headstamp/headstamp/header_engine/contracts"
	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/headstamp/headstamp/utils"
	"github.com/spf13/cobra"
)

// rootCmd: headstamp
var rootCmd = &cobra.Command{
	Use:   "headstamp",
	Short: "Normalize author and timestamp headers across a source tree.",
	Long: `headstamp batch-inspects source files and keeps a fixed-width informational
header comment at the top of each one: the author's identity, a creation
timestamp and a last-modified timestamp, rendered in the comment style of the
file's language. Existing headers are updated in place, missing headers can be
inserted, and a dry-run mode previews every change as a diff.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println("headstamp version", config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// RootDependencies holds everything the subcommands share: the resolved
// configuration, the engine, the author identity and the single wall-clock
// snapshot taken once per run so every file is timestamped consistently.
type RootDependencies struct {
	Config   *config.Config
	Cwd      string
	Engine   contracts.IHeaderEngine
	Identity models.Identity
	Now      time.Time
}

func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		return nil
	}

	cfg := config.LoadConfigs(rootCmd, cwd)
	if err := cfg.Validate(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Invalid configuration: %v", err)))
		return nil
	}

	engine := header_engine.NewEngine(filepath.Join(cwd, ".headstamp-cache"), cfg.EnableCache)

	return &RootDependencies{
		Config:   cfg,
		Cwd:      cwd,
		Engine:   engine,
		Identity: resolveIdentity(cfg, cwd),
		Now:      time.Now(),
	}
}

// resolveIdentity takes the configured author identity and falls back to the
// local git configuration when no name was supplied.
func resolveIdentity(cfg *config.Config, cwd string) models.Identity {
	name := cfg.Name
	email := cfg.Email

	if name == "" {
		git := utils.NewGitIdentity(cwd)
		if err := git.CheckGitRepo(); err == nil {
			if n, err := git.UserName(); err == nil {
				name = n
			}
			if email == "" {
				if e, err := git.UserEmail(); err == nil {
					email = e
				}
			}
		}
	}

	return models.Identity{Name: name, Email: email}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	config.InitFlags(rootCmd)
}
