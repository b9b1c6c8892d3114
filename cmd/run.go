package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/headstamp/headstamp/constants/lipgloss"
	"github.com/headstamp/headstamp/header_engine"
	"github.com/headstamp/headstamp/header_engine/models"
	"github.com/headstamp/headstamp/utils"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

type runTotals struct {
	updated   int
	inserted  int
	unchanged int
	skipped   int
	failed    int
}

// runHeaderPass collects candidate files under dir and processes each one
// through the engine. In dry-run mode the computed changes are shown as
// diffs; otherwise they are written back atomically. The pass keeps going
// past per-file failures and reports them at the end; the returned error is
// non-nil iff at least one file failed.
func runHeaderPass(deps *RootDependencies, dir string, dryRun bool) error {
	if deps.Identity.Name == "" {
		return fmt.Errorf("no author name: provide --name, set HEADSTAMP_NAME, or configure git user.name")
	}

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(deps.Cwd, dir)
	}

	cfg := deps.Config
	extensions := cfg.NormalizedExtensions()
	if extensions == nil {
		extensions = header_engine.SupportedExtensions()
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	spinnerScan, _ := spinner.Start("Scanning files...")
	files, err := utils.CollectFiles(dir, utils.CollectOptions{
		Extensions: extensions,
		Recursive:  cfg.Recursive,
		Order:      cfg.Order,
	})
	spinnerScan.Stop()
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	if len(files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No files found with the given extensions."))
		return nil
	}

	stamps := planStamps(deps, len(files))
	opts := models.Options{
		AddMissing:    cfg.AddMissing,
		PreserveWidth: cfg.PreserveWidth,
		Width:         cfg.Width,
		ClampSameDay:  cfg.ClampSameDay,
	}

	var totals runTotals
	var failures []error
	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	for i, file := range files {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			totals.failed++
			failures = append(failures, fmt.Errorf("%s: %w", file.RelativePath, err))
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("FAIL (read): %s: %v", file.RelativePath, err)))
			continue
		}

		result := deps.Engine.ProcessFile(file.Path, file.RelativePath, content, stamps[i], deps.Identity, opts)

		switch result.Outcome.Kind {
		case models.OutcomeFailed:
			totals.failed++
			failures = append(failures, result.Err)
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("FAIL (%s): %s", result.Outcome.Reason, file.RelativePath)))
		case models.OutcomeSkipped:
			totals.skipped++
		case models.OutcomeUnchanged:
			totals.unchanged++
		}

		if !result.Changed() {
			continue
		}

		if !dryRun {
			if err := utils.WriteFileAtomic(file.Path, result.NewContent); err != nil {
				totals.failed++
				failures = append(failures, err)
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("FAIL (write): %s: %v", file.RelativePath, err)))
				continue
			}
		}

		printOutcome(result, dryRun)
		if result.Outcome.Kind == models.OutcomeInserted {
			totals.inserted++
		} else {
			totals.updated++
		}

		if dryRun {
			diff := utils.UnifiedDiff(file.RelativePath, string(content), string(result.NewContent))
			utils.PrintDiff(os.Stdout, diff, cfg.Theme, colorize)
		}
	}

	printSummary(len(files), totals)

	if len(failures) > 0 {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("\n%d file(s) failed:", len(failures))))
		for _, failure := range failures {
			fmt.Println(lipgloss.Red.Render("  " + failure.Error()))
		}
		return fmt.Errorf("%d file(s) failed", len(failures))
	}
	return nil
}

// planStamps assigns each file its (created, updated) pair for this run,
// either spread across the day or pinned to the run's single snapshot.
func planStamps(deps *RootDependencies, n int) []models.Stamp {
	timeline := deps.Config.Timeline
	if timeline == nil || !timeline.Enabled {
		return header_engine.FixedTimeline(n, deps.Now)
	}
	return header_engine.PlanTimeline(n, deps.Now, header_engine.TimelinePlan{
		GapMin:  timeline.GapMin,
		GapMax:  timeline.GapMax,
		WorkMin: timeline.WorkMin,
		WorkMax: timeline.WorkMax,
		Seed:    timeline.Seed,
	})
}

func printOutcome(result models.FileResult, dryRun bool) {
	style := lipgloss.Green
	if result.Outcome.Kind == models.OutcomeInserted {
		style = lipgloss.BlueSky
	}
	fmt.Println(style.Render(outcomeLine(result, dryRun)))
}

// outcomeLine formats the per-file report line: label, path, the stamp pair
// being written and the xxh3 fingerprint of the new content.
func outcomeLine(result models.FileResult, dryRun bool) string {
	fields := result.Outcome.NewFields

	label := "UPDATED"
	if result.Outcome.Kind == models.OutcomeInserted {
		label = "INSERTED"
	}
	if dryRun {
		if result.Outcome.Kind == models.OutcomeInserted {
			label = "WOULD INSERT"
		} else {
			label = "WOULD UPDATE"
		}
	}

	return fmt.Sprintf("%s: %s [%s -> %s] (%016x)",
		label,
		result.RelativePath,
		fields.CreatedAt.Format(models.TimeLayout),
		fields.UpdatedAt.Format(models.TimeLayout),
		result.NewHash)
}

func printSummary(total int, totals runTotals) {
	fmt.Printf("\nDone. Files: %d. Updated: %d. Inserted: %d. Unchanged: %d. Skipped: %d. Failed: %d.\n",
		total, totals.updated, totals.inserted, totals.unchanged, totals.skipped, totals.failed)
}
