package cmd

import (
	"github.com/headstamp/headstamp/header_engine"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stylesCmd: headstamp styles
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List supported file extensions and their comment styles",
	Run: func(cmd *cobra.Command, args []string) {
		data := pterm.TableData{{"Extension", "Style", "Frame"}}
		for _, ext := range header_engine.SupportedExtensions() {
			style, _ := header_engine.ResolveStyle(ext)
			data = append(data, []string{ext, style.Name, style.Open + "…" + style.Close})
		}
		_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(stylesCmd)
}
