// Ptable renders a periodic table of the elements as SVG.
//
// Element records and presentation settings (layouts, themes, typography)
// are read from two JSON or YAML documents, local or over HTTP, validated,
// and drawn as a grid of gradient-filled boxes.
//
// Usage:
//
//	ptable [command] [flags]
//
// See 'ptable --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/muurk/ptable/internal/logging"
	"github.com/muurk/ptable/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ptable",
	Short: "Periodic table SVG renderer",
	Long: `Render a periodic table of the elements as a standalone SVG document.

Element data and presentation settings come from two documents (JSON or
YAML, local paths or http(s) URLs). Defaults for every flag can be stored
with 'ptable prefs set' or given as PTABLE_* environment variables.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ptable %s\n", version.Full())
	},
}
