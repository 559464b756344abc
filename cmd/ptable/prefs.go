package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/ptable/internal/prefs"
	"github.com/muurk/ptable/internal/ui"
)

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsPathCmd)
	rootCmd.AddCommand(prefsCmd)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change stored defaults",
	Long: `Manage the preferences file that supplies defaults for the global flags.

Keys: ` + strings.Join(prefs.Keys(), ", ") + `

Flags and PTABLE_* environment variables take precedence over stored values.`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored preferences",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := prefs.Load()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(prefs.Keys()))
		for _, key := range prefs.Keys() {
			value, _ := p.Get(key)
			if value == "" {
				value = "(default)"
			}
			rows = append(rows, []string{key, value, settings.GetString(key)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.TableView([]string{"Key", "Stored", "Effective"}, rows))
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Store a preference; omit the value to clear it",
	Example: `  ptable prefs set theme dark
  ptable prefs set elements https://example.com/elements.json
  ptable prefs set theme`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Start over when the stored file is unreadable.
		p, err := prefs.Load()
		if err != nil {
			p = prefs.New()
		}

		value := ""
		if len(args) == 2 {
			value = args[1]
		}
		if err := p.Set(args[0], value); err != nil {
			return err
		}
		if err := p.Save(); err != nil {
			return err
		}

		if value == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], value)
		}
		return nil
	},
}

var prefsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := prefs.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
