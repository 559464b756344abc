package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/ptable/internal/browser"
	"github.com/muurk/ptable/internal/dataset"
	"github.com/muurk/ptable/internal/prefs"
	"github.com/muurk/ptable/internal/render"
	"github.com/muurk/ptable/internal/ui"
)

// errValidationFailed is returned after the failure box has been printed.
var errValidationFailed = errors.New("validation failed")

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(elementCmd)
	rootCmd.AddCommand(browseCmd)
}

// renderCmd writes the SVG document
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the periodic table as SVG",
	Long: `Load the element and configuration documents and render the table.

The SVG is written to --output, or to stdout when no output is given.
--png additionally rasterizes the table (boxes and colors, no text) for a
quick look, and --data-uri prints a base64 data URI instead of markup.`,
	Example: `  # Write table.svg with the default theme and layout
  ptable render -o table.svg

  # Dark theme, compact layout, from a remote dataset
  ptable render -e https://example.com/elements.json -t dark -l compact > table.svg

  # PNG preview at twice the SVG size
  ptable render -o table.svg --png table.png --scale 2`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "SVG output path (default stdout)")
	renderCmd.Flags().String("png", "", "also write a PNG preview to this path")
	renderCmd.Flags().Float64("scale", 0, "PNG scale factor (default 1)")
	renderCmd.Flags().Bool("data-uri", false, "print a base64 data URI instead of SVG markup")

	_ = settings.BindPFlag(prefs.KeyOutput, renderCmd.Flags().Lookup("output"))
	_ = settings.BindPFlag(prefs.KeyPNGScale, renderCmd.Flags().Lookup("scale"))
}

func runRender(cmd *cobra.Command, args []string) error {
	elements, cfg, err := newLoader().Load(cmd.Context())
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	svg, err := r.Generate(elements, cfg, themeName(), layoutName())
	if err != nil {
		return err
	}

	out := svg
	if dataURI, _ := cmd.Flags().GetBool("data-uri"); dataURI {
		out = render.DataURI(svg) + "\n"
	}

	output := settings.GetString(prefs.KeyOutput)
	if output == "" || output == "-" {
		if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := os.WriteFile(output, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	pngPath, _ := cmd.Flags().GetString("png")
	if pngPath != "" {
		if err := writePNG(pngPath, r.Export(), settings.GetFloat64(prefs.KeyPNGScale)); err != nil {
			return err
		}
	}

	if output != "" && output != "-" {
		res := ui.NewSuccessResult("Table rendered").
			AddDetail("Output", output).
			AddDetail("Elements", strconv.Itoa(len(elements))).
			AddDetail("Theme", themeName()).
			AddDetail("Layout", layoutName())
		if pngPath != "" {
			res.AddDetail("PNG", pngPath)
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Render())
	}
	return nil
}

func writePNG(path, svg string, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render.WritePNG(f, svg, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// validateCmd checks both documents
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the element and configuration documents",
	Long: `Load and validate both documents without rendering.

On success a summary of the loaded data is shown. On failure the first
problem found is reported together with a hint on how to fix it, and the
command exits with a non-zero status.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	loader := newLoader()
	elements, cfg, err := loader.Load(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewFailureResult("Validation failed", err, dataset.Hint(err)).Render())
		return errValidationFailed
	}

	// The selected theme and layout must resolve too, or render would fail.
	if _, err := render.Generate(elements, cfg, themeName(), layoutName()); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewFailureResult("Selection is not renderable", err, dataset.Hint(err)).Render())
		return errValidationFailed
	}

	if len(elements) == 0 {
		res := ui.NewWarningResult("No elements loaded").
			AddDetail("Elements", "0 ("+loader.ElementsLocator+")").
			AddDetail("Layouts", strings.Join(cfg.LayoutNames(), ", ")).
			AddDetail("Themes", strings.Join(cfg.ThemeNames(), ", "))
		res.Troubleshooting = []string{"The rendered table will be an empty canvas"}
		fmt.Fprintln(cmd.OutOrStdout(), res.Render())
		return nil
	}

	res := ui.NewSuccessResult("Documents are valid").
		AddDetail("Elements", fmt.Sprintf("%d (%s)", len(elements), loader.ElementsLocator)).
		AddDetail("Categories", strconv.Itoa(len(dataset.Categories(elements)))).
		AddDetail("Layouts", strings.Join(cfg.LayoutNames(), ", ")).
		AddDetail("Themes", strings.Join(cfg.ThemeNames(), ", "))
	fmt.Fprintln(cmd.OutOrStdout(), res.Render())
	return nil
}

// categoriesCmd lists categories with counts and theme colors
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List element categories",
	Long: `List the distinct element categories in order of first appearance,
with element counts and the fill color the selected theme assigns.`,
	RunE: runCategories,
}

func runCategories(cmd *cobra.Command, args []string) error {
	elements, cfg, err := newLoader().Load(cmd.Context())
	if err != nil {
		return err
	}
	theme, err := cfg.Theme(themeName())
	if err != nil {
		return err
	}

	if len(elements) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.NewWarningResult("No categories").
			AddDetail("Elements", "the dataset is empty").Render())
		return nil
	}

	counts := make(map[string]int)
	for _, el := range elements {
		counts[el.Category]++
	}

	var rows [][]string
	for _, category := range dataset.Categories(elements) {
		color := theme.CategoryColor(category)
		rows = append(rows, []string{browser.Swatch(color) + " " + category, strconv.Itoa(counts[category]), color})
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.TableView([]string{"Category", "Elements", "Color"}, rows))
	return nil
}

// elementCmd shows one element
var elementCmd = &cobra.Command{
	Use:     "element <number>",
	Short:   "Show one element by atomic number",
	Example: `  ptable element 26`,
	Args:    cobra.ExactArgs(1),
	RunE:    runElement,
}

func runElement(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid atomic number %q", args[0])
	}

	loader := newLoader()
	if _, err := loader.LoadElements(cmd.Context()); err != nil {
		return err
	}

	el, ok := loader.GetElement(number)
	if !ok {
		return fmt.Errorf("no element with atomic number %d", number)
	}
	fmt.Fprint(cmd.OutOrStdout(), el.FormatDetailed())
	return nil
}

// browseCmd launches the interactive browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse elements interactively",
	Long: `Browse the loaded elements in a full-screen terminal UI.

Use tab and shift+tab to filter by category, enter for details, / to
search and q to quit.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdout) {
		return errors.New("browse needs an interactive terminal")
	}

	elements, cfg, err := newLoader().Load(cmd.Context())
	if err != nil {
		return err
	}
	theme, err := cfg.Theme(themeName())
	if err != nil {
		return err
	}
	return browser.Run(elements, theme)
}
