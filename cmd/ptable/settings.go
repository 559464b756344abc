package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muurk/ptable/internal/dataset"
	"github.com/muurk/ptable/internal/logging"
	"github.com/muurk/ptable/internal/prefs"
	"github.com/muurk/ptable/internal/render"
)

// Built-in defaults, used when neither flags, environment nor preferences
// provide a value.
const (
	defaultElements = "data/elements.json"
	defaultConfig   = "data/config.json"
	defaultPNGScale = 1.0
)

// settings merges, from highest to lowest priority: flags, PTABLE_*
// environment variables, the preferences file and built-in defaults.
var settings = viper.New()

func init() {
	settings.SetEnvPrefix("PTABLE")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	settings.SetDefault(prefs.KeyElements, defaultElements)
	settings.SetDefault(prefs.KeyConfig, defaultConfig)
	settings.SetDefault(prefs.KeyTheme, render.DefaultTheme)
	settings.SetDefault(prefs.KeyLayout, render.DefaultLayout)
	settings.SetDefault(prefs.KeyPNGScale, defaultPNGScale)

	flags := rootCmd.PersistentFlags()
	flags.StringP("elements", "e", "", "elements document path or URL (default "+defaultElements+")")
	flags.StringP("config", "c", "", "configuration document path or URL (default "+defaultConfig+")")
	flags.StringP("theme", "t", "", "theme name (default "+render.DefaultTheme+")")
	flags.StringP("layout", "l", "", "layout name (default "+render.DefaultLayout+")")
	flags.String("log-level", "", "log level (debug, info, warn, error); silent when unset")

	for _, key := range []string{prefs.KeyElements, prefs.KeyConfig, prefs.KeyTheme, prefs.KeyLayout, "log-level"} {
		_ = settings.BindPFlag(key, flags.Lookup(key))
	}
}

// setup runs before every command: it starts logging and layers the
// preferences file under flags and environment.
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(settings.GetString("log-level")); err != nil {
		return err
	}

	p, err := prefs.Load()
	if err != nil {
		// A broken preferences file must not block 'prefs set' from fixing it.
		logging.Warn("Ignoring preferences file", zap.Error(err))
		return nil
	}
	applyPreferences(settings, p)
	return nil
}

// applyPreferences turns non-empty preferences into defaults.
func applyPreferences(v *viper.Viper, p *prefs.Preferences) {
	for key, value := range p.Values() {
		if value != "" {
			v.SetDefault(key, value)
		}
	}
}

func newLoader() *dataset.Loader {
	return dataset.NewLoader(settings.GetString(prefs.KeyElements), settings.GetString(prefs.KeyConfig))
}

func themeName() string  { return settings.GetString(prefs.KeyTheme) }
func layoutName() string { return settings.GetString(prefs.KeyLayout) }
