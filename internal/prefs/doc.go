// Package prefs stores user defaults for the ptable command.
//
// Preferences live in a small YAML file in the platform configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/ptable/config.yaml or $HOME/.config/ptable/config.yaml
//   - macOS: $HOME/.config/ptable/config.yaml
//   - Windows: %LOCALAPPDATA%\ptable\config.yaml
//
// The file holds default document locators, theme, layout and output path.
// Command-line flags and PTABLE_* environment variables override it.
//
// # Usage Example
//
//	p, err := prefs.Load()
//	if err != nil {
//	    return err
//	}
//	if err := p.Set(prefs.KeyTheme, "dark"); err != nil {
//	    return err
//	}
//	return p.Save()
//
// Load is safe for concurrent use; Save replaces the file atomically.
package prefs
