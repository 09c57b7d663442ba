// Package config provides user configuration for profileform.
//
// This package manages a small YAML file holding form and display preferences.
// The file is optional: when it does not exist every value takes its default.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/profileform/config.yaml or $HOME/.config/profileform/config.yaml
//   - macOS: $HOME/.config/profileform/config.yaml
//   - Windows: %LOCALAPPDATA%\profileform\config.yaml
//
// PROFILEFORM_CONFIG points at a different file.
//
// # Precedence
//
// Defaults, then the YAML file, then environment variables (including any
// set by a .env file in the working directory), then CLI flags applied by the
// caller.
//
// # Example File
//
//	version: 1
//	form:
//	  highlight_delay: 2s
//	  placeholder: Your result will appear here...
//	display:
//	  alt_screen: true
//	  show_help: true
//	logging:
//	  level: debug
//	  file: /tmp/profileform.log
//
// # Usage Example
//
//	cfg, path, err := config.LoadDefault()
//	if err != nil {
//	    return err
//	}
//	fmt.Println("loaded", path, cfg.Form.HighlightDelay)
package config
