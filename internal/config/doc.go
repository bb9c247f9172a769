// Package config loads Christoffel's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/christoffel/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/christoffel/config.toml
//   - Restaurant name: Christoffel's
//   - Tagline: Fine Dining Experience
//   - Log directory: ~/.local/share/christoffel/logs
//   - Activity log: <log_dir>/christoffel.log
//
// # TOML Format
//
//	restaurant_name = "Christoffel's"
//	tagline = "Fine Dining Experience"
//	log_dir = "~/.local/share/christoffel/logs"
//
// All fields are optional. Values are trimmed and tilde expansion is
// performed on log_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing file is not an error.
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	logPath := cfg.LogPath()
package config
