// Package app is the composition root for Christoffel.
//
// # Startup
//
// Run performs these steps, then blocks in the UI:
//
//  1. Load config (~/.config/christoffel/config.toml or the given path)
//  2. Load prefs, falling back to defaults on any problem
//  3. Open the activity log at <log_dir>/christoffel.log
//  4. Seed a state.Store with menu.DefaultDishes
//  5. Start a flow.Flow on the welcome screen
//  6. Run the Bubble Tea UI until the user quits or ctx is cancelled
//
// Config parse failures and an unwritable log directory abort startup with
// a wrapped error. Nothing about the menu itself is persisted: every run
// starts from the three default dishes.
//
// # Logging
//
// NewLogger builds a zap production logger (JSON encoder, ISO8601 "ts")
// pointed at the log file only. Store mutations log at info; navigation
// logs at debug and is only written when Options.Debug is set. The same
// file is what `christoffel log` and the in-app activity viewer read.
package app
