// Package ui provides styled terminal output for the ptable CLI.
//
// Components follow a "render once and print" pattern; they need no user
// interaction. The interactive element browser lives in package browser.
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure or warning box with details and tips
//   - TableView: bordered table used for category and element listings
//
// Example:
//
//	res := ui.NewFailureResult("Validation failed", err, dataset.Hint(err))
//	fmt.Println(res.Render())
//
// Logging is controlled by PTABLE_LOG_LEVEL. When it is unset zap stays
// silent so that the boxes are the only output.
package ui
