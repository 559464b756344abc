// Package browser implements an interactive element browser on Bubble Tea.
//
// Elements are listed with bubbles/list, each with a swatch in its theme
// category color. Tab and shift+tab cycle a category filter, enter toggles
// a detail card for the highlighted element, "/" searches by symbol or name
// and q quits.
//
//	if err := browser.Run(elements, theme); err != nil {
//	    return err
//	}
package browser
