// Package dataset loads and validates the documents a periodic table is
// rendered from.
//
// Two documents are involved:
//   - The element dataset, shaped { "elements": [ ... ] }, one record per
//     element with number, symbol, name, period, group, category and an
//     optional atomic_mass that is passed through unvalidated.
//   - The configuration, with layouts, themes, typography and svg sections.
//
// # Usage Example
//
//	loader := dataset.NewLoader("data/elements.json", "data/config.json")
//
//	elements, err := loader.LoadElements(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := loader.LoadConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, el := range loader.GetElementsByCategory("noble gas") {
//	    fmt.Println(el.Summary())
//	}
//
// # Locators
//
// A locator starting with http:// or https:// is fetched with a GET request;
// anything else is read from disk. Documents whose locator ends in .yaml or
// .yml are parsed as YAML and validated exactly like JSON.
//
// # Validation
//
// Validation stops at the first violation. Element fields are checked in
// declaration order and the error names the record index and field.
// Configuration errors name the section, entry and field. Errors are
// *Error values classified by ErrorType; use IsFormatError,
// IsValidationError and IsResourceError to branch on them.
//
// # Caching
//
// Each document is cached on the Loader after its first successful load.
// A failed load does not populate the cache. Reset drops both caches.
package dataset
