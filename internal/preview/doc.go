// Package preview serves a live-reloading preview of the periodic table.
//
// Routes:
//   - GET /           HTML page with theme and layout pickers
//   - GET /table.svg  the table, rendered fresh per request (?theme=&layout=)
//   - GET /ws         WebSocket that receives "reload" when sources change
//
// With Config.Watch set, the local source documents are watched with
// fsnotify. A debounced change resets the loader cache and notifies every
// connected page. Remote (http/https) documents are never watched.
//
//	srv := preview.New(loader, preview.Config{Addr: ":8080", Watch: true})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    return err
//	}
//
// Serve returns after ctx is cancelled and in-flight requests have drained.
package preview
