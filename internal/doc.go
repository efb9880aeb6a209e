// Package internal contains the implementation packages for shelfpage.
//
// # Package Organization
//
//   - catalog: the category and bestseller tables and their validation
//   - stars: the rating to glyph breakdown
//   - components: templ components for category and book cards
//   - dom: an in-memory document with selectors, styles and events
//   - page: rendering, hover and search behavior mounted on a document
//   - accessibility: WCAG checks over the rendered page
//   - config: viper-backed configuration with validation
//   - validation: path, host and origin checks used by config
//   - server: the preview HTTP server
//   - websocket: the live-reload hub
//   - watcher: debounced file change notifications
//   - errors: typed errors and reporting
//   - logging: structured logging over log/slog
//   - version: build metadata
//
// A request flows from cmd through config into page, which parses the host
// page into a dom.Document, mounts itself and fires the ready signal. The
// server repeats that per request; the watcher and hub tell browsers when
// to ask again.
package internal
