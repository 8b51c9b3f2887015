// Package kb owns the knowledge base: its ordered entry map, the built-in
// default entries, and the document loaders.
//
// A knowledge base is loaded once, asynchronously, and is read-only shared
// data afterwards. The loader's lifecycle is explicit:
//
//	Loading -> Ready(loaded kb)   on success
//	Loading -> Ready(default kb)  on failure or with no sources
//
// The engine checks Ready before scoring; a query arriving while loading
// is rejected with a not-ready condition instead of blocking.
//
//	loader := kb.NewLoader(kb.NewJSONSource("semantic-db.json"))
//	go func() {
//	    if err := loader.Load(ctx); err != nil {
//	        log.Printf("knowledge base degraded: %v", err)
//	    }
//	}()
//
// Two document formats are supported: a JSON file with an ordered entries
// array, and a SQLite database (driver selected at build time, pure Go by
// default) storing vectors as little-endian float32 blobs.
package kb
