package repository

// Store persists named collections as JSON arrays. Implementations rewrite
// the whole collection on every Save; there is no locking or partial-write
// atomicity, so callers must serialize access externally (single-process
// request handling is assumed sufficient).
type Store interface {
	// Load reads the named collection into out (a pointer to a slice),
	// creating the collection empty if it does not exist yet.
	Load(name string, out any) error

	// Save overwrites the named collection with records, pretty-printed.
	Save(name string, records any) error
}
