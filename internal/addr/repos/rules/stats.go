package rules

// StoreStats reports lightweight store metrics and metadata.
// Values are read from the store in a cheap, read-only transaction.
type StoreStats struct {
	Version     uint64 // snapshot version (0 if unknown)
	UpdatedUnix int64  // last updated unix time (0 if unknown)
	Anchors     uint64 // number of distinct anchor labels
	Rules       uint64 // total number of rules
}

// RepoStats exposes repository-level counters and underlying store
// stats. All fields are best-effort snapshots.
type RepoStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Store     StoreStats
}
