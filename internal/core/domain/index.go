package domain

// CacheIndex is a point-in-time snapshot of the eviction order. It lets the
// store rebuild its in-memory index after a restart without losing relative
// entry ages.
type CacheIndex struct {
	// AnchorUnix is the unix timestamp the entry ages are relative to.
	AnchorUnix int64 `json:"anchorUnix"`
	// Entries are listed oldest first, matching eviction order.
	Entries []CacheIndexEntry `json:"entries"`
}

// CacheIndexEntry records one live entry and its age relative to the anchor.
type CacheIndexEntry struct {
	Digest Digest `json:"digest"`
	// SecondsSinceAnchor is when the entry was last touched, in seconds
	// after AnchorUnix.
	SecondsSinceAnchor int32 `json:"secondsSinceAnchor"`
}
