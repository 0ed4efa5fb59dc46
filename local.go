package entrykit

// LocalEntry describes a resource on the local filesystem. The path is
// stored verbatim; no validation or normalization is performed.
type LocalEntry struct {
	Path string
}

func (*LocalEntry) entry() {}

// FromPath wraps a filesystem path as a LocalEntry. It is total: every
// string is a valid path at this layer.
func FromPath(path string) *LocalEntry {
	return &LocalEntry{Path: path}
}
