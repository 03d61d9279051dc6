package osgi

// Manifest holds the two MANIFEST.MF facts this tool cares about.
type Manifest struct {
	// SymbolicName is the Bundle-SymbolicName header value with any
	// parameters after ';' or ',' stripped. Empty if the header is absent.
	SymbolicName string

	// RequireBundle lists the bundle IDs named in the Require-Bundle
	// header, in header order. Version and resolution parameters are
	// stripped; empty segments are discarded.
	RequireBundle []string
}

// Requires reports whether the manifest names the given bundle ID.
func (m *Manifest) Requires(bundleID string) bool {
	for _, b := range m.RequireBundle {
		if b == bundleID {
			return true
		}
	}
	return false
}
