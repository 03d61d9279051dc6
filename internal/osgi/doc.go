// Package osgi parses the subset of OSGi MANIFEST.MF metadata needed to
// reconcile Eclipse classpaths: the bundle's symbolic name and its
// Require-Bundle dependency list, including RFC822-style folded headers.
package osgi
