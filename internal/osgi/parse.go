package osgi

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ParseFile reads and parses a MANIFEST.MF file. A missing file yields an
// empty manifest, not an error; projects without OSGi metadata are simply
// not bundles.
func ParseFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a workspace manifest path
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data), nil
}

// Parse parses MANIFEST.MF content. Headers follow the RFC822-style folding
// of the OSGi manifest format: a line starting with whitespace continues the
// previous header; a line containing a colon starts a new one.
func Parse(data []byte) *Manifest {
	m := &Manifest{}

	var current string // name of the header being accumulated
	var value strings.Builder

	flush := func() {
		switch current {
		case "Bundle-SymbolicName":
			m.SymbolicName = stripParameters(value.String())
		case "Require-Bundle":
			m.RequireBundle = splitBundleList(value.String())
		}
		current = ""
		value.Reset()
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t"):
			// Continuation of the current header.
			if current != "" {
				value.WriteString(strings.TrimSpace(line))
			}
		case strings.Contains(line, ":"):
			flush()
			name, rest, _ := strings.Cut(line, ":")
			current = name
			value.WriteString(strings.TrimSpace(rest))
		default:
			// Blank line or stray content ends the current header.
			flush()
		}
	}
	flush()

	return m
}

// stripParameters cuts a header value at the first ';' or ',', dropping
// directives like singleton:=true.
func stripParameters(v string) string {
	if i := strings.IndexAny(v, ";,"); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// splitBundleList splits a Require-Bundle value into bundle IDs. Segments
// are comma-separated; each segment's parameters after ';' are dropped and
// empty tokens discarded. Commas inside quoted version ranges produce empty
// or versiony tokens that are discarded or simply never match a catalog key,
// matching how Eclipse tooling scripts have historically treated this header.
func splitBundleList(v string) []string {
	var bundles []string
	for _, part := range strings.Split(v, ",") {
		id, _, _ := strings.Cut(part, ";")
		id = strings.TrimSpace(id)
		if id != "" {
			bundles = append(bundles, id)
		}
	}
	return bundles
}
