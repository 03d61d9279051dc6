package classpath

import "strings"

// Removal records one lib entry flagged for deletion.
type Removal struct {
	FileName string
	// Project is the workspace project a conflict matched; empty when the
	// entry was flagged as a source jar instead.
	Project string
}

// MatchConflict reports whether a library filename conflicts with one of the
// workspace source projects: it equals <project>.jar or starts with
// <project>- or <project>_. The first matching project wins. The prefix
// check intentionally matches any jar sharing a project name before the
// separator (project "core" flags every core-*.jar), mirroring how Eclipse
// names plugin jars.
func MatchConflict(filename string, projects []string) (string, bool) {
	for _, p := range projects {
		if filename == p+".jar" ||
			strings.HasPrefix(filename, p+"-") ||
			strings.HasPrefix(filename, p+"_") {
			return p, true
		}
	}
	return "", false
}

// IsSourceJar reports whether a library filename is an Eclipse source
// attachment jar (contains .source_ or .source-).
func IsSourceJar(filename string) bool {
	return strings.Contains(filename, ".source_") || strings.Contains(filename, ".source-")
}

// RemoveConflicts deletes every kind="lib" entry whose filename matches a
// workspace project (rule 1) or is a source jar (rule 2). Surviving entries
// keep their attributes and relative order. The returned removals are in
// document order.
func (f *File) RemoveConflicts(projects []string) []Removal {
	var removals []Removal
	for _, e := range f.Entries() {
		if e.Kind() != "lib" {
			continue
		}
		name := e.FileName()
		if p, ok := MatchConflict(name, projects); ok {
			removals = append(removals, Removal{FileName: name, Project: p})
			f.Remove(e)
			continue
		}
		if IsSourceJar(name) {
			removals = append(removals, Removal{FileName: name})
			f.Remove(e)
		}
	}
	return removals
}

// AddProjectRefs appends a src entry for each required bundle that the
// catalog maps to a workspace directory, unless that directory is already
// referenced. Insertion follows manifest order; the existing-path check is
// the only de-duplication, which also makes repeated runs idempotent.
func (f *File) AddProjectRefs(required []string, bundles map[string]string) []string {
	existing := make(map[string]bool)
	for _, p := range f.SourcePaths() {
		existing[p] = true
	}

	var added []string
	for _, bundle := range required {
		dir, ok := bundles[bundle]
		if !ok {
			continue
		}
		ref := "/" + dir
		if existing[ref] {
			continue
		}
		f.AppendSourceRef(dir)
		added = append(added, ref)
	}
	return added
}
