package classpath

import (
	"fmt"
	"path"

	"github.com/beevik/etree"
)

// File is a loaded .classpath document. Mutations mark the file changed;
// Save only rewrites when a mutation happened, so untouched files stay
// byte-identical on disk.
type File struct {
	Path string

	doc     *etree.Document
	root    *etree.Element
	changed bool
}

// Entry is one classpathentry element in document order.
type Entry struct {
	elem *etree.Element
}

// Kind returns the entry's kind attribute (lib, src, con, output, ...).
func (e Entry) Kind() string {
	return e.elem.SelectAttrValue("kind", "")
}

// Path returns the entry's path attribute.
func (e Entry) Path() string {
	return e.elem.SelectAttrValue("path", "")
}

// FileName returns the basename of the entry's path attribute.
func (e Entry) FileName() string {
	return path.Base(e.Path())
}

// Load parses a .classpath file.
func Load(p string) (*File, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", p, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: no root element", p)
	}
	return &File{Path: p, doc: doc, root: root}, nil
}

// Entries returns the classpathentry children of the root element.
func (f *File) Entries() []Entry {
	elems := f.root.SelectElements("classpathentry")
	entries := make([]Entry, len(elems))
	for i, el := range elems {
		entries[i] = Entry{elem: el}
	}
	return entries
}

// SourcePaths returns the path attributes of all kind="src" entries.
func (f *File) SourcePaths() []string {
	var paths []string
	for _, e := range f.Entries() {
		if e.Kind() == "src" {
			paths = append(paths, e.Path())
		}
	}
	return paths
}

// Remove deletes an entry from the document.
func (f *File) Remove(e Entry) {
	f.root.RemoveChild(e.elem)
	f.changed = true
}

// AppendSourceRef appends a project reference entry for the given
// workspace directory name, e.g. <classpathentry combineaccessrules="false"
// kind="src" path="/dir"/>.
func (f *File) AppendSourceRef(dir string) {
	el := f.root.CreateElement("classpathentry")
	el.CreateAttr("combineaccessrules", "false")
	el.CreateAttr("kind", "src")
	el.CreateAttr("path", "/"+dir)
	f.changed = true
}

// Changed reports whether any mutation was applied since loading.
func (f *File) Changed() bool {
	return f.changed
}

// Save rewrites the file with 4-space indentation, a leading XML
// declaration, and UTF-8 encoding. It is a no-op when nothing changed.
func (f *File) Save() error {
	if !f.changed {
		return nil
	}
	f.ensureDeclaration()
	f.doc.Indent(4)
	if err := f.doc.WriteToFile(f.Path); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}

// ensureDeclaration guarantees the document starts with an XML declaration.
// Eclipse writes one, but hand-edited files sometimes lack it.
func (f *File) ensureDeclaration() {
	for _, tok := range f.doc.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			return
		}
	}
	// CreateProcInst appends, so detach before moving to the front.
	pi := f.doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	f.doc.RemoveChild(pi)
	f.doc.InsertChildAt(0, pi)
}
