package config

import (
	"testing"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
version: 1
name: archi-workspace
roots:
  - path: /home/me/Github/archi
    primary: true
  - path: /home/me/Github/archi-elk-plugin
`)
	ws, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.Name != "archi-workspace" {
		t.Errorf("name = %q, want %q", ws.Name, "archi-workspace")
	}
	if len(ws.Roots) != 2 {
		t.Errorf("roots count = %d, want 2", len(ws.Roots))
	}
	if !ws.Roots[0].Primary {
		t.Error("first root should be primary")
	}
}

func TestParse_missingVersion(t *testing.T) {
	data := []byte(`
name: foo
roots:
  - path: /tmp/a
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestParse_missingName(t *testing.T) {
	data := []byte(`
version: 1
roots:
  - path: /tmp/a
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestParse_noRoots(t *testing.T) {
	data := []byte(`
version: 1
name: foo
roots: []
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for empty roots")
	}
}

func TestParse_duplicateRoot(t *testing.T) {
	data := []byte(`
version: 1
name: foo
roots:
  - path: /tmp/a
  - path: /tmp/a
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for duplicate root path")
	}
}

func TestParse_multiplePrimaries(t *testing.T) {
	data := []byte(`
version: 1
name: foo
roots:
  - path: /tmp/a
    primary: true
  - path: /tmp/b
    primary: true
`)
	if _, err := Parse(data); err == nil {
		t.Fatal("expected error for multiple primary roots")
	}
}

func TestCatalogOrder_primaryLast(t *testing.T) {
	ws := &Workspace{
		Version: 1,
		Name:    "foo",
		Roots: []Root{
			{Path: "/tmp/archi", Primary: true},
			{Path: "/tmp/plugin-a"},
			{Path: "/tmp/plugin-b"},
		},
	}
	got := ws.CatalogOrder()
	want := []string{"/tmp/plugin-a", "/tmp/plugin-b", "/tmp/archi"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("catalog order = %v, want %v", got, want)
		}
	}
}
