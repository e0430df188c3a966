package recipe

import (
	"os"
	"path/filepath"
	"testing"
)

const tablesRecipe = `name: tables
rules:
  - selector: [el=table, id=data]
    declarations:
      border-collapse: collapse
  - selector: [el=tr, pc=nth-of-type(even), descendant, el=td]
    declarations:
      background: "#eee"
      color: black
`

func TestParse(t *testing.T) {
	r, err := Parse([]byte(tablesRecipe))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if r.Name != "tables" {
		t.Errorf("Name = %q, want tables", r.Name)
	}
	if len(r.Rules) != 2 {
		t.Fatalf("len(Rules) = %d, want 2", len(r.Rules))
	}
	if r.Rules[1].Declarations["background"] != "#eee" {
		t.Errorf("unexpected declarations %v", r.Rules[1].Declarations)
	}
	if len(r.Rules[1].Selector) != 4 {
		t.Errorf("unexpected selector tokens %q", r.Rules[1].Selector)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "name: [x"},
		{"unknown field", "name: x\ncolour: red\nrules:\n  - selector: [el=a]\n"},
		{"missing name", "rules:\n  - selector: [el=a]\n"},
		{"no rules", "name: x\n"},
		{"empty rules", "name: x\nrules: []\n"},
		{"empty selector", "name: x\nrules:\n  - selector: []\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(tablesRecipe), 0644); err != nil {
		t.Fatalf("failed to write recipe: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if r.Name != "tables" {
		t.Errorf("Name = %q, want tables", r.Name)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
