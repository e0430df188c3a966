package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"selb/css"
)

const stdoutName = "STDOUT"

// destination is where stylesheets go: either a single stream (file or
// STDOUT) receiving all of them one after another, or a directory receiving
// one file per recipe.
type destination struct {
	name      string
	dir       bool
	overwrite bool

	w    io.Writer
	file *os.File

	written int
	used    map[string]int
}

// openDestination interprets path. Empty path means std stream, existing
// directory means file per recipe, anything else is a file to create.
func openDestination(path string, overwrite bool, std io.Writer) (*destination, error) {
	d := &destination{overwrite: overwrite, used: make(map[string]int)}

	if path == "" {
		d.name, d.w = stdoutName, std
		return d, nil
	}

	path = filepath.Clean(path)
	d.name = path

	fi, err := os.Stat(path)
	switch {
	case err == nil && fi.IsDir():
		d.dir = true
		return d, nil
	case err == nil && !overwrite:
		return nil, fmt.Errorf("destination file already exists: %s", path)
	case err != nil && !os.IsNotExist(err):
		return nil, fmt.Errorf("unable to access destination: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create destination directory: %w", err)
	}
	if d.file, err = os.Create(path); err != nil {
		return nil, fmt.Errorf("unable to create destination file: %w", err)
	}
	d.w = d.file
	return d, nil
}

func (d *destination) String() string {
	return d.name
}

// write outputs stylesheet for recipe and returns name of the file it went to.
func (d *destination) write(recipeName string, sheet *css.Stylesheet) (string, error) {
	if d.dir {
		return d.writeFile(recipeName, sheet)
	}

	if d.written > 0 {
		if _, err := io.WriteString(d.w, "\n"); err != nil {
			return d.name, err
		}
	}
	if _, err := sheet.WriteTo(d.w); err != nil {
		return d.name, err
	}
	d.written++
	return d.name, nil
}

func (d *destination) writeFile(recipeName string, sheet *css.Stylesheet) (string, error) {
	name := filepath.Join(d.name, d.uniqueFileName(recipeName))

	if _, err := os.Stat(name); err == nil && !d.overwrite {
		return name, fmt.Errorf("destination file already exists: %s", name)
	}

	var buf bytes.Buffer
	if _, err := sheet.WriteTo(&buf); err != nil {
		return name, err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return name, err
	}
	d.written++
	return name, nil
}

// uniqueFileName keeps recipes with the same name from overwriting each
// other during single run. Every name handed out is remembered, suffixed
// names included.
func (d *destination) uniqueFileName(recipeName string) string {
	base := fileName(recipeName)
	stem := strings.TrimSuffix(base, ".css")

	name := base
	for n := 2; d.used[name] > 0; n++ {
		name = fmt.Sprintf("%s-%d.css", stem, n)
	}
	d.used[name]++
	return name
}

// Close releases destination file if one was created.
func (d *destination) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// fileName makes file system friendly name from recipe name.
func fileName(recipeName string) string {
	name := slug.Make(recipeName)
	if name == "" {
		name = "stylesheet"
	}
	return name + ".css"
}
