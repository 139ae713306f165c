package finplan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// This file persists the plan as a single JSON document, human-readable and
// git-friendly. One file holds the whole plan: assumptions, budget
// snapshots, headcount, and the derived blocks of the last recompute.

// DefaultPlanFile is the plan file name used when none is configured.
const DefaultPlanFile = "finplan.json"

// DecodeDocument reads a plan document from r. Missing nested keys decode
// as empty maps, never as errors.
func DecodeDocument(r io.Reader) (*Document, error) {
	d := &Document{}
	dec := json.NewDecoder(r)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("cannot parse plan document: %w", err)
	}
	d.normalize()
	d.Migrate()
	return d, nil
}

// EncodeDocument writes the plan document to w in its canonical form:
// indented JSON with sorted keys, so that diffs stay reviewable.
func EncodeDocument(w io.Writer, d *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("cannot marshal plan document: %w", err)
	}
	return nil
}

// Load reads the plan file. A missing file is not an error: it returns a
// default-initialized document, so a fresh directory just works.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("cannot open plan file %q: %w", path, err)
	}
	defer f.Close()

	d, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read plan file %q: %w", path, err)
	}
	return d, nil
}

// Save writes the whole document to the plan file. The write goes to a
// temporary file in the same directory first and is renamed over the
// target, so a failed save never leaves a half-written plan behind.
func Save(path string, d *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for plan file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary plan file in %q: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeDocument(tmp, d); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write temporary plan file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("cannot replace plan file %q: %w", path, err)
	}
	return nil
}
