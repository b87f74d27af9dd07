// SPDX-License-Identifier: MIT
// Package matfile reads and writes named matrices stored in a TOML document.
//
// Format:
//
//	[[matrix]]
//	name = "a"
//	rows = [[1, 2], [3, 4.5]]
//
// Integers and floats may be mixed inside rows. Unknown keys are rejected so a
// typo like "row" fails loudly instead of yielding an empty document.
package matfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrBadDocument reports a structurally invalid document: a missing or
	// duplicate name, a non-numeric cell, or a TOML syntax error.
	ErrBadDocument = errors.New("matfile: bad document")

	// ErrNotFound is returned by Get when no matrix has the requested name.
	ErrNotFound = errors.New("matfile: matrix not found")
)

// rawDocument mirrors the on-disk layout. Cells are decoded as `any` so that
// TOML integers (int64) and floats (float64) are both accepted.
type rawDocument struct {
	Matrix []rawEntry `toml:"matrix"`
}

type rawEntry struct {
	Name string  `toml:"name"`
	Rows [][]any `toml:"rows"`
}

// Entry is one named matrix for Encode.
type Entry struct {
	Name   string
	Matrix *matrix.Dense
}

// Document is a decoded set of named matrices, in file order.
type Document struct {
	names []string
	byKey map[string]*matrix.Dense
}

// Load reads and decodes the document at path.
func Load(path string, opts ...matrix.Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading matrix file: %w", err)
	}

	return Decode(bytes.NewReader(data), opts...)
}

// Decode parses a document from r. opts are applied to every matrix built.
//
// Errors:
//   - ErrBadDocument for TOML syntax errors, unknown keys, empty or duplicate
//     names, and non-numeric cells.
//   - matrix.ErrInvalidDimensions when an entry has no rows or an empty row.
//   - matrix.ErrDimensionMismatch when rows are ragged.
func Decode(r io.Reader, opts ...matrix.Option) (*Document, error) {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw rawDocument
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing matrix TOML: %w: %w", ErrBadDocument, err)
	}

	doc := &Document{
		names: make([]string, 0, len(raw.Matrix)),
		byKey: make(map[string]*matrix.Dense, len(raw.Matrix)),
	}
	for i, e := range raw.Matrix {
		if e.Name == "" {
			return nil, fmt.Errorf("matrix #%d: empty name: %w", i, ErrBadDocument)
		}
		if _, dup := doc.byKey[e.Name]; dup {
			return nil, fmt.Errorf("matrix %q: duplicate name: %w", e.Name, ErrBadDocument)
		}
		rows, err := toFloatRows(e.Rows)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", e.Name, err)
		}
		m, err := matrix.NewFromRows(rows, opts...)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", e.Name, err)
		}
		doc.names = append(doc.names, e.Name)
		doc.byKey[e.Name] = m
	}

	return doc, nil
}

// toFloatRows converts decoded TOML cells into float64 rows.
func toFloatRows(in [][]any) ([][]float64, error) {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = make([]float64, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case int64:
				out[i][j] = float64(v)
			case float64:
				out[i][j] = v
			default:
				return nil, fmt.Errorf("cell (%d,%d): %T is not a number: %w", i, j, cell, ErrBadDocument)
			}
		}
	}

	return out, nil
}

// Names returns the matrix names in file order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)

	return out
}

// Len reports how many matrices the document holds.
func (d *Document) Len() int { return len(d.names) }

// Get returns a copy of the named matrix, so callers may mutate it freely.
func (d *Document) Get(name string) (*matrix.Dense, error) {
	m, ok := d.byKey[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return m.Clone(), nil
}

// Encode writes entries to w in the document format.
//
// Errors:
//   - ErrBadDocument for an empty or duplicate name.
//   - matrix.ErrNilMatrix for a nil matrix, matrix.ErrInvalidDimensions for
//     an empty (moved-from) one.
func Encode(w io.Writer, entries ...Entry) error {
	raw := rawDocument{Matrix: make([]rawEntry, 0, len(entries))}
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return fmt.Errorf("entry #%d: empty name: %w", i, ErrBadDocument)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("entry %q: duplicate name: %w", e.Name, ErrBadDocument)
		}
		seen[e.Name] = struct{}{}
		if err := matrix.ValidateNotNil(e.Matrix); err != nil {
			return fmt.Errorf("entry %q: %w", e.Name, err)
		}
		if e.Matrix.IsEmpty() {
			return fmt.Errorf("entry %q: %w", e.Name, matrix.ErrInvalidDimensions)
		}
		raw.Matrix = append(raw.Matrix, rawEntry{Name: e.Name, Rows: toCells(e.Matrix.ToRows())})
	}

	enc := toml.NewEncoder(w)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("writing matrix TOML: %w", err)
	}

	return nil
}

func toCells(rows [][]float64) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		out[i] = make([]any, len(row))
		for j, v := range row {
			out[i][j] = v
		}
	}

	return out
}
