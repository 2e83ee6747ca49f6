// Package catalog loads the product catalog from a JSON source into
// domain documents. The catalog is read once at startup; there is no
// persisted index beyond the input file.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retail-insight/genie/internal/domain"
)

// Load reads a catalog file and returns its documents in source order.
func Load(path string) ([]domain.Document, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	docs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return docs, nil
}

// Decode parses a JSON array of catalog records. The top-level value must
// be an array (domain.ErrNotArray otherwise) and every element an object
// (domain.ErrNotObject). Missing title/description default to empty
// strings rather than failing; unknown fields are preserved in Extra.
// Each returned document owns fresh memory, so later mutation of the
// source data cannot corrupt engine state.
func Decode(r io.Reader) ([]domain.Document, error) {
	var raw any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	records, ok := raw.([]any)
	if !ok {
		return nil, domain.ErrNotArray
	}

	docs := make([]domain.Document, 0, len(records))
	for i, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrNotObject)
		}
		docs = append(docs, fromObject(obj))
	}
	return docs, nil
}

// fromObject converts one raw record into a typed document. Field
// defaulting happens here, once, at the store boundary.
func fromObject(obj map[string]any) domain.Document {
	var doc domain.Document
	for k, v := range obj {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				doc.Title = s
			}
		case "description":
			if s, ok := v.(string); ok {
				doc.Description = s
			}
		default:
			if doc.Extra == nil {
				doc.Extra = make(map[string]any)
			}
			doc.Extra[k] = v
		}
	}
	return doc
}
