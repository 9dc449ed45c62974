// Package export provides JSON serialization for layout results.
//
// The format is a single JSON document with the room name, the options
// the layout was computed with, and the full layout result: wall
// positions, placed sections with their 3D transforms, corner panels,
// and any diagnostics. Documents written by [WriteJSON] can be read
// back with [ReadJSON] for round-trip processing, so downstream tools
// (cut-list generators, renderers) can consume saved layouts without
// rerunning the engine.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
)

// Document is the serialized form of one layout run.
type Document struct {
	Room             string         `json:"room"`
	DividerThickness float64        `json:"divider_thickness"`
	CornerTreatment  string         `json:"corner_treatment,omitempty"`
	Result           *layout.Result `json:"result"`
}

// NewDocument builds a document from a layout input and its result.
func NewDocument(in layout.Input, res *layout.Result) *Document {
	return &Document{
		Room:             in.Room.Name,
		DividerThickness: in.DividerThickness,
		CornerTreatment:  in.CornerTreatment,
		Result:           res,
	}
}

// WriteJSON encodes a layout document as indented JSON and writes it to w.
func WriteJSON(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a layout document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}

// ReadJSON decodes a layout document from r.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Result == nil {
		return nil, fmt.Errorf("document has no result")
	}
	return &doc, nil
}

// ImportJSON reads a layout document from a JSON file at path.
func ImportJSON(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
