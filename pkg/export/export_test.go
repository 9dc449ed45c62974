package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	in := layout.Input{
		Room: plan.Room{
			Name: "studio",
			Walls: []plan.WallSegment{
				{Name: "south", Length: 120, Height: 96, Depth: 12},
				{Name: "west", Length: 80, Height: 96, Depth: 12, Angle: 90},
			},
		},
		Specs: []plan.SectionSpec{
			{Width: plan.FixedWidth(48), Wall: plan.WallByName("south")},
			{Width: plan.FillWidth(), Wall: plan.WallByName("west")},
		},
	}
	res, err := layout.LayoutRoom(in)
	if err != nil {
		t.Fatalf("LayoutRoom: %v", err)
	}
	return NewDocument(in, res)
}

func TestWriteReadRoundTrip(t *testing.T) {
	doc := sampleDocument(t)

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.Room != "studio" {
		t.Errorf("room = %q", got.Room)
	}
	if len(got.Result.Sections) != len(doc.Result.Sections) {
		t.Fatalf("sections = %d, want %d", len(got.Result.Sections), len(doc.Result.Sections))
	}
	for i, s := range got.Result.Sections {
		orig := doc.Result.Sections[i]
		if s.WallIndex != orig.WallIndex || s.X != orig.X || s.Width != orig.Width {
			t.Errorf("section %d = %+v, want %+v", i, s, orig)
		}
		if s.Transform != orig.Transform {
			t.Errorf("section %d transform = %+v, want %+v", i, s.Transform, orig.Transform)
		}
	}
}

func TestWriteJSONShape(t *testing.T) {
	doc := sampleDocument(t)

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	out := buf.String()
	for _, key := range []string{`"room"`, `"result"`, `"sections"`, `"wall_positions"`, `"rotation_z"`} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s", key)
		}
	}
}

func TestExportImportJSON(t *testing.T) {
	doc := sampleDocument(t)
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if len(got.Result.Positions) != 2 {
		t.Errorf("positions = %+v", got.Result.Positions)
	}
}

func TestReadJSONRejectsEmptyDocument(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{}`)); err == nil {
		t.Error("document without result should fail")
	}
	if _, err := ReadJSON(strings.NewReader(`not json`)); err == nil {
		t.Error("malformed document should fail")
	}
}
