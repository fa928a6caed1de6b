package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/spiral"
)

func synth(t *testing.T, p, iterations int, mode spiral.Mode) spiral.Result {
	t.Helper()
	params := spiral.DefaultParams()
	params.Iterations = iterations
	res, err := spiral.Synthesize(p, 0, params, mode, spiral.DefaultPaletteSize)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return res
}

func TestSpiralToSVG_Scatter(t *testing.T) {
	res := synth(t, 7, 50, spiral.ModeScatter)
	svg := SpiralToSVG(res, palette.Fixed(), DefaultSVGOptions())

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if got := strings.Count(svg, "<circle"); got != 50 {
		t.Errorf("expected 50 circles, got %d", got)
	}
	if !strings.Contains(svg, ">7</text>") {
		t.Error("expected the source value as title")
	}
	if !strings.Contains(svg, palette.Fixed().Hex(res.Attributes[1].ColorIndex)) {
		t.Error("expected palette colours in the figure")
	}
}

func TestSpiralToSVG_Plot(t *testing.T) {
	res := synth(t, 3, 40, spiral.ModePlot)
	opts := DefaultSVGOptions()
	opts.Title = false
	opts.Background = "#0a0a0a"
	svg := SpiralToSVG(res, palette.Fixed(), opts)

	if strings.Count(svg, "<path") != 1 {
		t.Error("plot mode should draw a single path")
	}
	if strings.Contains(svg, "<circle") || strings.Contains(svg, "<text") {
		t.Error("plot mode without title should have no circles or text")
	}
	if !strings.Contains(svg, `fill="#0a0a0a"`) {
		t.Error("expected background rect")
	}
}

func TestSpiralToSVG_Scatter3D(t *testing.T) {
	res := synth(t, 5, 100, spiral.ModeScatter3D)
	svg := SpiralToSVG(res, palette.Fixed(), SVGOptions{})

	n := strings.Count(svg, "<circle")
	if n == 0 || n > 100 {
		t.Errorf("expected between 1 and 100 projected circles, got %d", n)
	}
}

func TestWriteCSV(t *testing.T) {
	a := synth(t, 2, 30, spiral.ModeScatter)
	b := synth(t, 3, 30, spiral.ModeScatter)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, a, b); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 61 {
		t.Fatalf("expected header plus 60 rows, got %d lines", len(lines))
	}
	if lines[0] != strings.Join(Header, ",") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[31], "3,0,") {
		t.Errorf("second spiral should start at row 31, got %q", lines[31])
	}
}

func TestReadRows(t *testing.T) {
	res := synth(t, 11, 25, spiral.ModeScatter3D)

	var buf bytes.Buffer
	if err := WriteRows(&buf, Rows(res)); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := ReadRows(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 25 {
		t.Fatalf("expected 25 rows, got %d", len(rows))
	}
	want := Rows(res)
	for i := range rows {
		if rows[i] != want[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestReadRows_Malformed(t *testing.T) {
	in := strings.Join(Header, ",") + "\n2,0,x,0,0,0,0\n"
	if _, err := ReadRows(strings.NewReader(in)); err == nil {
		t.Error("expected parse error")
	}
}

func TestWriteJSON(t *testing.T) {
	res := synth(t, 13, 10, spiral.ModeScatter)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res, map[string]float64{"max_radius": 1}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.SourceValue != 13 || doc.Mode != "scatter" || doc.Points != 10 || len(doc.Rows) != 10 {
		t.Errorf("unexpected document %+v", doc)
	}
	if doc.Metrics["max_radius"] != 1 {
		t.Error("metrics missing")
	}
}
