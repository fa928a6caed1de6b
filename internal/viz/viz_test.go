package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/spiral"
)

func synth(t *testing.T, p int, mode spiral.Mode) spiral.Result {
	t.Helper()
	params := spiral.Params{DegreesBase: 360, DegreeModifier: 1, Iterations: 200, RadialModifier: 1}
	res, err := spiral.Synthesize(p, 0, params, mode, spiral.DefaultPaletteSize)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	return res
}

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.SetSlot(3, 5, 2)

	if !c.IsSet(3, 5) {
		t.Error("dot should be set")
	}
	if c.Slots[1][1] != 2 {
		t.Errorf("expected slot 2, got %d", c.Slots[1][1])
	}

	c.SetSlot(-1, 0, 1)
	c.SetSlot(100, 100, 1)
	c.SetSlot(1, 1, -1)
	if c.Slots[0][0] != -1 || !c.IsSet(1, 1) {
		t.Error("negative slot should set the dot without colouring the cell")
	}

	c.Clear()
	if c.IsSet(3, 5) || c.Slots[1][1] != -1 {
		t.Error("clear should reset dots and slots")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	c := NewCanvas(10, 3)
	c.DrawLine(0, 0, 19, 11, 1)

	if !c.IsSet(0, 0) || !c.IsSet(19, 11) {
		t.Error("line endpoints should be set")
	}
}

func TestCanvas_Render(t *testing.T) {
	c := NewCanvas(3, 1)
	c.SetSlot(0, 0, 0)
	out := c.Render(palette.Fixed())

	if !strings.HasSuffix(out, "\n") {
		t.Error("render should end rows with newline")
	}
	if len(strings.Split(strings.TrimSuffix(out, "\n"), "\n")) != 1 {
		t.Errorf("expected a single row, got %q", out)
	}
	if c.String() == "" {
		t.Error("plain string should not be empty")
	}
}

func TestLayout2D_FitsSurface(t *testing.T) {
	res := synth(t, 5, spiral.ModeScatter)
	placed := Layout(res, 120, 96, nil)

	if len(placed) != res.Len() {
		t.Fatalf("expected %d placed points, got %d", res.Len(), len(placed))
	}
	for _, p := range placed {
		if p.X < 0 || p.X > 120 || p.Y < 0 || p.Y > 96 {
			t.Fatalf("point %d outside surface: (%f, %f)", p.Index, p.X, p.Y)
		}
	}
	for i, p := range placed {
		if p.Index != i {
			t.Fatalf("2d layout should keep generation order")
		}
	}
}

func TestLayout3D_SortedByDepth(t *testing.T) {
	res := synth(t, 7, spiral.ModeScatter3D)
	placed := Layout(res, 120, 96, NewCamera())

	if len(placed) != res.Len() {
		t.Fatalf("expected %d placed points, got %d", res.Len(), len(placed))
	}
	for i := 1; i < len(placed); i++ {
		if placed[i].Depth < placed[i-1].Depth {
			t.Fatal("3d layout should be sorted far to near")
		}
	}
}

func TestLayout_Empty(t *testing.T) {
	if got := Layout(spiral.Result{}, 10, 10, nil); got != nil {
		t.Errorf("expected nil for empty result, got %v", got)
	}
}

func TestDraw(t *testing.T) {
	for _, mode := range []spiral.Mode{spiral.ModePlot, spiral.ModeScatter, spiral.ModeScatter3D} {
		c := NewCanvas(40, 20)
		Draw(c, synth(t, 3, mode), nil)

		drawn := 0
		for _, row := range c.Grid {
			for _, r := range row {
				if r != blank {
					drawn++
				}
			}
		}
		if drawn == 0 {
			t.Errorf("%v: nothing drawn", mode)
		}
	}
}

func TestCamera_Project(t *testing.T) {
	cam := NewCamera()
	cam.RotX, cam.RotY = 0, 0

	x, y, _, ok := cam.Project(Vec3{}, 100, 80)
	if !ok || x != 50 || y != 40 {
		t.Errorf("origin should project to centre, got (%f, %f, %v)", x, y, ok)
	}

	_, _, _, ok = cam.Project(Vec3{Z: 10}, 100, 80)
	if ok {
		t.Error("point behind the camera should not be visible")
	}
}

func TestViewer_Navigation(t *testing.T) {
	family := []spiral.Result{synth(t, 2, spiral.ModeScatter), synth(t, 3, spiral.ModeScatter)}
	v := NewViewer("Primes", family, palette.Fixed())

	next := func(v Viewer, key tea.KeyType) Viewer {
		m, _ := v.Update(tea.KeyMsg{Type: key})
		return m.(Viewer)
	}

	v = next(v, tea.KeyRight)
	if v.Current() != 1 {
		t.Errorf("expected spiral 1, got %d", v.Current())
	}
	v = next(v, tea.KeyRight)
	if v.Current() != 1 {
		t.Error("should not move past the last spiral")
	}
	v = next(v, tea.KeyLeft)
	if v.Current() != 0 {
		t.Errorf("expected spiral 0, got %d", v.Current())
	}

	view := v.View()
	if !strings.Contains(view, "Primes") {
		t.Error("view should show the title")
	}
	spark := SparklineChart(v.family[0].Radius, sparklineWidth)
	if !strings.HasPrefix(spark, "▁") || !strings.HasSuffix(spark, "█") {
		t.Errorf("radius sparkline should rise from ▁ to █, got %q", spark)
	}
	if !strings.Contains(view, spark) {
		t.Error("view should show the radius sparkline")
	}
}

func TestViewer_Themes(t *testing.T) {
	v := NewViewer("Primes", []spiral.Result{synth(t, 2, spiral.ModeScatter)}, palette.Fixed())
	if v.Theme().Name != Themes[0].Name {
		t.Errorf("expected default theme %s, got %s", Themes[0].Name, v.Theme().Name)
	}

	v = v.WithTheme(GetTheme("sunset"))
	if v.Theme().Name != "sunset" {
		t.Errorf("expected sunset, got %s", v.Theme().Name)
	}

	m, _ := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	if got := m.(Viewer).Theme().Name; got != NextTheme(ThemeSunset).Name {
		t.Errorf("t should cycle to the next theme, got %s", got)
	}
}

func TestViewer_Empty(t *testing.T) {
	v := NewViewer("Nothing", nil, palette.Fixed())
	if !strings.Contains(v.View(), "no spirals") {
		t.Error("empty viewer should say so")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("NextTheme should wrap")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestSparklineChart(t *testing.T) {
	out := SparklineChart([]float64{0, 1, 2, 3}, 4)
	if out != "▁▃▅█" {
		t.Errorf("unexpected sparkline %q", out)
	}
	if got := SparklineChart([]float64{0, 5, 1, 2, 3, 4, 9}, 3); got != "▁▂█" {
		t.Errorf("long series should be sampled from both ends, got %q", got)
	}
	if SparklineChart(nil, 3) != "───" {
		t.Error("empty sparkline should be a rule")
	}
}
