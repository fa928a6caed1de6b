package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/spiral"
)

const (
	canvasWidth    = 60
	canvasHeight   = 24
	sparklineWidth = 24
)

// Viewer pages through a synthesized family in the terminal.
type Viewer struct {
	title   string
	family  []spiral.Result
	palette palette.Palette
	theme   Theme
	styles  styles
	camera  *Camera
	canvas  *Canvas
	current int
}

func NewViewer(title string, family []spiral.Result, p palette.Palette) Viewer {
	theme := Themes[0]
	return Viewer{
		title:   title,
		family:  family,
		palette: p,
		theme:   theme,
		styles:  newStyles(theme),
		camera:  NewCamera(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
	}
}

// WithTheme returns the viewer drawn with t.
func (v Viewer) WithTheme(t Theme) Viewer {
	v.theme = t
	v.styles = newStyles(t)
	return v
}

func (v Viewer) Theme() Theme { return v.theme }

// Run starts the viewer on the terminal and blocks until it exits.
func (v Viewer) Run() error {
	_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
	return err
}

func (v Viewer) Current() int { return v.current }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "right", "l", "n":
		if v.current < len(v.family)-1 {
			v.current++
		}
	case "left", "h", "p":
		if v.current > 0 {
			v.current--
		}
	case "home", "g":
		v.current = 0
	case "end", "G":
		v.current = max(len(v.family)-1, 0)
	case "up", "k":
		v.camera.RotateX(0.1)
	case "down", "j":
		v.camera.RotateX(-0.1)
	case "[":
		v.camera.RotateY(-0.1)
	case "]":
		v.camera.RotateY(0.1)
	case "+", "=":
		v.camera.ZoomIn()
	case "-":
		v.camera.ZoomOut()
	case "t":
		v.theme = NextTheme(v.theme)
		v.styles = newStyles(v.theme)
	}
	return v, nil
}

func (v Viewer) View() string {
	if len(v.family) == 0 {
		return v.styles.header.Render(v.title) + "\nno spirals to show\n"
	}

	res := v.family[v.current]
	v.canvas.Clear()
	Draw(v.canvas, res, v.camera)
	canvasView := v.styles.canvas.Render(v.canvas.Render(v.palette))

	var s strings.Builder
	s.WriteString(v.styles.header.Render(fmt.Sprintf("%s  %d", v.title, res.SourceValue)) + "\n")
	s.WriteString(v.row("Spiral", fmt.Sprintf("%d / %d", v.current+1, len(v.family))))
	s.WriteString(v.row("Mode", res.Mode.String()))
	s.WriteString(v.row("Points", fmt.Sprintf("%d", res.Len())))

	if res.Len() > 0 {
		minX, maxX, minY, maxY := res.Bounds()
		s.WriteString(v.row("Max r", fmt.Sprintf("%.1f", res.Radius[res.Len()-1])))
		s.WriteString(v.row("Extent", fmt.Sprintf("%.0f x %.0f", maxX-minX, maxY-minY)))
		s.WriteString(v.row("Radius", SparklineChart(res.Radius, sparklineWidth)))

		sizes := make([]float64, res.Len())
		for i, a := range res.Attributes {
			sizes[i] = a.Size
		}
		if len(sizes) > 1 {
			chart := asciigraph.Plot(sizes, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("size"))
			s.WriteString(v.styles.graph.Render(chart) + "\n")
		}
	}

	s.WriteString(v.row("Palette", v.palette.Swatch()))
	s.WriteString(v.row("Theme", v.theme.Name))
	s.WriteString(v.styles.help.Render("←/→ spiral  ↑/↓ [ ] tilt\n+/- zoom  t theme  q quit"))

	panel := v.styles.panel.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)
}

func (v Viewer) row(label, value string) string {
	return v.styles.label.Render(label) + v.styles.value.Render(value) + "\n"
}
