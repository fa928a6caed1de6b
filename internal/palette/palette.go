// Package palette holds the colour slots that a spiral's colour indices point
// into. The core only ever emits indices; this package owns the colours.
package palette

import (
	"math/rand"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette is an ordered list of hex colours.
type Palette []string

// FixedSize is the number of colours in the fixed palette.
const FixedSize = 9

var fixed = [FixedSize]string{
	"#ee4035", "#f37736", "#fdf498",
	"#7bc043", "#0392cf", "#63ace5",
	"#f6abb6", "#d41752", "#3d1e6d",
}

// Named colours present in both the CSS and XKCD colour sets, by CSS value.
var named = map[string]string{
	"aqua":        "#00ffff",
	"azure":       "#f0ffff",
	"beige":       "#f5f5dc",
	"black":       "#000000",
	"blue":        "#0000ff",
	"brown":       "#a52a2a",
	"chartreuse":  "#7fff00",
	"chocolate":   "#d2691e",
	"coral":       "#ff7f50",
	"crimson":     "#dc143c",
	"cyan":        "#00ffff",
	"darkblue":    "#00008b",
	"darkgreen":   "#006400",
	"fuchsia":     "#ff00ff",
	"gold":        "#ffd700",
	"goldenrod":   "#daa520",
	"green":       "#008000",
	"grey":        "#808080",
	"indigo":      "#4b0082",
	"ivory":       "#fffff0",
	"khaki":       "#f0e68c",
	"lavender":    "#e6e6fa",
	"lightblue":   "#add8e6",
	"lightgreen":  "#90ee90",
	"lime":        "#00ff00",
	"magenta":     "#ff00ff",
	"maroon":      "#800000",
	"navy":        "#000080",
	"olive":       "#808000",
	"orange":      "#ffa500",
	"orangered":   "#ff4500",
	"orchid":      "#da70d6",
	"pink":        "#ffc0cb",
	"plum":        "#dda0dd",
	"purple":      "#800080",
	"red":         "#ff0000",
	"salmon":      "#fa8072",
	"sienna":      "#a0522d",
	"silver":      "#c0c0c0",
	"tan":         "#d2b48c",
	"teal":        "#008080",
	"tomato":      "#ff6347",
	"turquoise":   "#40e0d0",
	"violet":      "#ee82ee",
	"wheat":       "#f5deb3",
	"white":       "#ffffff",
	"yellow":      "#ffff00",
	"yellowgreen": "#9acd32",
}

// Fixed returns the default nine colour palette.
func Fixed() Palette {
	p := make(Palette, len(fixed))
	copy(p, fixed[:])
	return p
}

// Random samples n distinct colours from the named colour set. The same seed
// always yields the same palette. n is clamped to the size of the set.
func Random(seed int64, n int) Palette {
	pool := namedValues()
	if n > len(pool) {
		n = len(pool)
	}
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return Palette(pool[:n])
}

// namedValues returns the distinct colour values, sorted so sampling does not
// depend on map order.
func namedValues() []string {
	seen := make(map[string]bool, len(named))
	values := make([]string, 0, len(named))
	for _, v := range named {
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func (p Palette) Len() int { return len(p) }

// Hex returns the colour for slot i, wrapping around the palette.
func (p Palette) Hex(i int) string {
	if len(p) == 0 {
		return "#ffffff"
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

func (p Palette) Color(i int) lipgloss.Color {
	return lipgloss.Color(p.Hex(i))
}

// Style returns a foreground style for slot i.
func (p Palette) Style(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.Color(i))
}

// Swatch renders one block per slot, for previewing a palette in the terminal.
func (p Palette) Swatch() string {
	var out string
	for i := range p {
		out += p.Style(i).Render("██")
	}
	return out
}
