package metrics

import (
	"math"

	"github.com/san-kum/spirals/internal/spiral"
)

// ColorBalance is the normalised Shannon entropy of colour index usage: 1 when
// every palette slot is used equally, 0 when a single slot is used.
type ColorBalance struct {
	name   string
	counts []int
	total  int
}

func NewColorBalance(paletteSize int) *ColorBalance {
	if paletteSize < 1 {
		paletteSize = 1
	}
	return &ColorBalance{
		name:   "color_balance",
		counts: make([]int, paletteSize),
	}
}

func (c *ColorBalance) Name() string {
	return c.name
}

func (c *ColorBalance) Observe(res spiral.Result) {
	for _, a := range res.Attributes {
		if a.ColorIndex < 0 || a.ColorIndex >= len(c.counts) {
			continue
		}
		c.counts[a.ColorIndex]++
		c.total++
	}
}

func (c *ColorBalance) Value() float64 {
	if c.total == 0 || len(c.counts) < 2 {
		return 0
	}
	h := 0.0
	for _, n := range c.counts {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(c.total)
		h -= p * math.Log(p)
	}
	return h / math.Log(float64(len(c.counts)))
}

func (c *ColorBalance) Reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
	c.total = 0
}
