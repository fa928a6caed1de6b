package metrics

import "github.com/san-kum/spirals/internal/spiral"

type MaxRadius struct {
	name string
	max  float64
}

func NewMaxRadius() *MaxRadius {
	return &MaxRadius{name: "max_radius"}
}

func (m *MaxRadius) Name() string { return m.name }

func (m *MaxRadius) Observe(res spiral.Result) {
	for _, r := range res.Radius {
		if r > m.max {
			m.max = r
		}
	}
}

func (m *MaxRadius) Value() float64 { return m.max }

func (m *MaxRadius) Reset() { m.max = 0 }
