package metrics

import "github.com/san-kum/spirals/internal/spiral"

type MeanSize struct {
	name    string
	sum     float64
	samples int
}

func NewMeanSize() *MeanSize {
	return &MeanSize{name: "mean_size"}
}

func (m *MeanSize) Name() string {
	return m.name
}

func (m *MeanSize) Observe(res spiral.Result) {
	for _, a := range res.Attributes {
		m.sum += a.Size
		m.samples++
	}
}

func (m *MeanSize) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanSize) Reset() {
	m.sum = 0
	m.samples = 0
}
