package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/spirals/internal/spiral"
)

type Document struct {
	SourceValue int                `json:"sourceValue"`
	Mode        string             `json:"mode"`
	Points      int                `json:"points"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	Rows        []Row              `json:"rows"`
}

func NewDocument(res spiral.Result, metrics map[string]float64) Document {
	return Document{
		SourceValue: res.SourceValue,
		Mode:        res.Mode.String(),
		Points:      res.Len(),
		Metrics:     metrics,
		Rows:        Rows(res),
	}
}

// WriteJSON writes res as an indented Document.
func WriteJSON(w io.Writer, res spiral.Result, metrics map[string]float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(res, metrics))
}
