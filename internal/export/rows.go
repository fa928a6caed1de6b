package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/spirals/internal/spiral"
)

// Header is the column order of every CSV written by this package.
var Header = []string{"sourceValue", "index", "x", "y", "z", "size", "colorIndex"}

// Row is one synthesized point with its attributes.
type Row struct {
	SourceValue int     `json:"sourceValue"`
	Index       int     `json:"index"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	Size        float64 `json:"size"`
	ColorIndex  int     `json:"colorIndex"`
}

func Rows(res spiral.Result) []Row {
	rows := make([]Row, res.Len())
	for i, p := range res.Points {
		rows[i] = Row{
			SourceValue: res.SourceValue,
			Index:       i,
			X:           p.X,
			Y:           p.Y,
			Z:           p.Z,
			Size:        res.Attributes[i].Size,
			ColorIndex:  res.Attributes[i].ColorIndex,
		}
	}
	return rows
}

func (r Row) record() []string {
	return []string{
		strconv.Itoa(r.SourceValue),
		strconv.Itoa(r.Index),
		strconv.FormatFloat(r.X, 'f', -1, 64),
		strconv.FormatFloat(r.Y, 'f', -1, 64),
		strconv.FormatFloat(r.Z, 'f', -1, 64),
		strconv.FormatFloat(r.Size, 'f', -1, 64),
		strconv.Itoa(r.ColorIndex),
	}
}

// WriteRows writes the header followed by rows.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the rows of every result under a single header.
func WriteCSV(w io.Writer, results ...spiral.Result) error {
	var rows []Row
	for _, res := range results {
		rows = append(rows, Rows(res)...)
	}
	return WriteRows(w, rows)
}

// ReadRows parses a CSV written by WriteRows.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for line, rec := range records[1:] {
		row, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRecord(rec []string) (Row, error) {
	var (
		row  Row
		errs [7]error
	)
	row.SourceValue, errs[0] = strconv.Atoi(rec[0])
	row.Index, errs[1] = strconv.Atoi(rec[1])
	row.X, errs[2] = strconv.ParseFloat(rec[2], 64)
	row.Y, errs[3] = strconv.ParseFloat(rec[3], 64)
	row.Z, errs[4] = strconv.ParseFloat(rec[4], 64)
	row.Size, errs[5] = strconv.ParseFloat(rec[5], 64)
	row.ColorIndex, errs[6] = strconv.Atoi(rec[6])
	for i, err := range errs {
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %w", Header[i], err)
		}
	}
	return row, nil
}
