package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/spirals/internal/config"
	"github.com/san-kum/spirals/internal/export"
)

const (
	metadataFile = "metadata.json"
	paramsFile   = "params.txt"
)

// Store keeps one directory per run under baseDir. A run directory holds
// <p>.svg and <p>.csv per spiral plus params.txt and metadata.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) BaseDir() string { return s.baseDir }

func (s *Store) RunDir(run string) string {
	return filepath.Join(s.baseDir, run)
}

type SpiralMetadata struct {
	Value   int                `json:"value"`
	Points  int                `json:"points"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

type RunMetadata struct {
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	PlotType    string           `json:"plot_type"`
	Series      string           `json:"series"`
	Low         int              `json:"low"`
	High        int              `json:"high"`
	Degrees     float64          `json:"degrees"`
	DegModifier float64          `json:"deg_modifier"`
	Modifier    float64          `json:"modifier"`
	Iterations  int              `json:"iterations"`
	PaletteSize int              `json:"palette_size"`
	Timestamp   time.Time        `json:"timestamp"`
	Elapsed     float64          `json:"elapsed_seconds"`
	Spirals     []SpiralMetadata `json:"spirals"`
	Skipped     []int            `json:"skipped,omitempty"`
}

// NewRunMetadata fills the parameter fields of a run from cfg.
func NewRunMetadata(cfg *config.Config) RunMetadata {
	return RunMetadata{
		Name:        cfg.RunName(),
		Title:       cfg.Title,
		PlotType:    cfg.PlotType,
		Series:      cfg.Series,
		Low:         cfg.Low,
		High:        cfg.High,
		Degrees:     cfg.Spiral.Degrees,
		DegModifier: cfg.Spiral.DegModifier,
		Modifier:    cfg.Spiral.Modifier,
		Iterations:  cfg.Spiral.Iterations,
		PaletteSize: cfg.Palette.Size,
		Timestamp:   time.Now(),
		Spirals:     []SpiralMetadata{},
	}
}

// MergeSpirals combines the spirals recorded by an earlier invocation of a run
// with the current ones. Entries are keyed by value, current entries win, and
// the result is sorted by value.
func MergeSpirals(previous, current []SpiralMetadata) []SpiralMetadata {
	byValue := make(map[int]SpiralMetadata, len(previous)+len(current))
	for _, sp := range previous {
		byValue[sp.Value] = sp
	}
	for _, sp := range current {
		byValue[sp.Value] = sp
	}

	merged := make([]SpiralMetadata, 0, len(byValue))
	for _, sp := range byValue {
		merged = append(merged, sp)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Value < merged[j].Value })
	return merged
}

// Exists reports whether the figure for p has already been written.
func (s *Store) Exists(run string, p int) bool {
	_, err := os.Stat(s.figurePath(run, p))
	return err == nil
}

// SaveSpiral writes the figure and the point rows of a single spiral.
func (s *Store) SaveSpiral(run string, p int, svg string, rows []export.Row) error {
	runDir := s.RunDir(run)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	csvFile, err := os.Create(s.pointsPath(run, p))
	if err != nil {
		return fmt.Errorf("create points: %w", err)
	}
	if err := export.WriteRows(csvFile, rows); err != nil {
		csvFile.Close()
		return fmt.Errorf("write points: %w", err)
	}
	if err := csvFile.Close(); err != nil {
		return fmt.Errorf("close points: %w", err)
	}

	// the figure doubles as the "already done" marker, so it goes last
	if err := os.WriteFile(s.figurePath(run, p), []byte(svg), 0644); err != nil {
		return fmt.Errorf("write figure: %w", err)
	}
	return nil
}

// FormatParams renders the one-line parameter summary stored as params.txt.
func FormatParams(cfg *config.Config) string {
	return fmt.Sprintf("Plot: %s, Lower bound: %d, Upper bound: %d, Degrees: %s, Degree Modifier: %s, Modifier: %s, Iterations: %d",
		cfg.PlotType, cfg.Low, cfg.High,
		strconv.FormatFloat(cfg.Spiral.Degrees, 'f', -1, 64),
		round3(cfg.Spiral.DegModifier),
		round3(cfg.Spiral.Modifier),
		cfg.Spiral.Iterations)
}

func round3(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func (s *Store) WriteParams(run string, cfg *config.Config) error {
	if err := os.MkdirAll(s.RunDir(run), 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}
	return os.WriteFile(filepath.Join(s.RunDir(run), paramsFile), []byte(FormatParams(cfg)), 0644)
}

func (s *Store) ReadParams(run string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.RunDir(run), paramsFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) SaveMetadata(meta RunMetadata) error {
	runDir := s.RunDir(meta.Name)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func (s *Store) Load(run string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.RunDir(run), metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// List returns the metadata of every finished run, sorted by name. Directories
// without readable metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Name < runs[j].Name })
	return runs, nil
}

func (s *Store) LoadPoints(run string, p int) ([]export.Row, error) {
	file, err := os.Open(s.pointsPath(run, p))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return export.ReadRows(file)
}

func (s *Store) figurePath(run string, p int) string {
	return filepath.Join(s.RunDir(run), strconv.Itoa(p)+".svg")
}

func (s *Store) pointsPath(run string, p int) string {
	return filepath.Join(s.RunDir(run), strconv.Itoa(p)+".csv")
}
