// Package storage persists demo runs as flat files: one directory per run
// holding metadata.json and series.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Demo      string             `json:"demo"`
	Model     string             `json:"model,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Method    string             `json:"method,omitempty"`
	Dt        float64            `json:"dt,omitempty"`
	Duration  float64            `json:"duration,omitempty"`
	Summary   map[string]float64 `json:"summary,omitempty"`
}

// Save writes a run directory. labels name the series columns; columns[i]
// holds the values for labels[i], aligned with times.
func (s *Store) Save(meta RunMetadata, times []float64, labels []string, columns [][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Demo, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(times) == 0 {
		return runID, nil
	}

	header := append([]string{"time"}, labels...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, col := range columns {
			if i < len(col) {
				row = append(row, strconv.FormatFloat(col[i], 'f', 6, 64))
			} else {
				row = append(row, "0")
			}
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads series.csv back into times, column labels, and columns.
func (s *Store) LoadSeries(runID string) ([]float64, []string, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, nil, [][]float64{}, nil
	}

	labels := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	columns := make([][]float64, len(labels))

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j := 0; j < len(labels) && j+1 < len(record); j++ {
			val, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				continue
			}
			columns[j] = append(columns[j], val)
		}
	}

	return times, labels, columns, nil
}

// ExportData is the stdout JSON export schema.
type ExportData struct {
	ID      string             `json:"id"`
	Demo    string             `json:"demo"`
	Model   string             `json:"model,omitempty"`
	Method  string             `json:"method,omitempty"`
	Dt      float64            `json:"dt,omitempty"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	Labels  []string           `json:"labels"`
	Series  [][]float64        `json:"series"`
	Summary map[string]float64 `json:"summary,omitempty"`
}

func ExportJSONStdout(meta *RunMetadata, times []float64, labels []string, columns [][]float64) error {
	data := ExportData{
		ID:      meta.ID,
		Demo:    meta.Demo,
		Model:   meta.Model,
		Method:  meta.Method,
		Dt:      meta.Dt,
		Steps:   len(times),
		Times:   times,
		Labels:  labels,
		Series:  columns,
		Summary: meta.Summary,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
