package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/gallery/internal/session"
	"github.com/san-kum/gallery/internal/storage"
)

type ExportData struct {
	ID         string             `json:"id"`
	Script     string             `json:"script"`
	Integrator string             `json:"integrator"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	Score      int                `json:"score"`
	Cleared    bool               `json:"cleared"`
	Metrics    map[string]float64 `json:"metrics"`
	Frames     []session.Frame    `json:"frames"`
}

func newExportData(meta *storage.RunMetadata, frames []session.Frame) ExportData {
	return ExportData{
		ID:         meta.ID,
		Script:     meta.Script,
		Integrator: meta.Integrator,
		Dt:         meta.Dt,
		Steps:      len(frames),
		Score:      meta.Score,
		Cleared:    meta.Cleared,
		Metrics:    meta.Metrics,
		Frames:     frames,
	}
}

func WriteJSON(w io.Writer, meta *storage.RunMetadata, frames []session.Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newExportData(meta, frames))
}

// ExportJSON writes the run to path, or to stdout when path is "-".
func ExportJSON(path string, meta *storage.RunMetadata, frames []session.Frame) error {
	if path == "-" {
		return WriteJSON(os.Stdout, meta, frames)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, meta, frames)
}
