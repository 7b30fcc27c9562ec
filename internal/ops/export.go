package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/HungBoGo/hubogo-note/internal/model"
)

// Export is the portable JSON snapshot of the whole store.
type Export struct {
	Tasks      []model.Task     `json:"tasks"`
	Categories []model.Category `json:"categories"`
	ExportedAt time.Time        `json:"exportedAt"`
}

func BuildExport(tasks []model.Task, categories []model.Category, now time.Time) Export {
	if tasks == nil {
		tasks = []model.Task{}
	}
	if categories == nil {
		categories = []model.Category{}
	}
	return Export{Tasks: tasks, Categories: categories, ExportedAt: now}
}

// WriteExport writes the snapshot as indented JSON.
func WriteExport(path string, ex Export) error {
	b, err := json.MarshalIndent(ex, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ReadExport loads and validates an export file.
func ReadExport(path string) (Export, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Export{}, err
	}
	var ex Export
	if err := json.Unmarshal(b, &ex); err != nil {
		return Export{}, fmt.Errorf("parse export: %w", err)
	}
	return ex, nil
}
