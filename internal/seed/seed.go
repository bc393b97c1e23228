// Package seed imports an initial set of tasks from a YAML or TOML file.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/services"
	"tasklist/internal/validation"
)

// Task is one task as written in a seed file.
type Task struct {
	Name        string `yaml:"name" toml:"name"`
	Category    string `yaml:"category" toml:"category"`
	Priority    string `yaml:"priority" toml:"priority"`
	DueAt       string `yaml:"due_at" toml:"due_at"`
	Description string `yaml:"description" toml:"description"`
}

// File is the top-level document of a seed file.
type File struct {
	Tasks []Task `yaml:"tasks" toml:"tasks"`
}

// Rejection records a seed task that failed validation.
type Rejection struct {
	Index int
	Name  string
	Err   *validation.ValidationError
}

// Result summarizes an import.
type Result struct {
	Added    int
	Rejected []Rejection
}

// Load reads a seed file. The format is chosen by extension: .yaml/.yml or .toml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeValidation, fmt.Sprintf("cannot read seed file %s", path))
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes seed data in the format named by ext.
func Parse(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.WrapError(err, errors.ErrorTypeValidation, fmt.Sprintf("invalid YAML seed file: %v", err))
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, errors.WrapError(err, errors.ErrorTypeValidation, fmt.Sprintf("invalid TOML seed file: %v", err))
		}
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported seed file extension %q: use .yaml, .yml or .toml", ext), nil)
	}
	return &f, nil
}

// Import adds every seed task through the task service. Tasks that fail
// validation are collected in the result; any other error stops the import.
func Import(ctx context.Context, taskService services.TaskService, f *File) (Result, error) {
	var result Result
	for i, t := range f.Tasks {
		if t.Category != "" && !domain.IsCategory(t.Category) {
			logging.Logger().Warn("seed task has an unknown category", "index", i, "name", t.Name, "category", t.Category)
		}
		_, err := taskService.Add(ctx, t.Name, t.Category, t.Priority, t.DueAt, t.Description)
		if err != nil {
			ve, ok := validation.AsValidationError(err)
			if !ok {
				return result, err
			}
			logging.Logger().Warn("seed task rejected", "index", i, "name", t.Name, "err", ve.GetUserFriendlyMessage())
			result.Rejected = append(result.Rejected, Rejection{Index: i, Name: t.Name, Err: ve})
			continue
		}
		result.Added++
	}
	return result, nil
}

// LoadAndImport is Load followed by Import.
func LoadAndImport(ctx context.Context, taskService services.TaskService, path string) (Result, error) {
	f, err := Load(path)
	if err != nil {
		return Result{}, err
	}
	return Import(ctx, taskService, f)
}
