package taskfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/taskplan/core/logger"
	"github.com/kilianp07/taskplan/core/model"
)

// rawTask mirrors model.Task but keeps effort untyped so that malformed
// values can be reported instead of failing the whole file.
type rawTask struct {
	ID     string            `json:"id" yaml:"id"`
	Name   string            `json:"name" yaml:"name"`
	Effort any               `json:"effort" yaml:"effort"`
	Tags   map[string]string `json:"tags" yaml:"tags"`
}

// Load reads an ordered task list from a JSON or YAML file. Tasks with a
// missing, malformed or negative effort are kept with effort 0 and a
// warning; tasks without an ID receive a generated one. File order is
// the scheduling order.
func Load(path string, log logger.Logger) ([]model.Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return Decode(f, ext, log)
}

// Decode reads from r to decode a task list in the given format.
func Decode(r io.Reader, format string, log logger.Logger) ([]model.Task, error) {
	var raw []rawTask
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		// An empty document is an empty task list, like JSON's [].
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode tasks: %w", err)
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode tasks: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported task file format: %s", format)
	}

	tasks := make([]model.Task, len(raw))
	for i, rt := range raw {
		t := model.Task{ID: rt.ID, Name: rt.Name, Tags: rt.Tags}
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		effort, ok := coerceEffort(rt.Effort)
		if !ok {
			log.Warnf("task %q: invalid effort %v, defaulting to 0", displayName(t, i), rt.Effort)
		}
		t.Effort = effort
		tasks[i] = t
	}
	return tasks, nil
}

// coerceEffort turns a decoded effort value into non-negative hours. The
// second return is false when the value was missing or unusable.
func coerceEffort(v any) (float64, bool) {
	var e float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		e = n
	case float32:
		e = float64(n)
	case int:
		e = float64(n)
	case int64:
		e = float64(n)
	case uint64:
		e = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		e = parsed
	default:
		return 0, false
	}
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 {
		return 0, false
	}
	return e, true
}

func displayName(t model.Task, index int) string {
	if t.Name != "" {
		return t.Name
	}
	return fmt.Sprintf("#%d", index+1)
}
