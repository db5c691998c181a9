package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how ListTasksFormat renders the journal.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted list formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ListTasksFormat writes the journal to Out in the given format. FormatText
// is the same output as ListTasks.
func (s *Store) ListTasksFormat(format Format) error {
	tasks, err := s.Tasks()
	if err != nil {
		return err
	}

	switch format {
	case FormatText:
		return writeText(s.Out, tasks)
	case FormatJSON:
		return writeJSON(s.Out, tasks)
	case FormatYAML:
		return writeYAML(s.Out, tasks)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, tasks []Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}
	for i, task := range tasks {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, task); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, tasks []Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func writeYAML(w io.Writer, tasks []Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return enc.Close()
}
