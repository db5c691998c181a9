package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ByteMirror/journal/log"
)

// EmptyNotice is printed by ListTasks when the journal holds no tasks.
const EmptyNotice = "Task list is empty!"

// Store reads and rewrites one journal file.
type Store struct {
	path string
	// Out receives listing output. Defaults to os.Stdout.
	Out io.Writer
}

// NewStore creates a store for the journal at path. The file is not touched
// until an operation runs.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		Out:  os.Stdout,
	}
}

// Path returns the journal file path.
func (s *Store) Path() string {
	return s.path
}

// AddTask appends task to the end of the journal, creating the file if needed.
func (s *Store) AddTask(task Task) error {
	f, err := s.openForUpdate()
	if err != nil {
		return err
	}
	defer f.Close()

	tasks, err := loadTasks(f)
	if err != nil {
		return err
	}

	tasks = append(tasks, task)
	if err := saveTasks(f, tasks); err != nil {
		return err
	}
	log.InfoLog.Printf("added task %d to %s", len(tasks), s.path)
	return nil
}

// CompleteTask removes the task at the 1-based position. Later tasks move up
// by one. An out of range position leaves the file untouched.
func (s *Store) CompleteTask(position int) error {
	f, err := s.openForUpdate()
	if err != nil {
		return err
	}
	defer f.Close()

	tasks, err := loadTasks(f)
	if err != nil {
		return err
	}

	if position < 1 || position > len(tasks) {
		return fmt.Errorf("%w: %d (journal has %d tasks)", ErrInvalidPosition, position, len(tasks))
	}

	tasks = append(tasks[:position-1], tasks[position:]...)
	if err := saveTasks(f, tasks); err != nil {
		return err
	}
	log.InfoLog.Printf("completed task %d in %s", position, s.path)
	return nil
}

// ListTasks prints every task with its position, or EmptyNotice. Unlike the
// mutating operations it does not create a missing journal.
func (s *Store) ListTasks() error {
	tasks, err := s.Tasks()
	if err != nil {
		return err
	}
	return writeText(s.Out, tasks)
}

// Tasks loads the journal read-only.
func (s *Store) Tasks() ([]Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	return loadTasks(f)
}

func (s *Store) openForUpdate() (*os.File, error) {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return f, nil
}

// loadTasks reads the whole journal and leaves f positioned at the start.
// A file with no content is an empty journal; anything else that fails to
// decode is ErrMalformedJournal.
func loadTasks(f io.ReadSeeker) ([]Task, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek journal: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	tasks := make([]Task, 0)
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &tasks); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedJournal, err)
		}
		if tasks == nil {
			return nil, fmt.Errorf("%w: expected an array of tasks, got null", ErrMalformedJournal)
		}
	}
	log.DebugLog.Printf("loaded %d tasks (%d bytes)", len(tasks), len(data))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek journal: %w", err)
	}
	return tasks, nil
}

// saveTasks truncates f and writes the full collection from the start.
func saveTasks(f *os.File, tasks []Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate journal: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek journal: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}
	log.DebugLog.Printf("saved %d tasks (%d bytes) to %s", len(tasks), len(data), f.Name())
	return nil
}
