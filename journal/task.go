package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// TextWidth is the display width task text is padded to when rendered.
const TextWidth = 50

const displayTimeLayout = "2006-01-02 15:04"

// now is replaced in tests.
var now = time.Now

// Task is a single journal entry.
type Task struct {
	Text      string
	CreatedAt time.Time
}

// NewTask returns a task created at the current instant, in UTC with second precision.
func NewTask(text string) Task {
	return Task{
		Text:      text,
		CreatedAt: now().UTC().Truncate(time.Second),
	}
}

// String renders the task as a listing line body: the text padded to
// TextWidth followed by the local creation time. Long text is not truncated.
func (t Task) String() string {
	return fmt.Sprintf("%s [%s]", runewidth.FillRight(t.Text, TextWidth), t.CreatedAt.Local().Format(displayTimeLayout))
}

// taskData is the stored form of a Task.
type taskData struct {
	Text      *string `json:"text" yaml:"text"`
	CreatedAt *int64  `json:"created_at" yaml:"created_at"`
}

func (t Task) toData() taskData {
	text := t.Text
	createdAt := t.CreatedAt.Unix()
	return taskData{Text: &text, CreatedAt: &createdAt}
}

// MarshalJSON encodes the creation time as seconds since the epoch.
func (t Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toData())
}

// UnmarshalJSON requires both fields to be present.
func (t *Task) UnmarshalJSON(b []byte) error {
	var data taskData
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	if data.Text == nil {
		return fmt.Errorf("missing field %q", "text")
	}
	if data.CreatedAt == nil {
		return fmt.Errorf("missing field %q", "created_at")
	}
	t.Text = *data.Text
	t.CreatedAt = time.Unix(*data.CreatedAt, 0).UTC()
	return nil
}

// MarshalYAML mirrors the JSON layout.
func (t Task) MarshalYAML() (interface{}, error) {
	return t.toData(), nil
}
