package journal

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed journal.schema.json
var schemaJSON string

const schemaURL = "https://github.com/ByteMirror/journal/journal.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Problem is one schema violation found by Check.
type Problem struct {
	Location string // e.g. "[2].created_at", empty for the document root
	Message  string
}

func (p Problem) String() string {
	if p.Location == "" {
		return p.Message
	}
	return fmt.Sprintf("%s: %s", p.Location, p.Message)
}

// CheckResult is the outcome of validating a journal file.
type CheckResult struct {
	Valid    bool
	Tasks    int
	Problems []Problem
}

// Check validates the journal at path against the journal JSON Schema
// without modifying it. The returned error is only set for I/O failures;
// content problems are reported in the result.
func Check(path string) (*CheckResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return CheckBytes(data)
}

// CheckBytes validates raw journal content.
func CheckBytes(data []byte) (*CheckResult, error) {
	result := &CheckResult{Valid: true}
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}

	schema, err := journalSchema()
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		result.Valid = false
		result.Problems = append(result.Problems, Problem{Message: fmt.Sprintf("not valid JSON: %v", err)})
		return result, nil
	}
	if dec.More() {
		result.Valid = false
		result.Problems = append(result.Problems, Problem{Message: "trailing data after journal array"})
		return result, nil
	}

	if items, ok := doc.([]interface{}); ok {
		result.Tasks = len(items)
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return nil, fmt.Errorf("failed to validate journal: %w", err)
		}
		collectProblems(result, ve)
		return result, nil
	}

	checkTimestamps(result, doc)
	return result, nil
}

// checkTimestamps rejects created_at values the schema's integer type lets
// through but the decoder cannot store: 1.0, 1e3 and anything outside int64.
func checkTimestamps(result *CheckResult, doc interface{}) {
	items, _ := doc.([]interface{})
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		n, ok := fields["created_at"].(json.Number)
		if !ok {
			continue
		}
		if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
			result.Valid = false
			result.Problems = append(result.Problems, Problem{
				Location: fmt.Sprintf("[%d].created_at", i),
				Message:  fmt.Sprintf("%s is not a whole number of seconds within int64 range", n),
			})
		}
	}
}

func journalSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("failed to load journal schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile journal schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

func collectProblems(result *CheckResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Problems = append(result.Problems, Problem{
			Location: pointerToLocation(err.InstanceLocation),
			Message:  err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectProblems(result, cause)
	}
}

// pointerToLocation turns "/2/created_at" into "[2].created_at".
func pointerToLocation(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
