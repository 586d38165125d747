package importer

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

//go:embed tasks.schema.json
var taskListSchema string

const schemaURL = "ganttline://tasks.schema.json"

// TaskRecord is one task as it appears in an import or export file.
type TaskRecord struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Member    string             `json:"member,omitempty"`
	Status    string             `json:"status,omitempty"`
	Impact    string             `json:"impact,omitempty"`
	Progress  *int               `json:"progress,omitempty"`
	Porgress  *int               `json:"porgress,omitempty"` // legacy spelling, read only
	Start     string             `json:"start"`
	End       string             `json:"end"`
	DependsOn []DependencyRecord `json:"depends_on"`
}

// DependencyRecord names a predecessor of the enclosing task.
type DependencyRecord struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Document is a parsed task list.
type Document struct {
	Tasks []TaskRecord
}

// SchemaError is a JSON schema violation at a location in the document.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// LoadFile reads and parses a task list file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse accepts either a bare JSON array of tasks or an object with a
// "tasks" array, checks it against the task list schema and decodes it.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parsing task list: not valid JSON")
	}

	root := gjson.ParseBytes(data)
	var raw string
	switch {
	case root.IsArray():
		raw = root.Raw
	case root.IsObject() && root.Get("tasks").IsArray():
		raw = root.Get("tasks").Raw
	default:
		return nil, errors.New("parsing task list: expected an array of tasks or an object with a \"tasks\" array")
	}

	if errs := validateAgainstSchema(raw); len(errs) > 0 {
		return nil, fmt.Errorf("task list does not match schema: %w", errors.Join(errs...))
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc.Tasks); err != nil {
		return nil, fmt.Errorf("parsing task list: %w", err)
	}
	return &doc, nil
}

func validateAgainstSchema(raw string) []error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(taskListSchema)); err != nil {
		return []error{fmt.Errorf("loading schema: %w", err)}
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return []error{fmt.Errorf("compiling schema: %w", err)}
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return []error{err}
	}

	err = schema.Validate(v)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []error{err}
	}
	var errs []error
	collectSchemaErrors(&errs, ve)
	return errs
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &SchemaError{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// pointerToPath turns "/0/depends_on/1/type" into "tasks[0].depends_on[1].type".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("tasks")
	for _, part := range strings.Split(ptr, "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			b.WriteString("[" + part + "]")
			continue
		}
		b.WriteString("." + part)
	}
	return b.String()
}
