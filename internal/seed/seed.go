// Package seed loads an optional JSON document that pre-populates projects
// at startup. The document is validated against a bundled JSON Schema and
// applied through the project operations; nothing is ever written back.
package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/archduke-go/internal/datetime"
	"github.com/nibzard/archduke-go/internal/project"
)

// SchemaVersion is the only supported document version.
const SchemaVersion = 1

// Document is a seed file.
type Document struct {
	SchemaVersion int       `json:"schema_version"`
	Projects      []Project `json:"projects"`
}

// Project seeds one project.
type Project struct {
	Description string       `json:"description"`
	Members     []Member     `json:"members,omitempty"`
	Tasks       []Task       `json:"tasks,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
	Reminders   []Reminder   `json:"reminders,omitempty"`
}

type Member struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type Task struct {
	Description  string   `json:"description"`
	Priority     int      `json:"priority,omitempty"`
	Due          string   `json:"due,omitempty"`
	Category     string   `json:"category,omitempty"`
	Status       string   `json:"status,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// Assignment links a task and a member by their 1-based positions.
type Assignment struct {
	Task   int `json:"task"`
	Member int `json:"member"`
}

type Reminder struct {
	Text string `json:"text"`
	Due  string `json:"due,omitempty"`
	Done bool   `json:"done,omitempty"`
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Load reads, validates and decodes the seed document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return doc, nil
}

// Parse validates data against the bundled schema and decodes it.
func Parse(data []byte) (*Document, error) {
	if errs := Validate(data); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed document: %w", err)
	}
	return &doc, nil
}

// Validate checks data against the bundled schema. Each violation is
// reported as a *ValidationError.
func Validate(data []byte) []error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)}}
	}

	schema, err := compileSchema()
	if err != nil {
		return []error{err}
	}
	err = schema.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []error{err}
	}
	var errs []error
	collectSchemaErrors(&errs, ve)
	return errs
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(SchemaURL, strings.NewReader(bundledSchema)); err != nil {
		return nil, fmt.Errorf("load seed schema: %w", err)
	}
	schema, err := compiler.Compile(SchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	return schema, nil
}

func collectSchemaErrors(errs *[]error, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath turns "/projects/0/tasks/2/due" into "projects[0].tasks[2].due".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// Build creates the projects described by the document. Every entity goes
// through the project operations, so an entry the schema accepts but the
// domain rejects (for example an assignment to a member that does not
// exist) fails the whole build.
func (d *Document) Build() ([]*project.Project, error) {
	projects := make([]*project.Project, 0, len(d.Projects))
	for i, ps := range d.Projects {
		p, err := ps.build()
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Path = fmt.Sprintf("projects[%d]%s", i, ve.Path)
			}
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// Apply builds the document's projects and adds them to repo. Nothing is
// added if any project fails to build.
func (d *Document) Apply(repo *project.Repository) (int, error) {
	projects, err := d.Build()
	if err != nil {
		return 0, err
	}
	for _, p := range projects {
		repo.Add(p)
	}
	return len(projects), nil
}

func (ps Project) build() (*project.Project, error) {
	p, err := project.New(ps.Description)
	if err != nil {
		return nil, atPath(".description", err)
	}
	for i, m := range ps.Members {
		if _, err := p.AddMember(project.Member{Name: m.Name, Phone: m.Phone, Email: m.Email}); err != nil {
			return nil, atPath(fmt.Sprintf(".members[%d]", i), err)
		}
	}
	for i, ts := range ps.Tasks {
		t, err := ts.task()
		if err != nil {
			return nil, atPath(fmt.Sprintf(".tasks[%d]", i), err)
		}
		if _, err := p.AddTask(t); err != nil {
			return nil, atPath(fmt.Sprintf(".tasks[%d]", i), err)
		}
	}
	for i, a := range ps.Assignments {
		if err := p.CreateAssignment(a.Task, a.Member); err != nil {
			return nil, atPath(fmt.Sprintf(".assignments[%d]", i), err)
		}
	}
	for i, rs := range ps.Reminders {
		r := project.Reminder{Text: rs.Text, Done: rs.Done}
		if rs.Due != "" {
			due, err := datetime.Parse(rs.Due)
			if err != nil {
				return nil, atPath(fmt.Sprintf(".reminders[%d].due", i), err)
			}
			r.Due = &due
		}
		if _, err := p.AddReminder(r); err != nil {
			return nil, atPath(fmt.Sprintf(".reminders[%d]", i), err)
		}
	}
	return p, nil
}

func (ts Task) task() (project.Task, error) {
	t := project.Task{
		Description:  ts.Description,
		Priority:     ts.Priority,
		Category:     ts.Category,
		Requirements: append([]string(nil), ts.Requirements...),
	}
	if ts.Status != "" {
		status, err := project.ParseStatus(ts.Status)
		if err != nil {
			return project.Task{}, err
		}
		t.Status = status
	}
	if ts.Due != "" {
		due, err := datetime.Parse(ts.Due)
		if err != nil {
			return project.Task{}, err
		}
		t.Due = &due
	}
	return t, nil
}

// atPath attaches the location of an entry to a domain error.
func atPath(path string, err error) error {
	return &ValidationError{Path: path, Err: err}
}
