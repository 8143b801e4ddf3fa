package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/archduke-go/internal/project"
)

const validDoc = `{
  "schema_version": 1,
  "projects": [
    {
      "description": "Website revamp",
      "members": [
        {"name": "Alice", "phone": "555-0100"},
        {"name": "Bob", "email": "bob@example.com"}
      ],
      "tasks": [
        {"description": "Design", "priority": 2, "due": "01/11/2026", "category": "ux",
         "status": "doing", "requirements": ["offline mode", "dark theme"]},
        {"description": "Build"}
      ],
      "assignments": [{"task": 1, "member": 1}, {"task": 1, "member": 2}, {"task": 2, "member": 2}],
      "reminders": [{"text": "Book room", "due": "5/11/2026"}, {"text": "Order pizza", "done": true}]
    },
    {"description": "Mobile app"}
  ]
}`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndApply(t *testing.T) {
	doc, err := Load(writeSeed(t, validDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	repo := project.NewRepository()
	n, err := doc.Apply(repo)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if n != 2 || repo.Len() != 2 {
		t.Fatalf("applied %d projects, repo has %d, want 2", n, repo.Len())
	}

	p, _ := repo.Get(1)
	if p.Description() != "Website revamp" || p.NumMembers() != 2 || p.NumTasks() != 2 || p.NumReminders() != 2 {
		t.Errorf("project 1 = %q with %d members, %d tasks, %d reminders",
			p.Description(), p.NumMembers(), p.NumTasks(), p.NumReminders())
	}
	if p.NumAssignments() != 3 || !p.ContainsAssignment(2, 2) {
		t.Errorf("assignments = %v", p.Assignments())
	}

	design, _ := p.Task(1)
	if design.Status != project.StatusDoing || design.Priority != 2 || design.Category != "ux" {
		t.Errorf("task 1 = %+v", design)
	}
	if design.Due == nil || design.Due.Day() != 1 || design.Due.Month() != 11 {
		t.Errorf("task 1 due = %v", design.Due)
	}
	if len(design.Requirements) != 2 || design.Requirements[1] != "dark theme" {
		t.Errorf("task 1 requirements = %q", design.Requirements)
	}

	build, _ := p.Task(2)
	if build.Status != project.StatusOpen || build.Due != nil {
		t.Errorf("task 2 = %+v, want open with no due date", build)
	}

	r, _ := p.Reminder(2)
	if !r.Done {
		t.Error("reminder 2 should be done")
	}
}

func TestValidateReportsPaths(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{
			name:     "wrong version",
			doc:      `{"schema_version": 2, "projects": []}`,
			wantPath: "schema_version",
		},
		{
			name:     "missing projects",
			doc:      `{"schema_version": 1}`,
			wantPath: "",
		},
		{
			name:     "blank member name",
			doc:      `{"schema_version": 1, "projects": [{"description": "A", "members": [{"name": "  "}]}]}`,
			wantPath: "projects[0].members[0].name",
		},
		{
			name:     "bad date",
			doc:      `{"schema_version": 1, "projects": [{"description": "A", "tasks": [{"description": "T", "due": "2026-11-01"}]}]}`,
			wantPath: "projects[0].tasks[0].due",
		},
		{
			name:     "bad status",
			doc:      `{"schema_version": 1, "projects": [{"description": "A", "tasks": [{"description": "T", "status": "blocked"}]}]}`,
			wantPath: "projects[0].tasks[0].status",
		},
		{
			name:     "zero priority",
			doc:      `{"schema_version": 1, "projects": [{"description": "A", "tasks": [{"description": "T", "priority": 0}]}]}`,
			wantPath: "projects[0].tasks[0].priority",
		},
		{
			name:     "unknown field",
			doc:      `{"schema_version": 1, "projects": [{"description": "A", "owner": "me"}]}`,
			wantPath: "projects[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate([]byte(tt.doc))
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, err := range errs {
				var ve *ValidationError
				if errors.As(err, &ve) && ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %q in %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidateAcceptsValidDocument(t *testing.T) {
	if errs := Validate([]byte(validDoc)); len(errs) != 0 {
		t.Fatalf("Validate() = %v", errs)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"schema_version": 1,`))
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Fatalf("Parse() error = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() error = %v, want not-exist", err)
	}
}

func TestApplyIsAllOrNothing(t *testing.T) {
	doc, err := Parse([]byte(`{"schema_version": 1, "projects": [
		{"description": "Good"},
		{"description": "Bad", "members": [{"name": "Alice"}], "tasks": [{"description": "T"}],
		 "assignments": [{"task": 1, "member": 3}]}
	]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	repo := project.NewRepository()
	_, err = doc.Apply(repo)
	if err == nil {
		t.Fatal("expected error for an assignment to a missing member")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Path != "projects[1].assignments[0]" {
		t.Errorf("error = %v, want one at projects[1].assignments[0]", err)
	}
	if !project.IsIndexError(err, project.EntityMember) {
		t.Errorf("error = %v, want a member index error", err)
	}
	if repo.Len() != 0 {
		t.Errorf("repo has %d projects after a failed apply", repo.Len())
	}
}

func TestApplyRejectsDuplicateAssignment(t *testing.T) {
	doc, err := Parse([]byte(`{"schema_version": 1, "projects": [
		{"description": "P", "members": [{"name": "A"}], "tasks": [{"description": "T"}],
		 "assignments": [{"task": 1, "member": 1}, {"task": 1, "member": 1}]}
	]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := doc.Apply(project.NewRepository()); !errors.Is(err, project.ErrDuplicateAssignment) {
		t.Errorf("Apply() error = %v, want ErrDuplicateAssignment", err)
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/projects/0/tasks/2/due", "projects[0].tasks[2].due"},
		{"#/schema_version", "schema_version"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		if got := jsonPointerToPath(tt.ptr); got != tt.want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
		}
	}
}
