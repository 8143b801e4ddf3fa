package command

import (
	"errors"
	"strconv"
	"strings"

	"github.com/nibzard/archduke-go/internal/datetime"
	"github.com/nibzard/archduke-go/internal/project"
)

var (
	addTaskMarkers      = []string{"t/", "p/", "d/", "c/", "s/", "r/"}
	editTaskMarkers     = []string{"i/", "t/", "p/", "d/", "c/", "s/"}
	requirementsMarkers = []string{"i/", "r/", "rm/"}
	modifyMarkers       = []string{"e/"}
)

var errTaskFormat = errors.New("malformed task field")

func (d *Dispatcher) addTask(args string) Outcome {
	f := ParseFields(args, addTaskMarkers...)
	desc := f.Preamble
	if v, ok := f.Get("t/"); ok {
		desc = v
	}
	u, err := parseTaskUpdate(f)
	if err != nil {
		return rejected(MsgTaskFormat)
	}

	t := project.Task{Description: desc}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	t.Due = u.Due
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	for _, r := range f.All("r/") {
		if strings.TrimSpace(r) == "" {
			return rejected(MsgRequirementEmpty)
		}
		t.Requirements = append(t.Requirements, r)
	}

	added, err := d.project.AddTask(t)
	if errors.Is(err, project.ErrMissingDescription) {
		return rejected(MsgAddTaskFailed)
	}
	if err != nil {
		return rejection(err)
	}
	return applied(TaskAdded{Task: added, Count: d.project.NumTasks()})
}

// parseTaskUpdate reads the optional task fields shared by add and edit.
func parseTaskUpdate(f Fields) (project.TaskUpdate, error) {
	var u project.TaskUpdate
	if v, ok := f.Get("p/"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return u, errTaskFormat
		}
		u.Priority = &n
	}
	if v, ok := f.Get("d/"); ok {
		due, err := datetime.Parse(v)
		if err != nil {
			return u, errTaskFormat
		}
		u.Due = &due
	}
	if v, ok := f.Get("c/"); ok {
		u.Category = &v
	}
	if v, ok := f.Get("s/"); ok {
		s, err := project.ParseStatus(v)
		if err != nil {
			return u, errTaskFormat
		}
		u.Status = &s
	}
	return u, nil
}

func (d *Dispatcher) editTask(args string) Outcome {
	f := ParseFields(args, editTaskMarkers...)
	idx, _ := f.Get("i/")
	index, err := parseIndex(idx, project.EntityTask)
	if err != nil {
		return rejection(err)
	}
	if _, err := d.project.Task(index); err != nil {
		return rejection(err)
	}

	u, err := parseTaskUpdate(f)
	if err != nil {
		return rejected(MsgTaskFormat)
	}
	if v, ok := f.Get("t/"); ok {
		u.Description = &v
	}

	fields, err := d.project.EditTask(index, u)
	if errors.Is(err, project.ErrMissingDescription) {
		return rejected(MsgEditTaskEmpty)
	}
	if err != nil {
		return rejection(err)
	}
	t, _ := d.project.Task(index)
	return applied(TaskEdited{Task: t, Fields: fields})
}

func (d *Dispatcher) deleteTask(args string) Outcome {
	index, _, err := leadingIndex(args, project.EntityTask)
	if err != nil {
		return rejection(err)
	}
	removed, err := d.project.RemoveTask(index)
	if err != nil {
		return rejection(err)
	}
	return applied(TaskRemoved{Index: index, Task: removed})
}

func (d *Dispatcher) viewTasks(string) Outcome {
	return applied(TaskList{Tasks: d.project.Tasks()})
}

func (d *Dispatcher) viewSortedTasks(args string) Outcome {
	key, err := project.ParseSortKey(args)
	if err != nil {
		return rejected(MsgInvalidSort)
	}
	return applied(TaskList{Tasks: d.project.SortedTasks(key), SortKey: key})
}

func (d *Dispatcher) viewAssignedTasks(string) Outcome {
	return applied(AssignedTasks{Entries: d.project.AssignedTasks()})
}

func (d *Dispatcher) viewTaskRequirements(args string) Outcome {
	index, err := parseIndex(args, project.EntityTask)
	if err != nil {
		return rejection(err)
	}
	t, err := d.project.Task(index)
	if err != nil {
		return rejection(err)
	}
	if len(t.Requirements) == 0 {
		return applied(Message{Text: MsgNoRequirements})
	}
	return applied(Requirements{Task: t})
}

func (d *Dispatcher) editTaskRequirements(args string) Outcome {
	f := ParseIndexedFields(args, modifyMarkers, requirementsMarkers...)
	idx, _ := f.Get("i/")
	index, err := parseIndex(idx, project.EntityTask)
	if err != nil {
		return rejection(err)
	}
	if _, err := d.project.Task(index); err != nil {
		return rejection(err)
	}

	var edits []project.RequirementEdit
	for _, v := range f.All("e/") {
		token, text, _ := strings.Cut(v, " ")
		pos, err := parseIndex(token, project.EntityRequirement)
		if err != nil {
			return rejection(err)
		}
		edits = append(edits, project.ModifyRequirement(pos, strings.TrimSpace(text)))
	}
	for _, v := range f.All("rm/") {
		if pos, err := strconv.Atoi(v); err == nil {
			if pos < 1 {
				return rejection(&project.IndexError{Entity: project.EntityRequirement, Index: pos})
			}
			edits = append(edits, project.RemoveRequirementAt(pos))
			continue
		}
		edits = append(edits, project.RemoveRequirementText(v))
	}
	for _, v := range f.All("r/") {
		edits = append(edits, project.AddRequirement(v))
	}

	changes, err := d.project.EditTaskRequirements(index, edits)
	if errors.Is(err, project.ErrMissingDescription) {
		return rejected(MsgRequirementEmpty)
	}
	if err != nil {
		return rejection(err)
	}
	t, _ := d.project.Task(index)
	return applied(RequirementsEdited{Task: t, Changes: changes})
}
