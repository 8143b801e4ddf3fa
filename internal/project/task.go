package project

import (
	"fmt"
	"strings"
	"time"
)

// Status represents a task status.
type Status string

const (
	StatusOpen  Status = "open"
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// ParseStatus parses a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, nil
	case StatusTodo:
		return StatusTodo, nil
	case StatusDoing:
		return StatusDoing, nil
	case StatusDone:
		return StatusDone, nil
	}
	return "", fmt.Errorf("invalid status %q, must be one of: open, todo, doing, done", s)
}

// Task is a unit of work within a project.
type Task struct {
	Description string
	// Priority is unset when zero; 1 is the highest priority.
	Priority int
	Due      *time.Time
	Category string
	Status   Status
	// Requirements are kept in insertion order.
	Requirements []string
	// Index is the 1-based position of the task within its project.
	Index int
}

// TaskUpdate holds the fields of a partial task edit.
// Nil fields are left unchanged.
type TaskUpdate struct {
	Description *string
	Priority    *int
	Due         *time.Time
	Category    *string
	Status      *Status
}

// IsZero returns true if the update changes nothing.
func (u TaskUpdate) IsZero() bool {
	return u.Description == nil && u.Priority == nil && u.Due == nil &&
		u.Category == nil && u.Status == nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() Task {
	c := *t
	if t.Due != nil {
		due := *t.Due
		c.Due = &due
	}
	if t.Requirements != nil {
		c.Requirements = append([]string(nil), t.Requirements...)
	}
	return c
}

func (t *Task) apply(u TaskUpdate) []string {
	var applied []string
	if u.Description != nil {
		t.Description = *u.Description
		applied = append(applied, "description")
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
		applied = append(applied, "priority")
	}
	if u.Due != nil {
		due := *u.Due
		t.Due = &due
		applied = append(applied, "due date")
	}
	if u.Category != nil {
		t.Category = *u.Category
		applied = append(applied, "category")
	}
	if u.Status != nil {
		t.Status = *u.Status
		applied = append(applied, "status")
	}
	return applied
}

// TaskList is an ordered collection of tasks with contiguous 1-based indices.
type TaskList struct {
	tasks []*Task
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Get returns the task at a 1-based index.
func (l *TaskList) Get(index int) (*Task, error) {
	if index < 1 || index > len(l.tasks) {
		return nil, indexError(EntityTask, index)
	}
	return l.tasks[index-1], nil
}

// All returns copies of the tasks in insertion order.
func (l *TaskList) All() []Task {
	out := make([]Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (l *TaskList) add(t *Task) {
	t.Index = len(l.tasks) + 1
	l.tasks = append(l.tasks, t)
}

func (l *TaskList) remove(index int) *Task {
	removed := l.tasks[index-1]
	l.tasks = append(l.tasks[:index-1], l.tasks[index:]...)
	for i := index - 1; i < len(l.tasks); i++ {
		l.tasks[i].Index = i + 1
	}
	return removed
}
