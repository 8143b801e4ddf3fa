// Package project holds the project aggregate: members, tasks, their
// requirements, member-task assignments, and reminders.
//
// All indices in the public API are 1-based. Every mutating operation
// validates its arguments before changing anything, so a rejected call leaves
// the project exactly as it was.
package project

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Project is the aggregate root.
type Project struct {
	id          string
	description string
	members     MemberList
	tasks       TaskList
	assignments *AssignmentIndex
	reminders   ReminderList
}

// New creates an empty project.
func New(description string) (*Project, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("project: %w", ErrMissingDescription)
	}
	return &Project{
		id:          uuid.NewString(),
		description: description,
		assignments: NewAssignmentIndex(),
	}, nil
}

// ID returns the project's unique identifier.
func (p *Project) ID() string { return p.id }

// Description returns the project description.
func (p *Project) Description() string { return p.description }

// NumMembers returns the number of members.
func (p *Project) NumMembers() int { return p.members.Len() }

// NumTasks returns the number of tasks.
func (p *Project) NumTasks() int { return p.tasks.Len() }

// NumReminders returns the number of reminders.
func (p *Project) NumReminders() int { return p.reminders.Len() }

// Members returns copies of all members in index order.
func (p *Project) Members() []Member { return p.members.All() }

// Tasks returns copies of all tasks in index order.
func (p *Project) Tasks() []Task { return p.tasks.All() }

// Reminders returns copies of all reminders in index order.
func (p *Project) Reminders() []Reminder { return p.reminders.All() }

// Member returns a copy of the member at index.
func (p *Project) Member(index int) (Member, error) {
	m, err := p.members.Get(index)
	if err != nil {
		return Member{}, err
	}
	return *m, nil
}

// Task returns a copy of the task at index.
func (p *Project) Task(index int) (Task, error) {
	t, err := p.tasks.Get(index)
	if err != nil {
		return Task{}, err
	}
	return t.Clone(), nil
}

// AddMember appends a member; its index becomes the previous count plus one.
func (p *Project) AddMember(m Member) (Member, error) {
	if !validName(m.Name) {
		return Member{}, ErrMissingName
	}
	added := m
	p.members.add(&added)
	return added, nil
}

// EditMember applies a partial update and returns the names of changed fields.
func (p *Project) EditMember(index int, u MemberUpdate) ([]string, error) {
	m, err := p.members.Get(index)
	if err != nil {
		return nil, err
	}
	if u.IsZero() {
		return nil, ErrNoChanges
	}
	if u.Name != nil && !validName(*u.Name) {
		return nil, ErrMissingName
	}
	return m.apply(u), nil
}

// RemoveMember deletes a member, drops its assignments, and renumbers the
// remaining members and the assignments that referenced them.
func (p *Project) RemoveMember(index int) (Member, error) {
	if _, err := p.members.Get(index); err != nil {
		return Member{}, err
	}
	removed := p.members.remove(index)
	p.assignments.RemoveMember(index)
	return *removed, nil
}

// AddTask appends a task.
func (p *Project) AddTask(t Task) (Task, error) {
	if !validName(t.Description) {
		return Task{}, fmt.Errorf("task: %w", ErrMissingDescription)
	}
	if t.Priority < 0 {
		return Task{}, fmt.Errorf("task priority must be positive, got %d", t.Priority)
	}
	added := t.Clone()
	if added.Status == "" {
		added.Status = StatusOpen
	}
	p.tasks.add(&added)
	return added.Clone(), nil
}

// EditTask applies a partial update and returns the names of changed fields.
func (p *Project) EditTask(index int, u TaskUpdate) ([]string, error) {
	t, err := p.tasks.Get(index)
	if err != nil {
		return nil, err
	}
	if u.IsZero() {
		return nil, ErrNoChanges
	}
	if u.Description != nil && !validName(*u.Description) {
		return nil, fmt.Errorf("task: %w", ErrMissingDescription)
	}
	if u.Priority != nil && *u.Priority < 1 {
		return nil, fmt.Errorf("task priority must be positive, got %d", *u.Priority)
	}
	return t.apply(u), nil
}

// RemoveTask deletes a task, drops its assignments, and renumbers the
// remaining tasks and the assignments that referenced them.
func (p *Project) RemoveTask(index int) (Task, error) {
	if _, err := p.tasks.Get(index); err != nil {
		return Task{}, err
	}
	removed := p.tasks.remove(index)
	p.assignments.RemoveTask(index)
	return removed.Clone(), nil
}

// EditTaskRequirements applies requirement edits to a task as one unit and
// returns a line describing each applied change.
func (p *Project) EditTaskRequirements(index int, edits []RequirementEdit) ([]string, error) {
	t, err := p.tasks.Get(index)
	if err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return nil, ErrNoChanges
	}
	next, applied, err := applyRequirementEdits(t.Requirements, edits)
	if err != nil {
		return nil, err
	}
	t.Requirements = next
	return applied, nil
}

// CreateAssignment assigns a member to a task.
func (p *Project) CreateAssignment(taskIndex, memberIndex int) error {
	if err := p.checkPair(taskIndex, memberIndex); err != nil {
		return err
	}
	return p.assignments.Add(taskIndex, memberIndex)
}

// RemoveAssignment unassigns a member from a task.
func (p *Project) RemoveAssignment(taskIndex, memberIndex int) error {
	if err := p.checkPair(taskIndex, memberIndex); err != nil {
		return err
	}
	return p.assignments.Remove(taskIndex, memberIndex)
}

// ContainsAssignment reports whether the member is assigned to the task.
func (p *Project) ContainsAssignment(taskIndex, memberIndex int) bool {
	return p.assignments.Contains(taskIndex, memberIndex)
}

// NumAssignments returns the number of member-task pairs.
func (p *Project) NumAssignments() int { return p.assignments.Len() }

// Assignments returns every (task, member) index pair.
func (p *Project) Assignments() [][2]int { return p.assignments.Pairs() }

func (p *Project) checkPair(taskIndex, memberIndex int) error {
	if _, err := p.tasks.Get(taskIndex); err != nil {
		return err
	}
	if _, err := p.members.Get(memberIndex); err != nil {
		return err
	}
	return nil
}

// TaskAssignment pairs a task with its assigned members.
type TaskAssignment struct {
	Task    Task
	Members []Member
}

// MemberAssignment pairs a member with the tasks assigned to them.
type MemberAssignment struct {
	Member Member
	Tasks  []Task
}

// TasksAndAssignedMembers lists every task with its assigned members, in task order.
func (p *Project) TasksAndAssignedMembers() []TaskAssignment {
	out := make([]TaskAssignment, 0, p.tasks.Len())
	for _, t := range p.tasks.tasks {
		ta := TaskAssignment{Task: t.Clone()}
		for _, mi := range p.assignments.MembersOf(t.Index) {
			ta.Members = append(ta.Members, *p.members.members[mi-1])
		}
		out = append(out, ta)
	}
	return out
}

// MembersIndividualTaskList lists every member with their assigned tasks, in member order.
func (p *Project) MembersIndividualTaskList() []MemberAssignment {
	out := make([]MemberAssignment, 0, p.members.Len())
	for _, m := range p.members.members {
		ma := MemberAssignment{Member: *m}
		for _, ti := range p.assignments.TasksOf(m.Index) {
			ma.Tasks = append(ma.Tasks, p.tasks.tasks[ti-1].Clone())
		}
		out = append(out, ma)
	}
	return out
}

// AssignedTasks lists only the tasks that have at least one member.
func (p *Project) AssignedTasks() []TaskAssignment {
	var out []TaskAssignment
	for _, ta := range p.TasksAndAssignedMembers() {
		if len(ta.Members) > 0 {
			out = append(out, ta)
		}
	}
	return out
}

// AddReminder appends a reminder.
func (p *Project) AddReminder(r Reminder) (Reminder, error) {
	if !validName(r.Text) {
		return Reminder{}, fmt.Errorf("reminder: %w", ErrMissingDescription)
	}
	added := r
	p.reminders.add(&added)
	return added, nil
}

// MarkReminder sets the done flag of a reminder.
func (p *Project) MarkReminder(index int, done bool) (Reminder, error) {
	r, err := p.reminders.Get(index)
	if err != nil {
		return Reminder{}, err
	}
	r.Done = done
	return *r, nil
}

// Reminder returns a copy of the reminder at index.
func (p *Project) Reminder(index int) (Reminder, error) {
	r, err := p.reminders.Get(index)
	if err != nil {
		return Reminder{}, err
	}
	return *r, nil
}
