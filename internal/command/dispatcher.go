// Package command interprets project-management command lines.
//
// A Dispatcher matches each line against an ordered table of literal,
// case-sensitive prefixes, parses the remainder into fields, validates them,
// and calls exactly one Project operation. Every failure becomes a Rejected
// outcome; no input aborts the session.
package command

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/archduke-go/internal/project"
)

// User-facing messages.
const (
	MsgInvalidCommand   = "Invalid command. Try again!"
	MsgEmptyCommand     = "Please enter a command."
	MsgNotImplemented   = "Not implemented yet"
	MsgAddMemberFailed  = "Failed to add member. Please ensure you have entered at least the name of the new member."
	MsgAddTaskFailed    = "Failed to create new task. Please ensure all necessary parameters are given."
	MsgEditTaskEmpty    = "Task description cannot be empty."
	MsgTaskFormat       = "Please enter your task format correctly."
	MsgNoRequirements   = "This task has no specific requirements."
	MsgInvalidSort      = "Invalid sort criteria. Try again!"
	MsgNoChanges        = "Nothing to update. Please specify at least one field to change."
	MsgNoValidTasks     = "No valid task indexes found. Try again!"
	MsgNoAssignees      = "Please specify members to assign (to/) or unassign (rm/)."
	MsgRequirementEmpty = "Requirements cannot be empty."
	MsgNotManaging      = "No project is being managed."
)

// match is how a route compares its prefix against a line.
type match int

const (
	matchPrefix match = iota
	matchExact
)

type route struct {
	prefix string
	match  match
	handle func(d *Dispatcher, args string) Outcome
}

// routes is checked top to bottom; the first match wins. Where one prefix
// extends another, the longer one must come first.
var routes = []route{
	{"exit", matchExact, (*Dispatcher).exit},
	{"bye", matchExact, (*Dispatcher).bye},
	{"add member ", matchPrefix, (*Dispatcher).addMember},
	{"edit member ", matchPrefix, (*Dispatcher).editMember},
	{"delete member ", matchPrefix, (*Dispatcher).deleteMember},
	{"view members", matchExact, (*Dispatcher).viewMembers},
	{"view credits", matchExact, (*Dispatcher).notImplemented},
	{"view assignments", matchExact, (*Dispatcher).viewAssignments},
	{"view assigned tasks", matchExact, (*Dispatcher).viewAssignedTasks},
	{"view task requirements i/", matchPrefix, (*Dispatcher).viewTaskRequirements},
	{"view tasks ", matchPrefix, (*Dispatcher).viewSortedTasks},
	{"view tasks", matchExact, (*Dispatcher).viewTasks},
	{"add task ", matchPrefix, (*Dispatcher).addTask},
	{"edit task requirements ", matchPrefix, (*Dispatcher).editTaskRequirements},
	{"edit task ", matchPrefix, (*Dispatcher).editTask},
	{"delete task ", matchPrefix, (*Dispatcher).deleteTask},
	{"assign task ", matchPrefix, (*Dispatcher).assignTask},
	{"add reminder ", matchPrefix, (*Dispatcher).addReminder},
	{"view reminders", matchExact, (*Dispatcher).viewReminders},
	{"view reminder ", matchPrefix, (*Dispatcher).viewReminder},
	{"mark reminder ", matchPrefix, (*Dispatcher).markReminder},
	{"unmark reminder ", matchPrefix, (*Dispatcher).unmarkReminder},
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher turns command lines into operations on one project.
type Dispatcher struct {
	project  *project.Project
	logger   *log.Logger
	managing bool
}

// New returns a dispatcher managing p.
func New(p *project.Project, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		project:  p,
		logger:   log.New(io.Discard),
		managing: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Project returns the managed project.
func (d *Dispatcher) Project() *project.Project {
	return d.project
}

// Managing reports whether the dispatcher still accepts commands. It turns
// false after "exit" or "bye".
func (d *Dispatcher) Managing() bool {
	return d.managing
}

// Handle processes one input line.
func (d *Dispatcher) Handle(line string) Outcome {
	line = strings.TrimRight(line, "\r\n")
	if !d.managing || d.project == nil {
		return rejected(MsgNotManaging)
	}
	if strings.TrimSpace(line) == "" {
		return rejected(MsgEmptyCommand)
	}

	for _, r := range routes {
		var args string
		switch r.match {
		case matchExact:
			if line != r.prefix {
				continue
			}
		case matchPrefix:
			if !strings.HasPrefix(line, r.prefix) {
				continue
			}
			args = line[len(r.prefix):]
		}
		out := r.handle(d, args)
		d.trace(strings.TrimSpace(r.prefix), out)
		return out
	}

	out := rejected(MsgInvalidCommand)
	d.trace("", out)
	return out
}

func (d *Dispatcher) trace(cmd string, out Outcome) {
	logger := d.logger.With("project", d.project.ID(), "command", cmd)
	if out.Kind == Rejected {
		logger.Info("command rejected", "reason", out.Reason)
		return
	}
	logger.Debug("command handled", "outcome", out.Kind.String())
}

func (d *Dispatcher) exit(string) Outcome {
	d.managing = false
	return Outcome{Kind: Exit}
}

func (d *Dispatcher) bye(string) Outcome {
	d.managing = false
	return Outcome{Kind: Quit}
}

func (d *Dispatcher) notImplemented(string) Outcome {
	return rejected(MsgNotImplemented)
}

// parseIndex parses a 1-based index token. Bounds are checked by the project.
func parseIndex(token, entity string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, &project.IndexError{Entity: entity}
	}
	return n, nil
}

// leadingIndex parses the first word of args as an index and returns the rest.
func leadingIndex(args, entity string) (int, string, error) {
	args = strings.TrimSpace(args)
	token, rest, _ := strings.Cut(args, " ")
	n, err := parseIndex(token, entity)
	return n, rest, err
}

// rejection converts a domain error into a Rejected outcome.
func rejection(err error) Outcome {
	var ie *project.IndexError
	switch {
	case errors.As(err, &ie):
		return rejected(ie.Error())
	case errors.Is(err, project.ErrNoChanges):
		return rejected(MsgNoChanges)
	case errors.Is(err, project.ErrRequirementNotFound):
		return rejected("The requirement entered does not exist.")
	case errors.Is(err, project.ErrDuplicateRemoval):
		return rejected("Each requirement can only be removed once.")
	case errors.Is(err, project.ErrMissingName):
		return rejected("Member name cannot be empty.")
	case errors.Is(err, project.ErrDuplicateAssignment):
		return rejected("The member is already assigned to this task.")
	case errors.Is(err, project.ErrNotAssigned):
		return rejected("The member is not assigned to this task.")
	}
	return rejected(err.Error())
}
