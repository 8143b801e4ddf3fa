// Package view renders command results as text lines.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/nibzard/archduke-go/internal/command"
	"github.com/nibzard/archduke-go/internal/datetime"
	"github.com/nibzard/archduke-go/internal/project"
)

// Rule frames each block of console output.
var Rule = strings.Repeat("_", 60)

// Write prints lines between rules, each indented with a tab.
func Write(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, "\t"+Rule)
	for _, line := range lines {
		fmt.Fprintln(w, "\t"+line)
	}
	fmt.Fprintln(w, "\t"+Rule)
}

// Outcome returns the lines for a dispatcher outcome. Exit and Quit produce
// no lines; the caller decides what to print when leaving.
func Outcome(out command.Outcome) []string {
	switch out.Kind {
	case command.Rejected:
		return []string{out.Reason}
	case command.Applied:
		return Result(out.Result)
	}
	return nil
}

// Result returns the lines for an applied command result.
func Result(r command.Result) []string {
	switch r := r.(type) {
	case command.Message:
		return []string{r.Text}
	case command.MemberAdded:
		return []string{
			"Added new member to: " + strings.Join(r.Member.Details(), ", "),
			fmt.Sprintf("Now you have %d %s in the project.", r.Count, plural(r.Count, "member", "members")),
		}
	case command.MemberEdited:
		return []string{
			fmt.Sprintf("Updated %s of member %d.", strings.Join(r.Fields, ", "), r.Member.Index),
			Member(r.Member),
		}
	case command.MemberRemoved:
		return []string{fmt.Sprintf("Removed member with the index number %d (%s).", r.Index, r.Member.Name)}
	case command.MemberList:
		if len(r.Members) == 0 {
			return []string{"There are no members in this project."}
		}
		lines := []string{"Members of the project:"}
		for _, m := range r.Members {
			lines = append(lines, Member(m))
		}
		return lines
	case command.TaskAdded:
		return []string{
			"Added new task: " + Task(r.Task),
			fmt.Sprintf("Now you have %d %s in the project.", r.Count, plural(r.Count, "task", "tasks")),
		}
	case command.TaskEdited:
		return []string{
			fmt.Sprintf("Updated %s of task %d.", strings.Join(r.Fields, ", "), r.Task.Index),
			Task(r.Task),
		}
	case command.TaskRemoved:
		return []string{fmt.Sprintf("Removed task with the index number %d (%s).", r.Index, r.Task.Description)}
	case command.TaskList:
		if len(r.Tasks) == 0 {
			return []string{"There are no tasks in this project."}
		}
		header := "Tasks of the project:"
		if r.SortKey != "" {
			header = fmt.Sprintf("Tasks of the project sorted by %s:", r.SortKey)
		}
		lines := []string{header}
		for _, t := range r.Tasks {
			lines = append(lines, Task(t))
		}
		return lines
	case command.Requirements:
		lines := []string{fmt.Sprintf("Requirements of task %d (%s):", r.Task.Index, r.Task.Description)}
		for i, req := range r.Task.Requirements {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, req))
		}
		return lines
	case command.RequirementsEdited:
		lines := []string{fmt.Sprintf("Updated requirements of task %d (%s):", r.Task.Index, r.Task.Description)}
		for _, c := range r.Changes {
			lines = append(lines, "  "+c)
		}
		return lines
	case command.AssignedTasks:
		if len(r.Entries) == 0 {
			return []string{"No tasks have been assigned yet."}
		}
		lines := []string{"Assigned tasks:"}
		for _, e := range r.Entries {
			lines = append(lines, fmt.Sprintf("%d. %s: %s", e.Task.Index, e.Task.Description, joinMembers(e.Members)))
		}
		return lines
	case command.MemberAssignments:
		if len(r.Entries) == 0 {
			return []string{"There are no members in this project."}
		}
		lines := []string{"Assignments by member:"}
		for _, e := range r.Entries {
			lines = append(lines, fmt.Sprintf("%d. %s: %s", e.Member.Index, e.Member.Name, joinTasks(e.Tasks)))
		}
		return lines
	case command.AssignmentReport:
		return r.Lines
	case command.ReminderAdded:
		return []string{
			"Added reminder: " + Reminder(r.Reminder),
			fmt.Sprintf("Now you have %d %s in the project.", r.Count, plural(r.Count, "reminder", "reminders")),
		}
	case command.ReminderMarked:
		if r.Reminder.Done {
			return []string{"Nice! I've marked this reminder as done:", Reminder(r.Reminder)}
		}
		return []string{"OK, I've marked this reminder as not done yet:", Reminder(r.Reminder)}
	case command.ReminderView:
		return []string{Reminder(r.Reminder)}
	case command.ReminderList:
		if len(r.Reminders) == 0 {
			return []string{"There are no reminders in this project."}
		}
		lines := []string{"Reminders:"}
		for _, rem := range r.Reminders {
			lines = append(lines, Reminder(rem))
		}
		return lines
	}
	return nil
}

// Member formats one member line.
func Member(m project.Member) string {
	return fmt.Sprintf("%d. %s", m.Index, strings.Join(m.Details(), " | "))
}

// Task formats one task line.
func Task(t project.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. [%s] %s", t.Index, t.Status, t.Description)
	if t.Priority > 0 {
		fmt.Fprintf(&b, " | Priority: %d", t.Priority)
	}
	if t.Due != nil {
		fmt.Fprintf(&b, " | Due: %s", datetime.Format(*t.Due))
	}
	if t.Category != "" {
		fmt.Fprintf(&b, " | Category: %s", t.Category)
	}
	if n := len(t.Requirements); n > 0 {
		fmt.Fprintf(&b, " | %d %s", n, plural(n, "requirement", "requirements"))
	}
	return b.String()
}

// Reminder formats one reminder line.
func Reminder(r project.Reminder) string {
	mark := " "
	if r.Done {
		mark = "X"
	}
	line := fmt.Sprintf("%d. [%s] %s", r.Index, mark, r.Text)
	if r.Due != nil {
		line += " (by " + datetime.Format(*r.Due) + ")"
	}
	return line
}

func joinMembers(ms []project.Member) string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

func joinTasks(ts []project.Task) string {
	if len(ts) == 0 {
		return "(none)"
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = fmt.Sprintf("%d %s", t.Index, t.Description)
	}
	return strings.Join(names, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
