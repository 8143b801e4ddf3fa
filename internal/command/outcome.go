package command

import "github.com/nibzard/archduke-go/internal/project"

// Kind classifies an Outcome.
type Kind int

const (
	// Applied means the command ran; Result describes what happened.
	Applied Kind = iota
	// Rejected means nothing changed; Reason is the message for the user.
	Rejected
	// Exit leaves project management and returns to the project menu.
	Exit
	// Quit ends the whole program.
	Quit
)

func (k Kind) String() string {
	switch k {
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	case Exit:
		return "exit"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Outcome is the result of handling one line.
type Outcome struct {
	Kind   Kind
	Result Result
	Reason string
}

func applied(r Result) Outcome {
	return Outcome{Kind: Applied, Result: r}
}

func rejected(reason string) Outcome {
	return Outcome{Kind: Rejected, Reason: reason}
}

// Result is implemented by the values carried in an Applied outcome.
type Result interface {
	result()
}

// Message is a plain informational line.
type Message struct{ Text string }

// MemberAdded reports a new member and the new member count.
type MemberAdded struct {
	Member project.Member
	Count  int
}

// MemberEdited reports the edited member and the changed field names.
type MemberEdited struct {
	Member project.Member
	Fields []string
}

// MemberRemoved reports a deleted member.
type MemberRemoved struct {
	Index  int
	Member project.Member
}

// MemberList lists all members.
type MemberList struct{ Members []project.Member }

// TaskAdded reports a new task and the new task count.
type TaskAdded struct {
	Task  project.Task
	Count int
}

// TaskEdited reports the edited task and the changed field names.
type TaskEdited struct {
	Task   project.Task
	Fields []string
}

// TaskRemoved reports a deleted task.
type TaskRemoved struct {
	Index int
	Task  project.Task
}

// TaskList lists tasks, sorted by SortKey when it is set.
type TaskList struct {
	Tasks   []project.Task
	SortKey project.SortKey
}

// Requirements lists the requirements of one task.
type Requirements struct{ Task project.Task }

// RequirementsEdited reports the requirement changes applied to a task.
type RequirementsEdited struct {
	Task    project.Task
	Changes []string
}

// AssignedTasks lists tasks that have members assigned.
type AssignedTasks struct{ Entries []project.TaskAssignment }

// MemberAssignments lists every member with their tasks.
type MemberAssignments struct{ Entries []project.MemberAssignment }

// AssignmentReport holds one line per attempted assign or unassign.
type AssignmentReport struct{ Lines []string }

// ReminderAdded reports a new reminder and the new reminder count.
type ReminderAdded struct {
	Reminder project.Reminder
	Count    int
}

// ReminderMarked reports a reminder whose done flag was set.
type ReminderMarked struct{ Reminder project.Reminder }

// ReminderView shows a single reminder.
type ReminderView struct{ Reminder project.Reminder }

// ReminderList lists all reminders.
type ReminderList struct{ Reminders []project.Reminder }

func (Message) result()            {}
func (MemberAdded) result()        {}
func (MemberEdited) result()       {}
func (MemberRemoved) result()      {}
func (MemberList) result()         {}
func (TaskAdded) result()          {}
func (TaskEdited) result()         {}
func (TaskRemoved) result()        {}
func (TaskList) result()           {}
func (Requirements) result()       {}
func (RequirementsEdited) result() {}
func (AssignedTasks) result()      {}
func (MemberAssignments) result()  {}
func (AssignmentReport) result()   {}
func (ReminderAdded) result()      {}
func (ReminderMarked) result()     {}
func (ReminderView) result()       {}
func (ReminderList) result()       {}
