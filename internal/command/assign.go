package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nibzard/archduke-go/internal/project"
)

var assignMarkers = []string{"i/", "to/", "rm/"}

// assignTask handles "assign task i/<tasks> [to/<members>] [rm/<members>]".
// Each valid task and member pair is attempted on its own, and every
// attempt or invalid index gets a line in the report.
func (d *Dispatcher) assignTask(args string) Outcome {
	f := ParseFields(args, assignMarkers...)
	var report []string

	tasks, msgs := collectIndexes(f.All("i/"), project.EntityTask, d.project.NumTasks())
	report = append(report, msgs...)
	if len(tasks) == 0 {
		return rejected(MsgNoValidTasks)
	}

	assign, assignMsgs := collectIndexes(f.All("to/"), project.EntityMember, d.project.NumMembers())
	unassign, unassignMsgs := collectIndexes(f.All("rm/"), project.EntityMember, d.project.NumMembers())
	if len(assign) == 0 && len(unassign) == 0 && len(assignMsgs) == 0 && len(unassignMsgs) == 0 {
		return rejected(MsgNoAssignees)
	}
	report = append(report, assignMsgs...)
	report = append(report, unassignMsgs...)

	for _, ti := range tasks {
		t, _ := d.project.Task(ti)
		for _, mi := range assign {
			m, _ := d.project.Member(mi)
			err := d.project.CreateAssignment(ti, mi)
			switch {
			case err == nil:
				report = append(report, fmt.Sprintf("Assigned task %d (%s) to %s.", ti, t.Description, m.Name))
			case errors.Is(err, project.ErrDuplicateAssignment):
				report = append(report, fmt.Sprintf("%s is already assigned to task %d.", m.Name, ti))
			default:
				report = append(report, rejection(err).Reason)
			}
		}
		for _, mi := range unassign {
			m, _ := d.project.Member(mi)
			err := d.project.RemoveAssignment(ti, mi)
			switch {
			case err == nil:
				report = append(report, fmt.Sprintf("Unassigned %s from task %d (%s).", m.Name, ti, t.Description))
			case errors.Is(err, project.ErrNotAssigned):
				report = append(report, fmt.Sprintf("%s is not assigned to task %d.", m.Name, ti))
			default:
				report = append(report, rejection(err).Reason)
			}
		}
	}
	return applied(AssignmentReport{Lines: report})
}

// collectIndexes splits space-separated index lists, keeping valid indexes
// in order without duplicates and describing each invalid token.
func collectIndexes(values []string, entity string, count int) ([]int, []string) {
	var valid []int
	var msgs []string
	seen := make(map[int]bool)
	for _, v := range values {
		for _, token := range strings.Fields(v) {
			n, err := strconv.Atoi(token)
			if err != nil {
				msgs = append(msgs, fmt.Sprintf("Could not recognise %s %q, please ensure it is an integer.", entity, token))
				continue
			}
			if n < 1 || n > count {
				msgs = append(msgs, fmt.Sprintf("The %s with index %d does not exist.", entity, n))
				continue
			}
			if seen[n] {
				continue
			}
			seen[n] = true
			valid = append(valid, n)
		}
	}
	return valid, msgs
}
