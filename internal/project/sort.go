package project

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey names a task ordering for display.
type SortKey string

const (
	SortByPriority    SortKey = "priority"
	SortByDate        SortKey = "date"
	SortByName        SortKey = "name"
	SortByStatus      SortKey = "status"
	SortByCategory    SortKey = "category"
	sortKeyAliasDue           = "due"
	sortKeyAliasTitle         = "description"
)

// ParseSortKey parses a sort criteria string such as "/PRIORITY" or "date".
func ParseSortKey(s string) (SortKey, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "/"))
	switch key {
	case string(SortByPriority):
		return SortByPriority, nil
	case string(SortByDate), sortKeyAliasDue:
		return SortByDate, nil
	case string(SortByName), sortKeyAliasTitle:
		return SortByName, nil
	case string(SortByStatus):
		return SortByStatus, nil
	case string(SortByCategory):
		return SortByCategory, nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

var statusRank = map[Status]int{
	StatusDoing: 0,
	StatusTodo:  1,
	StatusOpen:  2,
	StatusDone:  3,
}

// SortedTasks returns a sorted copy of the tasks. Stored order is unchanged.
// Unset priorities and due dates sort last; ties keep index order.
func (p *Project) SortedTasks(key SortKey) []Task {
	tasks := p.tasks.All()
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch key {
		case SortByPriority:
			if a.Priority == 0 || b.Priority == 0 {
				return a.Priority != 0 && b.Priority == 0
			}
			return a.Priority < b.Priority
		case SortByDate:
			if a.Due == nil || b.Due == nil {
				return a.Due != nil && b.Due == nil
			}
			return a.Due.Before(*b.Due)
		case SortByName:
			return strings.ToLower(a.Description) < strings.ToLower(b.Description)
		case SortByStatus:
			return statusRank[a.Status] < statusRank[b.Status]
		case SortByCategory:
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
		return false
	})
	return tasks
}
