package project

import "sort"

// AssignmentIndex is the many-to-many association between member and task
// indices. Both directions are kept so either lookup is a map access; every
// mutation updates both sides.
type AssignmentIndex struct {
	byMember map[int]map[int]struct{}
	byTask   map[int]map[int]struct{}
}

// NewAssignmentIndex returns an empty index.
func NewAssignmentIndex() *AssignmentIndex {
	return &AssignmentIndex{
		byMember: make(map[int]map[int]struct{}),
		byTask:   make(map[int]map[int]struct{}),
	}
}

// Contains reports whether the member is assigned to the task.
func (a *AssignmentIndex) Contains(taskIndex, memberIndex int) bool {
	_, ok := a.byTask[taskIndex][memberIndex]
	return ok
}

// Add records the pair. It returns ErrDuplicateAssignment if the pair exists.
func (a *AssignmentIndex) Add(taskIndex, memberIndex int) error {
	if a.Contains(taskIndex, memberIndex) {
		return ErrDuplicateAssignment
	}
	link(a.byTask, taskIndex, memberIndex)
	link(a.byMember, memberIndex, taskIndex)
	return nil
}

// Remove deletes the pair. It returns ErrNotAssigned if the pair is absent.
func (a *AssignmentIndex) Remove(taskIndex, memberIndex int) error {
	if !a.Contains(taskIndex, memberIndex) {
		return ErrNotAssigned
	}
	unlink(a.byTask, taskIndex, memberIndex)
	unlink(a.byMember, memberIndex, taskIndex)
	return nil
}

// TasksOf returns the task indices assigned to a member in ascending order.
func (a *AssignmentIndex) TasksOf(memberIndex int) []int {
	return sortedKeys(a.byMember[memberIndex])
}

// MembersOf returns the member indices assigned to a task in ascending order.
func (a *AssignmentIndex) MembersOf(taskIndex int) []int {
	return sortedKeys(a.byTask[taskIndex])
}

// Len returns the number of pairs.
func (a *AssignmentIndex) Len() int {
	n := 0
	for _, members := range a.byTask {
		n += len(members)
	}
	return n
}

// Pairs returns every (task, member) pair ordered by task then member.
func (a *AssignmentIndex) Pairs() [][2]int {
	var pairs [][2]int
	for _, t := range sortedKeys(a.byTask) {
		for _, m := range sortedKeys(a.byTask[t]) {
			pairs = append(pairs, [2]int{t, m})
		}
	}
	return pairs
}

// RemoveMember drops every pair referencing the member and shifts pairs that
// reference higher member indices down by one. It returns the number of
// pairs dropped.
func (a *AssignmentIndex) RemoveMember(memberIndex int) int {
	return a.rebuild(func(t, m int) (int, int, bool) {
		switch {
		case m == memberIndex:
			return 0, 0, false
		case m > memberIndex:
			return t, m - 1, true
		}
		return t, m, true
	})
}

// RemoveTask is RemoveMember for the task side.
func (a *AssignmentIndex) RemoveTask(taskIndex int) int {
	return a.rebuild(func(t, m int) (int, int, bool) {
		switch {
		case t == taskIndex:
			return 0, 0, false
		case t > taskIndex:
			return t - 1, m, true
		}
		return t, m, true
	})
}

func (a *AssignmentIndex) rebuild(remap func(t, m int) (int, int, bool)) int {
	pairs := a.Pairs()
	a.byMember = make(map[int]map[int]struct{})
	a.byTask = make(map[int]map[int]struct{})
	dropped := 0
	for _, p := range pairs {
		t, m, keep := remap(p[0], p[1])
		if !keep {
			dropped++
			continue
		}
		link(a.byTask, t, m)
		link(a.byMember, m, t)
	}
	return dropped
}

func link(side map[int]map[int]struct{}, from, to int) {
	set, ok := side[from]
	if !ok {
		set = make(map[int]struct{})
		side[from] = set
	}
	set[to] = struct{}{}
}

func unlink(side map[int]map[int]struct{}, from, to int) {
	set := side[from]
	delete(set, to)
	if len(set) == 0 {
		delete(side, from)
	}
}

func sortedKeys[V any](set map[int]V) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
