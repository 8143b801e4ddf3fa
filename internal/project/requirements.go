package project

import (
	"fmt"
	"sort"
)

// RequirementEditKind selects what a RequirementEdit does.
type RequirementEditKind int

const (
	RequirementAdd RequirementEditKind = iota
	RequirementRemove
	RequirementModify
)

// RequirementEdit is a single change to a task's requirement list.
//
// Removals address a requirement by Position when it is non-zero, otherwise
// by exact Text. Modifications replace the requirement at Position with Text.
type RequirementEdit struct {
	Kind     RequirementEditKind
	Position int
	Text     string
}

// AddRequirement returns an edit that appends text.
func AddRequirement(text string) RequirementEdit {
	return RequirementEdit{Kind: RequirementAdd, Text: text}
}

// RemoveRequirementAt returns an edit that removes the requirement at a 1-based position.
func RemoveRequirementAt(pos int) RequirementEdit {
	return RequirementEdit{Kind: RequirementRemove, Position: pos}
}

// RemoveRequirementText returns an edit that removes the first requirement equal to text.
func RemoveRequirementText(text string) RequirementEdit {
	return RequirementEdit{Kind: RequirementRemove, Text: text}
}

// ModifyRequirement returns an edit that replaces the requirement at a 1-based position.
func ModifyRequirement(pos int, text string) RequirementEdit {
	return RequirementEdit{Kind: RequirementModify, Position: pos, Text: text}
}

// applyRequirementEdits computes the new requirement list without touching reqs.
// Modifications apply first, then removals (positions refer to the list as
// passed in), then additions in order.
func applyRequirementEdits(reqs []string, edits []RequirementEdit) ([]string, []string, error) {
	next := append([]string(nil), reqs...)
	var applied []string

	for _, e := range edits {
		if e.Kind != RequirementModify {
			continue
		}
		if e.Position < 1 || e.Position > len(next) {
			return nil, nil, indexError(EntityRequirement, e.Position)
		}
		if !validName(e.Text) {
			return nil, nil, fmt.Errorf("requirement %d: %w", e.Position, ErrMissingDescription)
		}
		next[e.Position-1] = e.Text
		applied = append(applied, fmt.Sprintf("Modified requirement %d: %s", e.Position, e.Text))
	}

	drop := make(map[int]bool)
	for _, e := range edits {
		if e.Kind != RequirementRemove {
			continue
		}
		pos := e.Position
		if pos == 0 {
			pos = findRequirement(next, e.Text, drop)
			if pos == 0 {
				return nil, nil, fmt.Errorf("%q: %w", e.Text, ErrRequirementNotFound)
			}
		}
		if pos < 1 || pos > len(next) {
			return nil, nil, indexError(EntityRequirement, pos)
		}
		if drop[pos] {
			return nil, nil, fmt.Errorf("requirement %d: %w", pos, ErrDuplicateRemoval)
		}
		drop[pos] = true
	}
	if len(drop) > 0 {
		positions := make([]int, 0, len(drop))
		for pos := range drop {
			positions = append(positions, pos)
		}
		sort.Ints(positions)
		for _, pos := range positions {
			applied = append(applied, "Removed requirement: "+next[pos-1])
		}
		kept := next[:0:0]
		for i, r := range next {
			if !drop[i+1] {
				kept = append(kept, r)
			}
		}
		next = kept
	}

	for _, e := range edits {
		if e.Kind != RequirementAdd {
			continue
		}
		if !validName(e.Text) {
			return nil, nil, fmt.Errorf("new requirement: %w", ErrMissingDescription)
		}
		next = append(next, e.Text)
		applied = append(applied, "Added requirement: "+e.Text)
	}

	return next, applied, nil
}

func findRequirement(reqs []string, text string, skip map[int]bool) int {
	for i, r := range reqs {
		if r == text && !skip[i+1] {
			return i + 1
		}
	}
	return 0
}
