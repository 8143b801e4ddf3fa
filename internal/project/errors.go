package project

import (
	"errors"
	"fmt"
)

// Domain errors returned by Project operations.
var (
	ErrMissingName         = errors.New("member name is required")
	ErrMissingDescription  = errors.New("description is required")
	ErrDuplicateAssignment = errors.New("member is already assigned to task")
	ErrNotAssigned         = errors.New("member is not assigned to task")
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrDuplicateRemoval    = errors.New("requirement is removed more than once")
	ErrNoChanges           = errors.New("no fields to update")
)

// Entity names used in IndexError.
const (
	EntityProject     = "project"
	EntityMember      = "member"
	EntityTask        = "task"
	EntityReminder    = "reminder"
	EntityRequirement = "requirement"
)

// IndexError reports a 1-based index outside the current bounds of a collection.
type IndexError struct {
	Entity string
	Index  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("The %s index entered is invalid.", e.Entity)
}

func indexError(entity string, index int) error {
	return &IndexError{Entity: entity, Index: index}
}

// IsIndexError reports whether err is an IndexError for the given entity.
// An empty entity matches any IndexError.
func IsIndexError(err error, entity string) bool {
	var ie *IndexError
	if !errors.As(err, &ie) {
		return false
	}
	return entity == "" || ie.Entity == entity
}
