package store

import (
	"fmt"
)

// GrowOutOfBoundsError reports growth that would exceed an entity's
// effective maximum or overflow the size space. The entity is unchanged.
type GrowOutOfBoundsError struct {
	Resource string
	Maximum  uint64
	Current  uint64
	GrowBy   uint64
}

func (e *GrowOutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"tried to grow %s with size of %d and maximum of %d by %d out of bounds",
		e.Resource, e.Current, e.Maximum, e.GrowBy)
}

// Is matches any GrowOutOfBoundsError for the same resource kind, so
// callers can classify traps with errors.Is without field-by-field checks.
func (e *GrowOutOfBoundsError) Is(target error) bool {
	t, ok := target.(*GrowOutOfBoundsError)
	return ok && (t.Resource == "" || t.Resource == e.Resource)
}

// AccessOutOfBoundsError reports an access at or beyond an entity's
// current length. The entity is unchanged.
type AccessOutOfBoundsError struct {
	Resource string
	Current  uint64
	Offset   uint64
}

func (e *AccessOutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"out of bounds access of %s element %d with current size %d",
		e.Resource, e.Offset, e.Current)
}

// Is matches any AccessOutOfBoundsError for the same resource kind.
func (e *AccessOutOfBoundsError) Is(target error) bool {
	t, ok := target.(*AccessOutOfBoundsError)
	return ok && (t.Resource == "" || t.Resource == e.Resource)
}
