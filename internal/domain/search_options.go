package domain

import (
	"fmt"
	"strings"
	"time"
)

// SearchOptions represents search criteria for tasks.
// This is a domain model that mirrors the database search options
// but belongs to the domain layer for proper separation of concerns.
//
// Nil pointers and empty strings are not applied. From and To bound the
// deadline inclusively by day.
type SearchOptions struct {
	ID      *int64
	Name    *string
	Comment *string
	Done    *bool
	From    *time.Time
	To      *time.Time

	// SuppressNotFound returns an empty result instead of a not found error
	SuppressNotFound bool
}

// IsEmpty reports whether no filter is applied
func (o SearchOptions) IsEmpty() bool {
	return o.ID == nil && isBlank(o.Name) && isBlank(o.Comment) &&
		o.Done == nil && o.From == nil && o.To == nil
}

// Describe renders the applied filters for messages
func (o SearchOptions) Describe() string {
	if o.IsEmpty() {
		return "any task"
	}

	var parts []string
	if o.ID != nil {
		parts = append(parts, fmt.Sprintf("id %d", *o.ID))
	}
	if !isBlank(o.Name) {
		parts = append(parts, fmt.Sprintf("name %q", *o.Name))
	}
	if !isBlank(o.Comment) {
		parts = append(parts, fmt.Sprintf("comment %q", *o.Comment))
	}
	if o.Done != nil {
		parts = append(parts, fmt.Sprintf("done %t", *o.Done))
	}
	if o.From != nil {
		parts = append(parts, "from "+o.From.Format(DateLayout))
	}
	if o.To != nil {
		parts = append(parts, "to "+o.To.Format(DateLayout))
	}
	return strings.Join(parts, ", ")
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
