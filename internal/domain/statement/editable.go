package statement

import (
	"fmt"
	"sort"
)

// EditableFields maps a statement field name to whether a client may edit it
type EditableFields map[string]bool

// NewEditableFields returns a map marking every given field editable
func NewEditableFields(fields []string) EditableFields {
	e := make(EditableFields, len(fields))
	for _, f := range fields {
		e[f] = true
	}
	return e
}

// Allows reports whether field may be edited. Fields absent from the map
// are editable.
func (e EditableFields) Allows(field string) bool {
	allowed, ok := e[field]
	return !ok || allowed
}

// Clone returns an independent copy
func (e EditableFields) Clone() EditableFields {
	if e == nil {
		return nil
	}
	out := make(EditableFields, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Validate rejects keys that are not in the known field set
func (e EditableFields) Validate(known []string) error {
	knownSet := make(map[string]struct{}, len(known))
	for _, f := range known {
		knownSet[f] = struct{}{}
	}
	var unknown []string
	for k := range e {
		if _, ok := knownSet[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown editable fields: %v", unknown)
	}
	return nil
}

// WithDefaults returns a copy holding every known field, keeping explicit
// entries and defaulting the rest to editable
func (e EditableFields) WithDefaults(known []string) EditableFields {
	out := NewEditableFields(known)
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Merge overlays other onto a copy of e, key by key
func (e EditableFields) Merge(other EditableFields) EditableFields {
	out := e.Clone()
	if out == nil {
		out = make(EditableFields, len(other))
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
