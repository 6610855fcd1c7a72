package resource

import (
	"strings"
	"time"
)

// FieldDiff records which updatable fields actually change during a partial
// merge, so the update flow can tell a real change from a no-op and log
// exactly what moved.
type FieldDiff struct {
	changed []string
}

// String writes v over *dst when v is non-blank and differs from the stored value.
func (d *FieldDiff) String(name string, dst *string, v string) {
	if strings.TrimSpace(v) == "" || v == *dst {
		return
	}
	*dst = v
	d.changed = append(d.changed, name)
}

// Date writes v over *dst when a value was provided and differs from the
// stored one. Submitting a date identical to the stored value is a no-op,
// not a change.
func (d *FieldDiff) Date(name string, dst **time.Time, v *time.Time) {
	if v == nil {
		return
	}
	if *dst != nil && (*dst).Equal(*v) {
		return
	}
	t := *v
	*dst = &t
	d.changed = append(d.changed, name)
}

// Changed returns the names of the fields that were written.
func (d *FieldDiff) Changed() []string {
	return d.changed
}

// Empty reports whether no field was written.
func (d *FieldDiff) Empty() bool {
	return len(d.changed) == 0
}
