package validator

import (
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
)

// MsgAttributeMissing is recorded for a required attribute that is absent
// from the input.
const MsgAttributeMissing = "attribute missing"

// Result is the outcome of one validation pass. The zero value is a valid
// result with no errors.
type Result struct {
	invalid bool
	order   []string
	errs    map[string][]string
}

// Valid reports whether every declared attribute was present.
func (r *Result) Valid() bool {
	return !r.invalid
}

// Errors returns a copy of the error mapping. Absent keys mean the attribute
// had no error; an empty map means no violations were recorded.
func (r *Result) Errors() map[string][]string {
	out := make(map[string][]string, len(r.errs))
	for k, v := range r.errs {
		out[k] = slices.Clone(v)
	}
	return out
}

// Messages returns the messages recorded for a single attribute.
func (r *Result) Messages(attr string) []string {
	return slices.Clone(r.errs[attr])
}

// Attributes returns the attributes with recorded errors in the order they
// were first recorded.
func (r *Result) Attributes() []string {
	return slices.Clone(r.order)
}

// Add records msg against attr and marks the result invalid. Identical
// messages for the same attribute are stored once; distinct ones keep their
// insertion order.
func (r *Result) Add(attr, msg string) {
	r.invalid = true
	if r.errs == nil {
		r.errs = make(map[string][]string)
	}
	existing, ok := r.errs[attr]
	if !ok {
		r.order = append(r.order, attr)
	}
	if slices.Contains(existing, msg) {
		return
	}
	r.errs[attr] = append(existing, msg)
}

// Merge folds other into r using the same de-duplicating policy as Add.
func (r *Result) Merge(other Result) {
	for _, attr := range other.order {
		for _, msg := range other.errs[attr] {
			r.Add(attr, msg)
		}
	}
	if other.invalid {
		r.invalid = true
	}
}

// Err converts an invalid result into a *domain.ValidationError so callers
// that want a hard gate can return it. A valid result yields nil.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}
	fields := make(map[string]string, len(r.order))
	for _, attr := range r.Attributes() {
		fields[attr] = strings.Join(r.Messages(attr), ", ")
	}
	return &domain.ValidationError{Fields: fields}
}
