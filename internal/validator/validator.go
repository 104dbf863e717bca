package validator

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag that maps an attribute struct field to an
// attribute name.
const TagName = "attr"

// MsgInvalidValue is recorded in the bind result for a present attribute
// whose value cannot be decoded into the typed attribute struct.
const MsgInvalidValue = "attribute has invalid value"

// Lookup is the read side of an attribute mapping.
type Lookup interface {
	Get(name string) (any, bool)
}

// Validator holds the per-instance state of presence validation: the last
// Result, the values that passed it, and the outcome of binding them.
type Validator struct {
	rules  *Rules
	result Result
	bound  Result
	values map[string]any
}

// New creates a Validator for the given rules. A nil rule set validates
// everything.
func New(rules *Rules) *Validator {
	return &Validator{rules: rules}
}

// Run performs a validation pass against in. Every declared name present in
// in is valid and exposed through Value with its raw value. Absent names are
// recorded as MsgAttributeMissing.
//
// When target is a non-nil pointer to a struct, each present value is also
// decoded into the field tagged with its name. A value that does not decode
// leaves the field unchanged and is recorded in BindResult, never in the
// returned Result.
//
// Each pass replaces the previous results.
func (v *Validator) Run(in Lookup, target any) Result {
	var res, bound Result
	values := make(map[string]any, v.rules.Len())

	for _, name := range v.rules.Names() {
		val, ok := in.Get(name)
		if !ok {
			res.Add(name, MsgAttributeMissing)
			continue
		}
		values[name] = val
		if err := bind(target, name, val); err != nil {
			bound.Add(name, MsgInvalidValue)
		}
	}

	v.result = res
	v.bound = bound
	v.values = values
	return res
}

// Valid reports the flag computed by the last pass.
func (v *Validator) Valid() bool {
	return v.result.Valid()
}

// Errors returns the error mapping computed by the last pass.
func (v *Validator) Errors() map[string][]string {
	return v.result.Errors()
}

// Result returns the last validation result.
func (v *Validator) Result() Result {
	return v.result
}

// BindResult returns the attributes from the last pass that were present but
// could not be decoded into the target struct.
func (v *Validator) BindResult() Result {
	return v.bound
}

// Value returns the raw value of a present declared attribute. Absent or
// undeclared attributes are not available.
func (v *Validator) Value(name string) (any, bool) {
	val, ok := v.values[name]
	return val, ok
}

// bind decodes a single attribute into target. Decoding one attribute at a
// time keeps a bad value from masking the others and lets the failure be
// attributed to its name.
func bind(target any, name string, val any) error {
	if target == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          TagName,
		WeaklyTypedInput: true,
		Result:           target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc("2006-01-02T15:04:05Z07:00"),
		),
	})
	if err != nil {
		return fmt.Errorf("validator: building decoder: %w", err)
	}
	if err := dec.Decode(map[string]any{name: val}); err != nil {
		return fmt.Errorf("validator: binding %q: %w", name, err)
	}
	return nil
}
