// Package validator provides presence validation for command attributes.
//
// Rules are declared once per command type, usually as a package-level
// variable, and accumulate without duplicates:
//
//	var withdrawRules = validator.Require("account", "amount").Require("amount")
//
// A Validator runs the rules against an attribute lookup, records
// "attribute missing" for every absent name, and binds the present values into
// a typed attribute struct:
//
//	var attrs struct {
//	    Account string `attr:"account"`
//	    Amount  int64  `attr:"amount"`
//	}
//	v := validator.New(withdrawRules)
//	res := v.Run(input, &attrs)
//
// Validation is a soft gate. A failed pass is recorded in the Result and is
// never returned as an error; callers that need a hard gate check Valid or
// convert the result with Result.Err.
package validator

import "slices"

// Rules is an append-only, de-duplicated ordered set of required attribute
// names. Build it at package initialization; after that it is read-only and
// safe for concurrent use.
type Rules struct {
	names []string
}

// Require returns a new rule set requiring the given attribute names.
func Require(names ...string) *Rules {
	return (&Rules{}).Require(names...)
}

// Require adds names to the rule set and returns it for chaining. Names that
// are already declared are ignored, so a name is evaluated once per pass no
// matter how many times it was declared.
func (r *Rules) Require(names ...string) *Rules {
	for _, name := range names {
		if name == "" || slices.Contains(r.names, name) {
			continue
		}
		r.names = append(r.names, name)
	}
	return r
}

// Names returns the declared attribute names in declaration order.
// A nil rule set has no names.
func (r *Rules) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.names)
}

// Len returns the number of declared attribute names.
func (r *Rules) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}
