package validator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-command-invoker/internal/domain"
	"github.com/jsamuelsen11/go-command-invoker/internal/validator"
)

// mapLookup is a minimal Lookup over a plain map.
type mapLookup map[string]any

func (m mapLookup) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// --- Rules ---

func TestRules_AccumulatesWithoutDuplicates(t *testing.T) {
	t.Parallel()

	rules := validator.Require("foo", "key", "jar").Require("jar", "jar", "binks")

	assert.Equal(t, []string{"foo", "key", "jar", "binks"}, rules.Names())
	assert.Equal(t, 4, rules.Len())
}

func TestRules_IgnoresEmptyNames(t *testing.T) {
	t.Parallel()

	rules := validator.Require("", "amount", "")

	assert.Equal(t, []string{"amount"}, rules.Names())
}

func TestRules_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var rules *validator.Rules

	assert.Nil(t, rules.Names())
	assert.Zero(t, rules.Len())
}

// --- Validator.Run ---

func TestRun_AllPresent(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Require("foo"))
	res := v.Run(mapLookup{"foo": "bar"}, nil)

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors())
}

func TestRun_MissingAttributesAcrossDeclarations(t *testing.T) {
	t.Parallel()

	rules := validator.Require("foo", "key", "jar").Require("jar", "jar", "binks")
	v := validator.New(rules)
	v.Run(mapLookup{"foo": "bar"}, nil)

	assert.False(t, v.Valid())
	assert.Equal(t, map[string][]string{
		"key":   {validator.MsgAttributeMissing},
		"jar":   {validator.MsgAttributeMissing},
		"binks": {validator.MsgAttributeMissing},
	}, v.Errors())
}

func TestRun_NoRulesIsValid(t *testing.T) {
	t.Parallel()

	v := validator.New(nil)
	res := v.Run(mapLookup{"anything": 1}, nil)

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
	_, ok := v.Value("anything")
	assert.False(t, ok, "undeclared attributes are not exposed")
}

func TestRun_ReplacesPreviousResult(t *testing.T) {
	t.Parallel()

	v := validator.New(validator.Require("amount"))
	v.Run(mapLookup{}, nil)
	require.False(t, v.Valid())

	v.Run(mapLookup{"amount": 10}, nil)

	assert.True(t, v.Valid())
	assert.Empty(t, v.Errors())
}

func TestRun_BindsValidatedAttributes(t *testing.T) {
	t.Parallel()

	var attrs struct {
		Account string        `attr:"account"`
		Amount  int64         `attr:"amount"`
		Hold    time.Duration `attr:"hold"`
		Memo    string        `attr:"memo"`
	}

	v := validator.New(validator.Require("account", "amount", "hold"))
	res := v.Run(mapLookup{
		"account": "acc-1",
		"amount":  float64(25),
		"hold":    "90s",
		"memo":    "not declared",
	}, &attrs)

	require.True(t, res.Valid(), "errors: %v", res.Errors())
	assert.Equal(t, "acc-1", attrs.Account)
	assert.Equal(t, int64(25), attrs.Amount)
	assert.Equal(t, 90*time.Second, attrs.Hold)
	assert.Empty(t, attrs.Memo, "undeclared attributes are not bound")

	val, ok := v.Value("account")
	assert.True(t, ok)
	assert.Equal(t, "acc-1", val)
}

func TestRun_MissingAttributeIsNotBound(t *testing.T) {
	t.Parallel()

	var attrs struct {
		Amount int64 `attr:"amount"`
	}
	attrs.Amount = -1

	v := validator.New(validator.Require("amount"))
	v.Run(mapLookup{}, &attrs)

	assert.Equal(t, int64(-1), attrs.Amount)
	_, ok := v.Value("amount")
	assert.False(t, ok)
}

func TestRun_UnboundValueIsStillValid(t *testing.T) {
	t.Parallel()

	var attrs struct {
		Amount int64 `attr:"amount"`
	}

	v := validator.New(validator.Require("amount"))
	res := v.Run(mapLookup{"amount": "ten"}, &attrs)

	assert.True(t, res.Valid())
	assert.Empty(t, res.Errors())
	assert.Zero(t, attrs.Amount)

	val, ok := v.Value("amount")
	assert.True(t, ok)
	assert.Equal(t, "ten", val)

	bound := v.BindResult()
	assert.False(t, bound.Valid())
	assert.Equal(t, []string{validator.MsgInvalidValue}, bound.Messages("amount"))
}

func TestRun_ReplacesPreviousBindResult(t *testing.T) {
	t.Parallel()

	var attrs struct {
		Amount int64 `attr:"amount"`
	}

	v := validator.New(validator.Require("amount"))
	v.Run(mapLookup{"amount": map[string]any{"value": "ten"}}, &attrs)
	first := v.BindResult()
	require.False(t, first.Valid())

	v.Run(mapLookup{"amount": 7}, &attrs)

	second := v.BindResult()
	assert.True(t, second.Valid())
	assert.Equal(t, int64(7), attrs.Amount)
}

// --- Result ---

func TestResult_AddDeduplicatesPreservingOrder(t *testing.T) {
	t.Parallel()

	var res validator.Result
	res.Add("amount", "first")
	res.Add("account", validator.MsgAttributeMissing)
	res.Add("amount", "second")
	res.Add("amount", "first")

	assert.False(t, res.Valid())
	assert.Equal(t, []string{"first", "second"}, res.Messages("amount"))
	assert.Equal(t, []string{"amount", "account"}, res.Attributes())
}

func TestResult_Merge(t *testing.T) {
	t.Parallel()

	var a, b validator.Result
	a.Add("amount", validator.MsgAttributeMissing)
	b.Add("amount", validator.MsgAttributeMissing)
	b.Add("account", validator.MsgAttributeMissing)

	a.Merge(b)

	assert.Equal(t, map[string][]string{
		"amount":  {validator.MsgAttributeMissing},
		"account": {validator.MsgAttributeMissing},
	}, a.Errors())
}

func TestResult_ErrorsIsCopy(t *testing.T) {
	t.Parallel()

	var res validator.Result
	res.Add("amount", validator.MsgAttributeMissing)

	errs := res.Errors()
	errs["amount"][0] = "mutated"
	delete(errs, "amount")

	assert.Equal(t, []string{validator.MsgAttributeMissing}, res.Messages("amount"))
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	var valid validator.Result
	assert.NoError(t, valid.Err())

	var invalid validator.Result
	invalid.Add("amount", validator.MsgAttributeMissing)

	err := invalid.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validator.MsgAttributeMissing, verr.Fields["amount"])
}
