// Package schema exposes prefixed-id validation as a value validator, both
// standalone (Schema.Validate) and as a go-playground/validator tag so gin
// request bindings can declare `binding:"prefixid=user"`.
package schema

import (
	"github.com/go-playground/validator/v10"

	"github.com/weiawesome/pxid/pkg/prefixid"
)

// Tag is the validator tag registered by Register.
const Tag = "prefixid"

const msgExpectedString = "Expected string"

// Issue describes one validation problem.
type Issue struct {
	Message string `json:"message"`
}

// Result is the outcome of Schema.Validate. Value is set only when there are
// no issues.
type Result struct {
	Value  string  `json:"value,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

// OK reports whether validation succeeded.
func (r Result) OK() bool { return len(r.Issues) == 0 }

// Schema validates arbitrary values as ids minted by a Generator. An empty
// Prefix accepts any prefix.
type Schema struct {
	gen    *prefixid.Generator
	Prefix string
}

// New returns a Schema for g. Pass "" to accept any prefix.
func New(g *prefixid.Generator, prefix string) Schema {
	return Schema{gen: g, Prefix: prefix}
}

// Validate checks v and returns either the validated string or the issues
// found.
func (s Schema) Validate(v any) Result {
	str, ok := v.(string)
	if !ok {
		return Result{Issues: []Issue{{Message: msgExpectedString}}}
	}
	if err := s.gen.Check(str, s.Prefix); err != nil {
		return Result{Issues: []Issue{{Message: err.Error()}}}
	}
	return Result{Value: str}
}

// Register installs the prefixid tag on v. The tag parameter, if any, is the
// expected prefix.
func Register(v *validator.Validate, g *prefixid.Generator) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return New(g, fl.Param()).Validate(fl.Field().Interface()).OK()
	})
}
