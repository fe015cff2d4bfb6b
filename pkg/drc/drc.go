// Package drc implements the design rule checks shared by every package
// kind. A Checker collects every violation it finds; it never stops at the
// first one, so a caller can report everything wrong with a parameter set in
// one pass.
package drc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// ErrDRC is matched (via errors.Is) by every *Error.
var ErrDRC = errors.New("drc: design rule violation")

// tolerance absorbs floating point noise in clearance comparisons, so that a
// gap exactly equal to its minimum passes.
const tolerance = 1e-9

// Rule identifies the design rule a Violation failed.
type Rule int

const (
	RuleUnknown Rule = iota
	RuleUnits
	RulePadShape
	RuleBodyDimension
	RuleCourtyardDimension
	RuleCopperClearanceX
	RuleCopperClearanceY
	RuleFiducial
	RuleCourtyardClearance
	RuleSilkscreenLineWidth
	RulePinCount
	RulePadSize
	RuleDrill
	RuleThermal
	RuleHeelToe
	RulePitch
	RuleNegativeDimension
	RulePackageKind
	RulePin1Location
)

var ruleNames = []string{
	"unknown",
	"units",
	"pad shape",
	"body dimension",
	"courtyard dimension",
	"copper clearance X",
	"copper clearance Y",
	"fiducial",
	"courtyard clearance",
	"silkscreen line width",
	"pin count",
	"pad size",
	"drill",
	"thermal pad",
	"heel/toe",
	"pitch",
	"negative dimension",
	"package kind",
	"pin 1 location",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return ruleNames[r]
}

// Violation is one failed rule. Field names the offending parameter using
// its wizard field name.
type Violation struct {
	Rule    Rule
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Rule, v.Message)
}

// Error carries the full list of violations of a rejected parameter set.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	if len(e.Violations) == 1 {
		return "drc: " + e.Violations[0].String()
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("drc: %d violations: %s", len(e.Violations), strings.Join(msgs, "; "))
}

func (e *Error) Is(target error) bool {
	return target == ErrDRC
}

// Checker accumulates violations for one parameter set.
type Checker struct {
	p          *params.Parameters
	violations []Violation
}

// New returns a Checker for p. The checker reads p but never modifies it.
func New(p *params.Parameters) *Checker {
	return &Checker{p: p}
}

// Params returns the parameter set under check.
func (c *Checker) Params() *params.Parameters {
	return c.p
}

// Addf records a violation.
func (c *Checker) Addf(rule Rule, field, format string, args ...interface{}) {
	c.violations = append(c.violations, Violation{
		Rule:    rule,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Violations returns what has been collected so far.
func (c *Checker) Violations() []Violation {
	return c.violations
}

// Err returns nil when nothing was collected and an *Error otherwise.
func (c *Checker) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Violations: append([]Violation(nil), c.violations...)}
}

// positive records a violation of rule unless v is strictly positive.
func (c *Checker) positive(rule Rule, field string, v float64) bool {
	if v > 0 {
		return true
	}
	c.Addf(rule, field, "%s must be greater than zero, got %g", field, v)
	return false
}
