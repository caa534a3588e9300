// Package filter models the boolean pre-filter attached to engine queries.
// All conditions are required (AND-combined); the corpus API has no optional
// or negated filter groups.
package filter

import "fmt"

// Expression is an ordered set of required conditions.
type Expression struct {
	conditions []Condition
}

// NewExpression creates an Expression from conditions.
func NewExpression(conditions ...Condition) Expression {
	return Expression{conditions: conditions}
}

// Conditions returns the required conditions in order.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression has no conditions.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Condition is a single clause: either an exact tag match or a numeric range.
type Condition struct {
	key       string
	match     string
	rangeExpr *Range
}

// NewMatch creates an exact tag match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is a match condition.
func (c Condition) IsMatch() bool { return c.match != "" }

// IsRange reports whether this is a range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Range is a numeric range with an inclusive lower and exclusive upper bound.
// Either side may be open.
type Range struct {
	gte *float64
	lt  *float64
}

// NewRangeBounds validates and creates a Range. At least one bound required.
func NewRangeBounds(gte, lt *float64) (Range, error) {
	if gte == nil && lt == nil {
		return Range{}, fmt.Errorf("at least one range bound is required")
	}
	return Range{gte: gte, lt: lt}, nil
}

// GTE returns the inclusive lower bound.
func (r Range) GTE() *float64 { return r.gte }

// LT returns the exclusive upper bound.
func (r Range) LT() *float64 { return r.lt }
