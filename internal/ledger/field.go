package ledger

import "strings"

// Field is a set of top-level ledger fields. Mutations mark the fields they
// touch so an observer can persist exactly what changed.
type Field uint8

const (
	FieldRules Field = 1 << iota
	FieldPlayerMap
	FieldPlayerOrder
	FieldRounds

	// AllFields is every persisted top-level field
	AllFields = FieldRules | FieldPlayerMap | FieldPlayerOrder | FieldRounds
)

var fieldNames = []struct {
	bit  Field
	name string
}{
	{FieldRules, "rules"},
	{FieldPlayerMap, "playerMap"},
	{FieldPlayerOrder, "playerOrder"},
	{FieldRounds, "rounds"},
}

// Has reports whether every field in other is in f
func (f Field) Has(other Field) bool {
	return other != 0 && f&other == other
}

// String lists the set fields, for logging
func (f Field) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, field := range fieldNames {
		if f&field.bit != 0 {
			names = append(names, field.name)
		}
	}
	return strings.Join(names, ",")
}
