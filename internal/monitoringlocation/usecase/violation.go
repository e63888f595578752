package usecase

import "strings"

// Violation is a single failed uniqueness rule attributed to a field.
type Violation struct {
	Field   string
	Message string
}

// Violations accumulates the failures of one validation run in check order.
type Violations []Violation

// Valid reports whether no rule failed.
func (vs Violations) Valid() bool {
	return len(vs) == 0
}

// Pairs flattens the violations into field/message pairs for goerror.NewInvalidInput.
// When a field fails more than once the messages are joined with a newline.
func (vs Violations) Pairs() []string {
	order := make([]string, 0, len(vs))
	msgs := make(map[string][]string, len(vs))
	for _, v := range vs {
		if _, seen := msgs[v.Field]; !seen {
			order = append(order, v.Field)
		}
		msgs[v.Field] = append(msgs[v.Field], v.Message)
	}

	kv := make([]string, 0, len(order)*2)
	for _, field := range order {
		kv = append(kv, field, strings.Join(msgs[field], "\n"))
	}
	return kv
}

// Error implements the error interface so a failed run can be returned or logged as one.
func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return strings.Join(parts, "; ")
}
