// Package validator provides a small validation abstraction for input and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. Concrete implementations (for example
// go-playground/validator v10) live in this package.
package validator

// Validator validates a struct and returns an error describing every failed
// field, or nil when the struct is valid.
type Validator interface {
	Validate(data any) error
}
