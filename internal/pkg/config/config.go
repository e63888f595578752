// Package config exposes typed access to application configuration.
package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of various types.
// Missing keys resolve to the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value associated with key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value associated with key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the value associated with key as a slice of strings.
	// Configuration value is stored with format <element1>,<element2>,...
	GetArray(key string) []string
}
