package enum

import (
	"fmt"
	"reflect"
)

var enumManager = map[string]any{}

type enum[T comparable] struct {
	toEnum   map[string]T
	toString map[T]string
}

// New registers a value of an enum type together with its human-readable
// label. It returns the value unchanged so it can be used in var blocks.
func New[T comparable](value T, label string) T {
	name := reflect.TypeOf(value).Name()
	if _, ok := enumManager[name]; !ok {
		enumManager[name] = enum[T]{
			toEnum:   make(map[string]T),
			toString: make(map[T]string),
		}
	}

	e := enumManager[name].(enum[T])
	e.toEnum[label] = value
	e.toString[value] = label
	return value
}

func ToEnum[T comparable](label string) (T, error) {
	var defaultT T
	e, ok := enumManager[reflect.TypeOf(defaultT).Name()]
	if !ok {
		return defaultT, fmt.Errorf("not found enum type %T", defaultT)
	}

	t, ok := e.(enum[T]).toEnum[label]
	if !ok {
		return defaultT, fmt.Errorf("not found value %s in enum %T", label, defaultT)
	}

	return t, nil
}

// ToString returns the registered label of an enum value, or an empty string
// for values that were never registered.
func ToString[T comparable](value T) string {
	e, ok := enumManager[reflect.TypeOf(value).Name()]
	if !ok {
		return ""
	}

	return e.(enum[T]).toString[value]
}
