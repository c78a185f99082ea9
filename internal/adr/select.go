package adr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoComponents reports that the environment has no component kind at
// all, so there is nothing to select from.
var ErrNoComponents = errors.New("no components available in this environment")

// ErrNoHomes reports that cataloging every resolved kind produced not a
// single diagnostic home.
var ErrNoHomes = errors.New("no homes found, check environment")

// CapabilityError reports that an explicitly requested kind is absent
// from the probed environment.
type CapabilityError struct {
	Kind Kind
}

func (e *CapabilityError) Error() string {
	role := e.Kind.Role()
	if role == "" {
		return fmt.Sprintf("collecting %s logs is not supported in this environment", e.Kind)
	}
	article := "a"
	if strings.ContainsAny(role[:1], "AEIOU") {
		article = "an"
	}
	return fmt.Sprintf("collecting %s logs requires %s %s environment", e.Kind, article, role)
}

// Resolve expands a requested kind into the concrete kinds to process.
// A concrete kind must be present in the environment or the request
// fails with a CapabilityError. All expands to every present kind and
// fails with ErrNoComponents when there are none.
func Resolve(env Environment, requested Kind) ([]Kind, error) {
	if requested == All {
		kinds := env.Caps.List()
		if len(kinds) == 0 {
			return nil, ErrNoComponents
		}
		return kinds, nil
	}
	if !env.Caps.Has(requested) {
		return nil, &CapabilityError{Kind: requested}
	}
	return []Kind{requested}, nil
}

// Available returns the menu entries for an environment: each present
// concrete kind, followed by All when anything is present at all. An
// empty result means the interactive path must fail before showing a
// menu.
func Available(env Environment) []Kind {
	kinds := env.Caps.List()
	if len(kinds) > 0 {
		kinds = append(kinds, All)
	}
	return kinds
}
