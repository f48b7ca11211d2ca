// Package scope declares the sections of an OpenAPI document that schema
// extraction can read from.
package scope

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Scope is the value of a member of the OpenAPIScope enumeration.
type Scope string

const (
	Schemas    Scope = "schemas"
	Paths      Scope = "paths"
	Tags       Scope = "tags"
	Parameters Scope = "parameters"
	Webhooks   Scope = "webhooks"
)

func (s Scope) String() string {
	return string(s)
}

var (
	ErrEmptyMemberName     = errors.New("member name cannot be empty")
	ErrDuplicateMemberName = errors.New("duplicate member name")
	ErrUnknownScope        = errors.New("unknown scope")
)

// OpenAPIScope lists every scope in declaration order.
var OpenAPIScope = MustEnum("OpenAPIScope",
	Member{Name: "Schemas", Value: string(Schemas)},
	Member{Name: "Paths", Value: string(Paths)},
	Member{Name: "Tags", Value: string(Tags)},
	Member{Name: "Parameters", Value: string(Parameters)},
	Member{Name: "Webhooks", Value: string(Webhooks)},
)

// Member is a single named constant of an Enum.
type Member struct {
	Name  string
	Value string
}

// Enum is a fixed, ordered set of named string constants.
type Enum struct {
	name    string
	members []Member
	index   map[string]int
}

// NewEnum builds an Enum from members, keeping their order.
func NewEnum(name string, members ...Member) (*Enum, error) {
	e := &Enum{
		name:    name,
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}

	for _, m := range members {
		if m.Name == "" {
			return nil, ErrEmptyMemberName
		}

		if _, ok := e.index[m.Name]; ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateMemberName, name, m.Name)
		}

		e.index[m.Name] = len(e.members)
		e.members = append(e.members, m)
	}

	return e, nil
}

// MustEnum is like NewEnum but panics on error. Use it for package level
// declarations only.
func MustEnum(name string, members ...Member) *Enum {
	e, err := NewEnum(name, members...)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Enum) Name() string {
	return e.name
}

// Members yields every (name, value) pair in declaration order. The sequence
// can be ranged over any number of times.
func (e *Enum) Members() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, m := range e.members {
			if !yield(m.Name, m.Value) {
				return
			}
		}
	}
}

// Lookup returns the value of the member called name.
func (e *Enum) Lookup(name string) (string, bool) {
	i, ok := e.index[name]
	if !ok {
		return "", false
	}
	return e.members[i].Value, true
}

// Parse maps a member value of OpenAPIScope back to its Scope.
func Parse(value string) (Scope, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, val := range OpenAPIScope.Members() {
		if val == v {
			return Scope(val), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownScope, value)
}

// ParseList parses a comma separated list of scopes, dropping duplicates.
func ParseList(values string) ([]Scope, error) {
	var scopes []Scope
	seen := map[Scope]bool{}

	for _, part := range strings.Split(values, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		s, err := Parse(part)
		if err != nil {
			return nil, err
		}

		if seen[s] {
			continue
		}

		seen[s] = true
		scopes = append(scopes, s)
	}

	return scopes, nil
}
