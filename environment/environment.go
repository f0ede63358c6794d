package environment

import (
	"fmt"
	"strings"
)

// Environment is a deployment target of the infrastructure under test.
type Environment string

const (
	Staging    Environment = "staging"
	Production Environment = "production"
)

// All returns every known environment.
func All() []Environment {
	return []Environment{Staging, Production}
}

// Parse turns a user-supplied name into an Environment. Matching is case-insensitive.
func Parse(name string) (Environment, error) {
	env := Environment(strings.ToLower(strings.TrimSpace(name)))
	if !env.IsValid() {
		return "", fmt.Errorf("unknown environment '%s'. Must be one of: %s, %s", name, Staging, Production)
	}
	return env, nil
}

// IsValid checks if the Environment value is valid
func (e Environment) IsValid() bool {
	switch e {
	case Staging, Production:
		return true
	default:
		return false
	}
}

func (e Environment) String() string {
	return string(e)
}
