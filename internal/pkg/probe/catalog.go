package probe

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/frain-dev/oasprobe/internal/pkg/scope"
)

var (
	ErrNotRegistered     = errors.New("no enumeration registered under that name")
	ErrAlreadyRegistered = errors.New("enumeration already registered")
)

// Catalog is a Resolver backed by an explicit registry of enumerations.
type Catalog struct {
	mu    sync.RWMutex
	enums map[string]Enumeration
}

func NewCatalog() *Catalog {
	return &Catalog{enums: map[string]Enumeration{}}
}

// DefaultCatalog registers the enumerations this binary ships with.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	_ = c.Register(DefaultTarget, scope.OpenAPIScope)
	return c
}

func (c *Catalog) Register(target string, e Enumeration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.enums[target]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, target)
	}

	c.enums[target] = e
	return nil
}

func (c *Catalog) Resolve(ctx context.Context, target string) (Enumeration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.enums[target]
	if !ok {
		return nil, fmt.Errorf("cannot import name %q: %w", target, ErrNotRegistered)
	}

	return e, nil
}
