package probe

import (
	"context"
	"fmt"
	"io"
	"iter"

	"github.com/frain-dev/oasprobe/pkg/log"
)

const (
	DefaultTarget = "scope.OpenAPIScope"
	DefaultMember = "Webhooks"
	DefaultValue  = "webhooks"
)

// Enumeration is a named set of string constants the probe can inspect.
type Enumeration interface {
	Name() string
	Members() iter.Seq2[string, string]
	Lookup(name string) (string, bool)
}

// Resolver finds an Enumeration by its target name.
type Resolver interface {
	Resolve(ctx context.Context, target string) (Enumeration, error)
}

// Probe checks that an enumeration carries a member with an expected value.
type Probe struct {
	Resolver Resolver
	Target   string
	Member   string
	Value    string
	Out      io.Writer
	Logger   log.StdLogger
}

// Run resolves the target, prints its members and asserts Member == Value.
// Every failure is returned as an *Error.
func (p *Probe) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: UnexpectedFailure, Err: fmt.Errorf("%v", r)}
		}
	}()

	enum, err := p.Resolver.Resolve(ctx, p.Target)
	if err != nil {
		return &Error{Kind: ImportFailure, Err: err}
	}

	p.logger().Debugf("resolved %s", p.Target)

	fmt.Fprintf(p.Out, "Available %s members:\n", enum.Name())
	for name, value := range enum.Members() {
		if err := ctx.Err(); err != nil {
			return &Error{Kind: UnexpectedFailure, Err: err}
		}
		fmt.Fprintf(p.Out, "  - %s: %s\n", name, value)
	}

	got, ok := enum.Lookup(p.Member)
	if !ok {
		return &Error{
			Kind: AssertionFailure,
			Err:  fmt.Errorf("%s member not found in %s", p.Member, enum.Name()),
		}
	}

	if got != p.Value {
		return &Error{
			Kind: AssertionFailure,
			Err:  fmt.Errorf("%s.%s value should be %q, got %q", enum.Name(), p.Member, p.Value, got),
		}
	}

	fmt.Fprintf(p.Out, "\n✓ %s.%s is present with value %q\n", enum.Name(), p.Member, got)
	return nil
}

func (p *Probe) logger() log.StdLogger {
	if p.Logger == nil {
		return log.Default()
	}
	return p.Logger
}
