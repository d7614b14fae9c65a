// Package verbose wraps functions so their standard-output writes can be
// suppressed per call.
//
// A wrapped function carries a default suppression policy, fixed at wrap
// time: when the policy is false, output the target writes to os.Stdout is
// discarded; when true, output flows normally. Every invocation may override
// the default for that call only. The wrapper also synthesizes introspection
// metadata for the replacement callable: the target's runtime identity, a
// normalized documentation text extended with a description of the verbose
// option, and an advertised call signature listing the original parameters
// plus the trailing verbose flag.
//
// Suppression redirects the process-global standard output stream for the
// duration of the call. See package redirect for the concurrency hazards
// that come with that.
package verbose

import (
	"os"

	"golang.org/x/term"
)

// config holds the wrap-time settings gathered from Options.
type config struct {
	def        bool
	doc        string
	paramNames []string
}

// Option configures how a target function is wrapped.
type Option func(*config)

// Default sets the suppression policy: the default value of the wrapper's
// verbose flag. False (the zero value) suppresses output unless a call
// overrides it.
func Default(v bool) Option {
	return func(c *config) {
		c.def = v
	}
}

// Doc supplies the target's documentation text. Go functions carry no
// runtime docstring, so the wrapper cannot read one; the text given here is
// normalized and extended with the verbose option block at wrap time.
func Doc(text string) Option {
	return func(c *config) {
		c.doc = text
	}
}

// ParamNames supplies names for the advertised signature's parameters, in
// declaration order. Reflection exposes parameter types but not names;
// parameters without a supplied name are shown as a0, a1, and so on.
func ParamNames(names ...string) Option {
	return func(c *config) {
		c.paramNames = names
	}
}

// TerminalDefault sets the suppression policy from whether standard output
// is attached to a terminal when the wrapper is built: printing stays on for
// interactive use and is suppressed when output is piped. Evaluated once, at
// wrap time.
func TerminalDefault() Option {
	return func(c *config) {
		c.def = term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// Wrap builds the replacement callable for fn. With no options the policy
// defaults to false, so output is suppressed until a call passes an explicit
// true. Wrap panics if fn is not a function.
func Wrap(fn any, opts ...Option) *Func {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return newFunc(fn, cfg)
}

// Decorator captures options once and returns a function that applies them
// to each target it is given. It is the factory form of Wrap:
//
//	echoOff := verbose.Decorator(verbose.Default(false))
//	quiet := echoOff(noisy)
func Decorator(opts ...Option) func(fn any) *Func {
	return func(fn any) *Func {
		return Wrap(fn, opts...)
	}
}
