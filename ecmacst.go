// Package ecmacst provides a lossless, error-recovering ECMAScript
// parser. It turns source text into a concrete syntax tree that spans
// every byte of the input, including whitespace and comments, and
// collects diagnostics for malformed input instead of aborting on the
// first error.
//
// To parse a script, call Parse. To parse a module (where import and
// export declarations and strict-mode semantics apply unconditionally),
// call ParseModule. Both accept Options to plug in a parser
// configuration or a trace.Logger.
package ecmacst

import (
	"github.com/ecmacst/ecmacst/config"
	"github.com/ecmacst/ecmacst/syntax"
	"github.com/ecmacst/ecmacst/trace"
)

// Options configure a single Parse/ParseModule call.
type Options struct {
	Config config.Config
	Logger trace.Logger
}

// Option mutates an Options value, following the functional-options
// shape boergens-gotypst's World-based configuration generalizes from
// (there, configuration is an interface implemented by the embedder;
// here the same "supply only what you want to override" effect is
// reached with small closures instead, since ecmacst's knobs are a
// fixed struct rather than an open interface — see DESIGN.md).
type Option func(*Options)

// WithConfig overrides the default parser configuration.
func WithConfig(cfg config.Config) Option {
	return func(o *Options) { o.Config = cfg }
}

// WithLogger attaches a trace.Logger observing parse progress. The
// default is trace.NullLogger, so tracing costs nothing unless asked
// for.
func WithLogger(logger trace.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func resolveOptions(opts []Option) Options {
	o := Options{Config: config.Default(), Logger: trace.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Parse parses source text as an ECMAScript Script: a bare `return`,
// `break`, or `continue` outside a function/loop is a diagnostic
// unless Options.Config.AllowReturnOutsideFunction overrides it.
func Parse(source string, opts ...Option) (*syntax.SyntaxNode, []*syntax.Diagnostic) {
	o := resolveOptions(opts)
	o.Logger.LogDebug("parsing script, ", len(source), " bytes")
	root, diags := syntax.ParseWithConfig(source, false, o.Config.AllowReturnOutsideFunction)
	o.Logger.LogInfo("parse complete, ", len(diags), " diagnostics")
	return root, diags
}

// ParseModule parses source text as an ECMAScript Module: import and
// export declarations are permitted at the top level and the source is
// always treated as strict mode, per ECMAScript's module semantics.
func ParseModule(source string, opts ...Option) (*syntax.SyntaxNode, []*syntax.Diagnostic) {
	o := resolveOptions(opts)
	o.Logger.LogDebug("parsing module, ", len(source), " bytes")
	root, diags := syntax.ParseWithConfig(source, true, o.Config.AllowReturnOutsideFunction)
	o.Logger.LogInfo("parse complete, ", len(diags), " diagnostics")
	return root, diags
}
