package verbose

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/jamespreed/verbosify/pkg/redirect"
)

// Func is the replacement callable produced by Wrap. It holds the target
// function, the suppression policy, and metadata synthesized once at wrap
// time. A Func is safe to invoke any number of times; suppression state is
// scoped to each call.
type Func struct {
	target reflect.Value
	typ    reflect.Type

	def  bool
	name string
	full string
	pkg  string
	doc  string
	sig  *Signature
}

// errorType is the interface type matched when splitting a trailing error
// result.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

func newFunc(fn any, cfg config) *Func {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		panic(fmt.Sprintf("verbose: wrap target must be a function, got %T", fn))
	}

	f := &Func{
		target: v,
		typ:    v.Type(),
		def:    cfg.def,
	}
	f.full = runtimeName(v)
	f.pkg, f.name = splitName(f.full)
	f.sig = newSignature(f.typ, cfg.paramNames, cfg.def)
	f.doc = synthesizeDoc(cfg.doc)
	return f
}

// Call invokes the target with the default suppression policy. Arguments
// bind to the target's original parameters; malformed calls panic the same
// way a direct reflect call would. Call panics if the null device cannot be
// opened for a suppressed invocation.
func (f *Func) Call(args ...any) []any {
	return f.call(f.def, args)
}

// CallVerbose invokes the target with an explicit per-call flag, overriding
// the default policy for this invocation only. The flag is consumed by the
// wrapper and never passed to the target.
func (f *Func) CallVerbose(verbose bool, args ...any) []any {
	return f.call(verbose, args)
}

// CallErr is Call with the target's trailing error result, if it declares
// one, split out of the returned values.
func (f *Func) CallErr(args ...any) ([]any, error) {
	return f.splitErr(f.call(f.def, args))
}

// CallVerboseErr is CallVerbose with the target's trailing error result, if
// it declares one, split out of the returned values.
func (f *Func) CallVerboseErr(verbose bool, args ...any) ([]any, error) {
	return f.splitErr(f.call(verbose, args))
}

func (f *Func) call(verbose bool, args []any) []any {
	in := f.bind(args)
	out := f.invoke(verbose, func() []reflect.Value {
		return f.target.Call(in)
	})

	results := make([]any, len(out))
	for i, v := range out {
		results[i] = v.Interface()
	}
	return results
}

// invoke runs call with standard output suppressed unless verbose is true.
// Restoration is handled by the redirect package on every exit path,
// including a panicking target.
func (f *Func) invoke(verbose bool, call func() []reflect.Value) []reflect.Value {
	if verbose {
		return call()
	}

	var out []reflect.Value
	if err := redirect.Discard(func() { out = call() }); err != nil {
		panic(fmt.Sprintf("verbose: %v", err))
	}
	return out
}

// bind converts caller arguments to reflect values. Nil arguments become the
// zero value of the corresponding parameter so untyped nils bind to
// interface and pointer parameters.
func (f *Func) bind(args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(f.paramType(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	return in
}

func (f *Func) paramType(i int) reflect.Type {
	if f.typ.IsVariadic() && i >= f.typ.NumIn()-1 {
		return f.typ.In(f.typ.NumIn() - 1).Elem()
	}
	if i < f.typ.NumIn() {
		return f.typ.In(i)
	}
	// Surplus arguments surface as binding panics from the reflect call.
	return errorType
}

func (f *Func) splitErr(results []any) ([]any, error) {
	n := f.typ.NumOut()
	if n == 0 || f.typ.Out(n-1) != errorType {
		return results, nil
	}
	last := results[n-1]
	if last == nil {
		return results[:n-1], nil
	}
	return results[:n-1], last.(error)
}

// Make returns a new function with the target's exact dynamic type that
// applies the default policy on every call. The result can replace the
// original function value wherever it is used, including rewrapping.
func (f *Func) Make() any {
	variadic := f.typ.IsVariadic()
	impl := func(in []reflect.Value) []reflect.Value {
		return f.invoke(f.def, func() []reflect.Value {
			if variadic {
				return f.target.CallSlice(in)
			}
			return f.target.Call(in)
		})
	}
	return reflect.MakeFunc(f.typ, impl).Interface()
}

// Name returns the target's short function name.
func (f *Func) Name() string {
	return f.name
}

// FullName returns the target's fully qualified runtime name, such as
// "github.com/jamespreed/verbosify/pkg/verbose.Wrap".
func (f *Func) FullName() string {
	return f.full
}

// PkgPath returns the import path of the package the target was declared in.
func (f *Func) PkgPath() string {
	return f.pkg
}

// Doc returns the synthesized documentation text: the normalized original
// documentation followed by the verbose option block.
func (f *Func) Doc() string {
	return f.doc
}

// Default reports the suppression policy the wrapper was built with.
func (f *Func) Default() bool {
	return f.def
}

// Signature returns the advertised call signature: the target's original
// parameters plus the trailing verbose flag.
func (f *Func) Signature() *Signature {
	return f.sig
}

// String renders the advertised call surface, such as
// "greet(name string, *, verbose bool = false) -> string".
func (f *Func) String() string {
	return f.name + f.sig.String()
}

// runtimeName resolves the target's symbol name from the runtime. Method
// values carry a -fm suffix, which is stripped.
func runtimeName(v reflect.Value) string {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	return strings.TrimSuffix(rf.Name(), "-fm")
}

// splitName splits a fully qualified runtime name into package import path
// and function name. The first dot after the final slash separates the two.
func splitName(full string) (pkg, name string) {
	if full == "" {
		return "", ""
	}
	start := strings.LastIndex(full, "/") + 1
	dot := strings.Index(full[start:], ".")
	if dot < 0 {
		return "", full
	}
	return full[:start+dot], full[start+dot+1:]
}
