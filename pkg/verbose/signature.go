package verbose

import (
	"fmt"
	"reflect"
	"strings"
)

// verboseName is the fixed name of the appended flag parameter.
const verboseName = "verbose"

// Param describes one advertised parameter of a wrapped function.
type Param struct {
	Name string
	Type reflect.Type
}

// VerboseParam describes the flag parameter the wrapper appends. Name is
// always "verbose"; Default mirrors the suppression policy.
type VerboseParam struct {
	Name    string
	Default bool
}

// Signature is the advertised call signature of a wrapped function: the
// target's original parameters in order, followed by the verbose flag.
type Signature struct {
	Params   []Param
	Variadic bool
	Results  []reflect.Type
	Verbose  VerboseParam
}

func newSignature(t reflect.Type, names []string, def bool) *Signature {
	s := &Signature{
		Variadic: t.IsVariadic(),
		Verbose:  VerboseParam{Name: verboseName, Default: def},
	}
	for i := 0; i < t.NumIn(); i++ {
		name := fmt.Sprintf("a%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		s.Params = append(s.Params, Param{Name: name, Type: t.In(i)})
	}
	for i := 0; i < t.NumOut(); i++ {
		s.Results = append(s.Results, t.Out(i))
	}
	return s
}

// String renders the signature without the function name, for example
// "(name string, *, verbose bool = false) -> string". The star marks the
// verbose flag as call-option style: it never binds positionally.
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(" ")
		if s.Variadic && i == len(s.Params)-1 {
			b.WriteString("...")
			b.WriteString(p.Type.Elem().String())
		} else {
			b.WriteString(p.Type.String())
		}
	}
	if len(s.Params) > 0 {
		b.WriteString(", ")
	}
	fmt.Fprintf(&b, "*, %s bool = %t)", s.Verbose.Name, s.Verbose.Default)

	switch len(s.Results) {
	case 0:
	case 1:
		b.WriteString(" -> ")
		b.WriteString(s.Results[0].String())
	default:
		parts := make([]string, len(s.Results))
		for i, r := range s.Results {
			parts[i] = r.String()
		}
		fmt.Fprintf(&b, " -> (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}
