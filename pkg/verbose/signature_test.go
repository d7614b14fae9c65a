package verbose

import (
	"os"
	"strings"
	"testing"

	"golang.org/x/term"
)

// TestSignatureString tests the rendered call surface for a named unary
// function.
func TestSignatureString(t *testing.T) {
	w := Wrap(greet, ParamNames("name"))

	want := "greet(name string, *, verbose bool = false) -> string"
	if got := w.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

// TestSignatureDefaultMirrorsPolicy tests that the advertised flag default
// equals the configured policy.
func TestSignatureDefaultMirrorsPolicy(t *testing.T) {
	w := Wrap(greet, ParamNames("name"), Default(true))

	sig := w.Signature()
	if sig.Verbose.Name != "verbose" {
		t.Errorf("flag name = %q, want verbose", sig.Verbose.Name)
	}
	if !sig.Verbose.Default {
		t.Error("flag default = false, want true")
	}
	if !strings.Contains(w.String(), "verbose bool = true") {
		t.Errorf("String = %q, missing true default", w.String())
	}
}

// TestSignatureParams tests that the advertised parameters are exactly the
// original ones, in order, with the flag kept separate.
func TestSignatureParams(t *testing.T) {
	pair := func(a string, b int) (string, error) { return a, nil }
	w := Wrap(pair, ParamNames("a", "b"))

	sig := w.Signature()
	if len(sig.Params) != 2 {
		t.Fatalf("param count = %d, want 2", len(sig.Params))
	}
	if sig.Params[0].Name != "a" || sig.Params[0].Type.Kind().String() != "string" {
		t.Errorf("param 0 = %s %s", sig.Params[0].Name, sig.Params[0].Type)
	}
	if sig.Params[1].Name != "b" || sig.Params[1].Type.Kind().String() != "int" {
		t.Errorf("param 1 = %s %s", sig.Params[1].Name, sig.Params[1].Type)
	}

	want := "(a string, b int, *, verbose bool = false) -> (string, error)"
	if got := sig.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

// TestSignatureUnnamedParams tests the generated placeholder names.
func TestSignatureUnnamedParams(t *testing.T) {
	pair := func(a string, b int) {}
	w := Wrap(pair)

	want := "(a0 string, a1 int, *, verbose bool = false)"
	if got := w.Signature().String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

// TestSignatureNoParams tests rendering when only the flag is advertised.
func TestSignatureNoParams(t *testing.T) {
	w := Wrap(announce, Default(true))

	want := "announce(*, verbose bool = true)"
	if got := w.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}

// TestSignatureVariadic tests rendering of a variadic parameter.
func TestSignatureVariadic(t *testing.T) {
	w := Wrap(sum, ParamNames("nums"))

	want := "sum(nums ...int, *, verbose bool = false) -> int"
	if got := w.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if !w.Signature().Variadic {
		t.Error("Variadic = false, want true")
	}
}

// TestIdentityMetadata tests the runtime identity copied onto the wrapper.
func TestIdentityMetadata(t *testing.T) {
	w := Wrap(greet)

	if w.Name() != "greet" {
		t.Errorf("Name = %q, want greet", w.Name())
	}
	if want := "github.com/jamespreed/verbosify/pkg/verbose"; w.PkgPath() != want {
		t.Errorf("PkgPath = %q, want %q", w.PkgPath(), want)
	}
	if !strings.HasSuffix(w.FullName(), "/pkg/verbose.greet") {
		t.Errorf("FullName = %q", w.FullName())
	}
}

// TestSplitName tests qualified-name splitting for edge shapes.
func TestSplitName(t *testing.T) {
	cases := []struct {
		full, pkg, name string
	}{
		{"github.com/jamespreed/verbosify/pkg/verbose.Wrap", "github.com/jamespreed/verbosify/pkg/verbose", "Wrap"},
		{"main.run", "main", "run"},
		{"main.TestThing.func1", "main", "TestThing.func1"},
		{"", "", ""},
		{"noqualifier", "", "noqualifier"},
	}

	for _, c := range cases {
		pkg, name := splitName(c.full)
		if pkg != c.pkg || name != c.name {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", c.full, pkg, name, c.pkg, c.name)
		}
	}
}

// TestDocSynthesis tests normalization plus the appended option block.
func TestDocSynthesis(t *testing.T) {
	w := Wrap(greet, Doc("\n    Test function to print any input.\n    "))

	want := "Test function to print any input.\n\n" + optionBlock
	if got := w.Doc(); got != want {
		t.Errorf("Doc = %q, want %q", got, want)
	}
}

// TestDocWithoutOriginal tests that the option block stands alone when no
// documentation is supplied.
func TestDocWithoutOriginal(t *testing.T) {
	w := Wrap(greet)

	if got := w.Doc(); got != optionBlock {
		t.Errorf("Doc = %q, want bare option block", got)
	}
	if !strings.Contains(w.Doc(), "Turns on/off print lines in the function.") {
		t.Error("Doc missing the flag effect line")
	}
}

// TestTerminalDefault tests that the policy mirrors the terminal check made
// at wrap time.
func TestTerminalDefault(t *testing.T) {
	w := Wrap(announce, TerminalDefault())

	want := term.IsTerminal(int(os.Stdout.Fd()))
	if w.Default() != want {
		t.Errorf("Default = %t, want %t", w.Default(), want)
	}
	if w.Signature().Verbose.Default != want {
		t.Errorf("advertised default = %t, want %t", w.Signature().Verbose.Default, want)
	}
}
