package localize

import (
	"errors"
	"strings"
	"testing"

	"cssmod/css"
	"cssmod/scope"
)

// transform parses the document, runs the transformer and returns the
// resulting CSS text.
func transform(t *testing.T, doc string, mode scope.Mode) (string, error) {
	t.Helper()

	sheet := css.NewParser(nil).Parse([]byte(doc))
	if err := NewTransformer(mode, nil).Transform(sheet); err != nil {
		return "", err
	}
	return sheet.String(), nil
}

func TestTransformer_LocalMode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single class",
			in:   `.foo { color: red; }`,
			want: `:local(.foo) { color: red; }`,
		},
		{
			name: "selector list",
			in:   `.foo, .baz { color: red; }`,
			want: `:local(.foo), :local(.baz) { color: red; }`,
		},
		{
			name: "narrow global",
			in:   `.foo :global(.foo .bar) { color: red; }`,
			want: `:local(.foo) .foo .bar { color: red; }`,
		},
		{
			name: "broad overrides",
			in:   `.foo :global .bar :local .foobar :local .barfoo { color: red; }`,
			want: `:local(.foo) .bar :local(.foobar) :local(.barfoo) { color: red; }`,
		},
		{
			name: "rules inside media are rewritten",
			in:   `@media screen { .foo { color: red; } }`,
			want: `@media screen { :local(.foo) { color: red; } }`,
		},
		{
			name: "document formatting survives",
			in:   ".grid  .cell,\n.grid > .row {\n\tcolor: red;\n}\n",
			want: ":local(.grid)  :local(.cell),\n:local(.grid) > :local(.row) {\n\tcolor: red;\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transform(t, tt.in, scope.ModeLocal)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Transform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformer_Idempotent(t *testing.T) {
	in := `.foo .bar, .baz > #qux { color: red; }`

	first, err := transform(t, in, scope.ModeLocal)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	second, err := transform(t, first, scope.ModeLocal)
	if err != nil {
		t.Fatalf("Transform() second pass error = %v", err)
	}
	if first != second {
		t.Errorf("not idempotent:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestTransformer_PureMode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := `:global(.foo).bar, [type="radio"] ~ .label, :not(.foo), #bar { color: red; }`
		want := `.foo:local(.bar), [type="radio"] ~ :local(.label), :not(:local(.foo)), :local(#bar) { color: red; }`

		got, err := transform(t, in, scope.ModePure)
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}
		if got != want {
			t.Errorf("Transform() = %q, want %q", got, want)
		}
	})

	t.Run("bare element rejected", func(t *testing.T) {
		_, err := transform(t, `input { color: red; }`, scope.ModePure)
		if err == nil {
			t.Fatal("Transform() expected error, got none")
		}

		var notPure *scope.NotPureError
		if !errors.As(err, &notPure) {
			t.Fatalf("Transform() error = %T (%v), want *NotPureError", err, err)
		}
		if !strings.Contains(err.Error(), "input") {
			t.Errorf("error %q does not mention the selector", err.Error())
		}
	})
}

func TestTransformer_Consistency(t *testing.T) {
	t.Run("mixed branches rejected", func(t *testing.T) {
		_, err := transform(t, `:global .foo, .bar { color: red; }`, scope.ModeLocal)
		if err == nil {
			t.Fatal("Transform() expected error, got none")
		}

		var inconsistent *scope.InconsistentSelectorError
		if !errors.As(err, &inconsistent) {
			t.Errorf("Transform() error = %T (%v), want *InconsistentSelectorError", err, err)
		}
	})

	t.Run("all branches annotated", func(t *testing.T) {
		got, err := transform(t, `:global .foo, .bar :global, .foobar :global { color: red; }`, scope.ModeLocal)
		if err != nil {
			t.Fatalf("Transform() error = %v", err)
		}

		want := `.foo, :local(.bar), :local(.foobar) { color: red; }`
		if got != want {
			t.Errorf("Transform() = %q, want %q", got, want)
		}
	})
}

func TestTransformer_StructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		as   func(error) bool
	}{
		{
			name: "nested overrides",
			in:   `:local(:local(.foo)) { color: red; }`,
			as: func(err error) bool {
				var e *scope.NestedScopeError
				return errors.As(err, &e)
			},
		},
		{
			name: "missing space after keyword",
			in:   `.foo :global.bar { color: red; }`,
			as: func(err error) bool {
				var e *scope.SpacingError
				return errors.As(err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transform(t, tt.in, scope.ModeLocal)
			if err == nil {
				t.Fatal("Transform() expected error, got none")
			}
			if !tt.as(err) {
				t.Errorf("Transform() error = %T (%v), unexpected type", err, err)
			}
		})
	}
}

func TestTransformer_Passthrough(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "keyframes offsets", in: "@keyframes fade {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}\n"},
		{name: "vendor prefixed keyframes", in: `@-webkit-keyframes fade { from { opacity: 0; } }`},
		{name: "icss export", in: `:export { foo: __foo; }`},
		{name: "icss import", in: `:import("./colors.css") { imported: primary; }`},
		{name: "charset", in: `@charset "utf-8";`},
		{name: "import", in: `@import url("other.css");`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transform(t, tt.in, scope.ModeLocal)
			if err != nil {
				t.Fatalf("Transform() error = %v", err)
			}
			if got != tt.in {
				t.Errorf("Transform() = %q, want input back %q", got, tt.in)
			}
		})
	}
}

func TestIsReservedSelector(t *testing.T) {
	tests := []struct {
		selector string
		want     bool
	}{
		{selector: ":export", want: true},
		{selector: " :export ", want: true},
		{selector: `:import("./a.css")`, want: true},
		{selector: ":import()", want: false},
		{selector: ".export", want: false},
		{selector: ":exported", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			if got := isReservedSelector(tt.selector); got != tt.want {
				t.Errorf("isReservedSelector(%q) = %v, want %v", tt.selector, got, tt.want)
			}
		})
	}
}
