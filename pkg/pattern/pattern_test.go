package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "no tokens is identity",
			raw:  "^FIX: .*",
			want: "^FIX: .*",
		},
		{
			name: "escaped equals",
			raw:  "-EsC-=",
			want: "=",
		},
		{
			name: "copyright notice",
			raw:  "-EsC-(c-EsC-) 2024 Company Name",
			want: "(c) 2024 Company Name",
		},
		{
			name: "token mid-pattern",
			raw:  "key-EsC-=value",
			want: "key=value",
		},
		{
			name: "trailing token passes through",
			raw:  "pattern-EsC-",
			want: "pattern-EsC-",
		},
		{
			name: "bare token passes through",
			raw:  "-EsC-",
			want: "-EsC-",
		},
		{
			name: "escaped escape token decodes one layer",
			raw:  "-EsC--EsC-=",
			want: "-EsC-=",
		},
		{
			name: "unescaped equals untouched",
			raw:  "a=b",
			want: "a=b",
		},
		{
			name: "empty string",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.raw); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile("[invalid[", Reject)
	if err == nil {
		t.Fatal("Compile() expected error for invalid pattern")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Compile() error = %v, want ErrInvalidPattern", err)
	}
	if !strings.Contains(err.Error(), "[invalid[") {
		t.Errorf("Compile() error %q should name the raw pattern", err)
	}
	if !strings.Contains(err.Error(), "reject") {
		t.Errorf("Compile() error %q should name the role", err)
	}
}

func TestCompileDecodesBeforeCompiling(t *testing.T) {
	// Undecoded, "-EsC-[r-EsC-]" contains an unclosed character class.
	p, err := Compile("-EsC-[r-EsC-]", Reject)
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	if !p.Matches("contains [r] somewhere") {
		t.Error("decoded pattern should match the literal-adjacent text")
	}
}

func TestMatchesIsUnanchored(t *testing.T) {
	p, err := Compile("needle", Accept)
	if err != nil {
		t.Fatalf("Compile() unexpected error: %v", err)
	}
	if !p.Matches("hay needle stack") {
		t.Error("Matches() should search anywhere in the target")
	}
	if p.Matches("haystack") {
		t.Error("Matches() matched absent pattern")
	}
}

func TestCompileSet(t *testing.T) {
	set, err := CompileSet([]string{"^FIX: ", "^FEATURE: "}, Accept)
	if err != nil {
		t.Fatalf("CompileSet() unexpected error: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("CompileSet() returned %d patterns, want 2", len(set))
	}
	if set[0].Raw != "^FIX: " || set[0].Role != Accept {
		t.Errorf("CompileSet() first pattern = %q/%v, want raw text and role preserved", set[0].Raw, set[0].Role)
	}

	if _, err := CompileSet([]string{".*", "[bad["}, Accept); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("CompileSet() error = %v, want ErrInvalidPattern", err)
	}
}

func TestRoleString(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{Accept, "accept"},
		{Reject, "reject"},
		{Require, "require"},
		{Role(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.role.String(); got != tt.want {
			t.Errorf("Role(%d).String() = %q, want %q", tt.role, got, tt.want)
		}
	}
}
