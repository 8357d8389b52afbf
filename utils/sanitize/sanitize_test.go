package sanitize_test

import (
	"strings"
	"testing"

	"github.com/OuicestnousCA/oca/utils/sanitize"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "Thandi M",
			want:  "Thandi M",
		},
		{
			name:  "script tag and its contents removed",
			input: "<script>alert(1)</script>Hoodie",
			want:  "Hoodie",
		},
		{
			name:  "script tag with attributes removed",
			input: `<script src="https://evil.example/x.js"></script>Cap`,
			want:  "Cap",
		},
		{
			name:  "multiline script removed",
			input: "Tee<script>\nwindow.location='https://evil.example';\n</script>",
			want:  "Tee",
		},
		{
			name:  "inline event handler stripped",
			input: `<img src=x onerror="alert(1)">Hoodie`,
			want:  "Hoodie",
		},
		{
			name:  "unquoted event handler stripped",
			input: `<div onclick=steal()>12 Long Street</div>`,
			want:  "12 Long Street",
		},
		{
			name:  "residual tags removed",
			input: "<b>Cape Town</b>",
			want:  "Cape Town",
		},
		{
			name:  "stray angle brackets removed",
			input: "price < 100",
			want:  "price  100",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  8001  ",
			want:  "8001",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := sanitize.String(tt.input)
			if got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.ContainsAny(got, "<>") {
				t.Fatalf("String(%q) = %q still contains angle brackets", tt.input, got)
			}
		})
	}
}

func TestReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "alphanumeric reference", input: "T685113700212677", want: true},
		{name: "reference with separators", input: "ref_abc-123.x=", want: true},
		{name: "empty reference", input: "", want: false},
		{name: "reference with spaces", input: "ref abc", want: false},
		{name: "reference with shell metacharacters", input: "ref;rm -rf /", want: false},
		{name: "reference with html", input: "<script>x</script>", want: false},
		{name: "reference over length limit", input: strings.Repeat("a", 101), want: false},
		{name: "reference at length limit", input: strings.Repeat("a", 100), want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitize.Reference(tt.input); got != tt.want {
				t.Fatalf("Reference(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
