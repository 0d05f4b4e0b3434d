package sin

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "known good", raw: "046454286", want: true},
		{name: "known good formatted", raw: "046-454-286", want: true},
		{name: "known good spaced", raw: "046 454 286", want: true},
		{name: "bad checksum", raw: "123456789", want: false},
		{name: "valid checksum alternate", raw: "123456782", want: true},
		{name: "eight digits", raw: "12345678", want: false},
		{name: "ten digits", raw: "1234567890", want: false},
		{name: "empty", raw: "", want: false},
		{name: "letters only", raw: "abcdefghi", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.raw); got != tt.want {
				t.Fatalf("Valid(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "spaced", raw: "123 456 782", want: "123-456-782"},
		{name: "bare", raw: "046454286", want: "046-454-286"},
		{name: "already formatted", raw: "046-454-286", want: "046-454-286"},
		{name: "too short", raw: "12345678", want: ""},
		{name: "too long", raw: "1234567890", want: ""},
		{name: "mixed noise", raw: "SIN: 046.454.286", want: "046-454-286"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.raw); got != tt.want {
				t.Fatalf("Format(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMask(t *testing.T) {
	if got := Mask("046454286"); got != "***-***-286" {
		t.Fatalf("Mask = %q, want %q", got, "***-***-286")
	}
	if got := Mask("12345678"); got != "***-***-***" {
		t.Fatalf("Mask of invalid input = %q, want fully masked", got)
	}
}
