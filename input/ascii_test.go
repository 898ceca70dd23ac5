package input

import "testing"

func TestIsASCIIRun(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"hello world", true},
		{"hello\xc3\xa9world", false}, // "é" (2-byte UTF-8)
		{"exactly8b", true},
		{"12345678", true},
	}
	for _, c := range cases {
		if got := isASCIIRun([]byte(c.s)); got != c.want {
			t.Errorf("isASCIIRun(%q) = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestIsASCIIRunAgreesAcrossImplementations(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"this is a longer ascii-only run of text, well past one word",
		"caf\xc3\xa9 latte",
		"\x80\x81\x82",
	}
	for _, s := range inputs {
		generic := isASCIIRunGeneric([]byte(s))
		swar := isASCIIRunSWAR([]byte(s))
		if generic != swar {
			t.Errorf("isASCIIRunGeneric(%q)=%v != isASCIIRunSWAR=%v", s, generic, swar)
		}
	}
}
