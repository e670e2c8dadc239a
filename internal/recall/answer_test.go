package recall

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello world"},
		{"  spaced   out\ttext ", "spaced out text"},
		{"MiXeD", "mixed"},
		{"", ""},
		{"   ", ""},
		{"one\nline\nper\nword", "one line per word"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		input string
		label string
		want  bool
	}{
		{"mitochondria", "Mitochondria", true},
		{"  golgi   apparatus ", "Golgi Apparatus", true},
		{"cell wall", "cell membrane", false},
		{"", "", true},
		{"a", "", false},
	}
	for _, tt := range tests {
		if got := Check(tt.input, tt.label); got != tt.want {
			t.Errorf("Check(%q, %q) = %v, want %v", tt.input, tt.label, got, tt.want)
		}
	}
}

func TestHintText(t *testing.T) {
	tests := []struct {
		label string
		hints int
		want  string
	}{
		{"photosynthesis", 0, ""},
		{"photosynthesis", 1, "p…"},
		{"krebs cycle", 2, "k… c…"},
		{"krebs cycle", 3, "krebs cycle"},
		{"krebs cycle", 9, "krebs cycle"},
		{"", 1, ""},
		{"   ", 2, ""},
	}
	for _, tt := range tests {
		if got := HintText(tt.label, tt.hints); got != tt.want {
			t.Errorf("HintText(%q, %d) = %q, want %q", tt.label, tt.hints, got, tt.want)
		}
	}
}
