package metrics

import "testing"

func TestCountFeatures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Features
	}{
		{"empty", "", Features{}},
		{"single word", "hello", Features{Bytes: 5, Runes: 5, Words: 1, Lines: 1}},
		{"two lines", "a b\nc", Features{Bytes: 5, Runes: 5, Words: 3, Lines: 2}},
		{"multibyte", "héllo", Features{Bytes: 6, Runes: 5, Words: 1, Lines: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountFeatures(tc.in); got != tc.want {
				t.Fatalf("CountFeatures(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFields_Prefix(t *testing.T) {
	f := CountFeatures("one two")
	fields := f.Fields("output")
	if fields["output_words"] != 2 {
		t.Fatalf("output_words = %v, want 2", fields["output_words"])
	}
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
}
