package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "capital split at page boundary",
			in:   "M\nONTOYA",
			want: "MONTOYA",
		},
		{
			name: "hyphenated compound split mid segment",
			in:   "MONTOYA-LE\nWIS, J.",
			want: "MONTOYA-LEWIS, J.",
		},
		{
			name: "split at the hyphen",
			in:   "SMITH-\nJONES",
			want: "SMITH-JONES",
		},
		{
			name: "hyphen split with surrounding whitespace",
			in:   "pre-  \n  trial motion",
			want: "pre-trial motion",
		},
		{
			name: "unrelated lines stay separate",
			in:   "The court held.\nthe appeal fails.",
			want: "The court held.\nthe appeal fails.",
		},
		{
			name: "plain text untouched",
			in:   "STATE OF WASHINGTON, Respondent, v. JAROD TAYLOR, Appellant.",
			want: "STATE OF WASHINGTON, Respondent, v. JAROD TAYLOR, Appellant.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinPages(t *testing.T) {
	got := JoinPages([]string{"page one", "page two"})
	want := "page one\n\npage two"
	if got != want {
		t.Errorf("JoinPages = %q, want %q", got, want)
	}
}
