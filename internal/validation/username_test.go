package validation

import (
	"strings"
	"testing"
)

func TestCheckUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		want     UsernameProblem
	}{
		{name: "simple", username: "dicoding", want: UsernameOK},
		{name: "underscore and digits", username: "user_123", want: UsernameOK},
		{name: "exactly max length", username: strings.Repeat("a", MaxUsernameLength), want: UsernameOK},
		{name: "too long", username: strings.Repeat("a", MaxUsernameLength+1), want: UsernameTooLong},
		{name: "space", username: "dico ding", want: UsernameRestricted},
		{name: "hyphen", username: "dico-ding", want: UsernameRestricted},
		{name: "symbol", username: "dico!", want: UsernameRestricted},
		{name: "too long wins over restricted", username: strings.Repeat("a b", 20), want: UsernameTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckUsername(tc.username); got != tc.want {
				t.Fatalf("CheckUsername(%q) = %d, want %d", tc.username, got, tc.want)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "sebuah thread", want: "sebuah thread"},
		{name: "tags removed", in: "<b>tebal</b> teks", want: "tebal teks"},
		{name: "script dropped", in: "<script>alert(1)</script>halo", want: "halo"},
		{name: "comparison kept", in: "a < b & c", want: "a < b & c"},
		{name: "only markup", in: "<i></i>", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripMarkup(tc.in); got != tc.want {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
