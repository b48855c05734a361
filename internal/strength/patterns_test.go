package strength

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHasCommonPattern(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"xyz", false},
		{"abc123", true},
		{"MyPassWord!", true},
		{"QWERTY", true},
		{"xx000000xx", true},
		{"00000", false},
		{"iLoveYou", true},
		{"Zq8#Wm5%", false},
	}
	for _, tc := range tests {
		if got := HasCommonPattern(tc.password); got != tc.want {
			t.Fatalf("HasCommonPattern(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestHasRepeatingRun(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"a", false},
		{"aa", false},
		{"aaa", true},
		{"aabaa", false},
		{"xaaaax", true},
		{"aaAA11", false},
		{"aaaAAA111!!!", true},
		{"ééé", true},
	}
	for _, tc := range tests {
		if got := HasRepeatingRun(tc.password); got != tc.want {
			t.Fatalf("HasRepeatingRun(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestHasSequentialRun(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"", false},
		{"ab", false},
		{"abc", true},
		{"xABCx", true},
		{"xyz", true},
		{"789", true},
		{"9780", false},
		{"cba", false},
		{"QWE", true},
		{"sdf", true},
		{"bnm", true},
		{"Zq8#Wm5%", false},
	}
	for _, tc := range tests {
		if got := HasSequentialRun(tc.password); got != tc.want {
			t.Fatalf("HasSequentialRun(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestWarningsOrder(t *testing.T) {
	got := Warnings("aaa")
	want := []Warning{WarnTooShort, WarnNoUpper, WarnNoDigit, WarnNoSymbol, WarnRepeatingChars}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected warnings (-want +got):\n%s", diff)
	}
	if Warnings("aa")[len(Warnings("aa"))-1] == WarnRepeatingChars {
		t.Fatalf("two repeats must not trigger the repeating warning")
	}
}

func TestWarningsDigitsOnly(t *testing.T) {
	got := Warnings("111")
	want := []Warning{WarnTooShort, WarnNoUpper, WarnNoLower, WarnNoSymbol, WarnRepeatingChars}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected warnings (-want +got):\n%s", diff)
	}
}

func TestWarningMessages(t *testing.T) {
	if WarnRepeatingChars.String() != "Avoid repeating characters" {
		t.Fatalf("unexpected message: %q", WarnRepeatingChars)
	}
	if WarnTooShort.String() != "Password should be at least 12 characters long" {
		t.Fatalf("unexpected message: %q", WarnTooShort)
	}
	if Warning(99).String() != "Unknown warning" {
		t.Fatalf("expected fallback message")
	}
}
