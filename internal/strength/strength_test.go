package strength

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluateEmpty(t *testing.T) {
	got := Evaluate("")
	want := Result{
		Score:       0,
		Level:       VeryWeak,
		Length:      0,
		EntropyBits: 0,
		CrackTime:   CrackTime{Unit: Instant},
		Warnings:    []Warning{WarnTooShort},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
	if got.CrackTime.String() != "Instant" {
		t.Fatalf("expected Instant, got %q", got.CrackTime.String())
	}
}

func TestEvaluateKnownPasswords(t *testing.T) {
	tests := []struct {
		password string
		want     Result
	}{
		{
			password: "abc123",
			want: Result{
				Score:       0,
				Level:       VeryWeak,
				Length:      6,
				EntropyBits: 31,
				CrackTime:   CrackTime{Unit: Instant},
				Classes:     Classes{Lower: true, Digit: true},
				Warnings:    []Warning{WarnTooShort, WarnNoUpper, WarnNoSymbol, WarnCommonPattern, WarnSequentialChars},
			},
		},
		{
			password: "aaaAAA111!!!",
			want: Result{
				Score:       60,
				Level:       Strong,
				Length:      12,
				EntropyBits: 78,
				CrackTime:   CrackTime{Unit: Centuries},
				Classes:     Classes{Lower: true, Upper: true, Digit: true, Symbol: true},
				Warnings:    []Warning{WarnRepeatingChars},
			},
		},
		{
			password: "abcdefgh",
			want: Result{
				Score:       0,
				Level:       VeryWeak,
				Length:      8,
				EntropyBits: 37,
				CrackTime:   CrackTime{Unit: Instant},
				Classes:     Classes{Lower: true},
				Warnings:    []Warning{WarnTooShort, WarnNoUpper, WarnNoDigit, WarnNoSymbol, WarnCommonPattern, WarnSequentialChars},
			},
		},
		{
			password: "Tr0ub4dor&Xy9!Kp",
			want: Result{
				Score:       100,
				Level:       Unbreakable,
				Length:      16,
				EntropyBits: 104,
				CrackTime:   CrackTime{Unit: Centuries},
				Classes:     Classes{Lower: true, Upper: true, Digit: true, Symbol: true},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.password, func(t *testing.T) {
			got := Evaluate(tc.password)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	for _, pw := range []string{"", "abc123", "hunter2", "Zq8#Wm5%Ld2&Rk7*Pv4@", "пароль123"} {
		first := Evaluate(pw)
		second := Evaluate(pw)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("evaluate(%q) not deterministic:\n%s", pw, diff)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"password123abcqwerty",
		"Zq8#Wm5%Ld2&Rk7*Pv4@Xn6^",
		"!!!!!!!!",
		"\x00\x01\x02",
	}
	for _, pw := range inputs {
		score := Score(pw)
		if score < 0 || score > 100 {
			t.Fatalf("score for %q out of range: %d", pw, score)
		}
	}
}

func TestScoreLengthBonusMonotonic(t *testing.T) {
	const base = "Zq8#Wm5%Ld2&Rk7*Pv4@"
	prev := Score(base[:4])
	for n := 5; n <= len(base); n++ {
		score := Score(base[:n])
		if score < prev {
			t.Fatalf("score decreased at length %d: %d < %d", n, score, prev)
		}
		prev = score
	}
	if prev != 100 {
		t.Fatalf("expected full score at 20 chars, got %d", prev)
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, VeryWeak},
		{19, VeryWeak},
		{20, Weak},
		{39, Weak},
		{40, Medium},
		{59, Medium},
		{60, Strong},
		{79, Strong},
		{80, Unbreakable},
		{100, Unbreakable},
	}
	for _, tc := range tests {
		if got := LevelFor(tc.score); got != tc.want {
			t.Fatalf("LevelFor(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if VeryWeak.String() != "Very Weak" || Unbreakable.String() != "Unbreakable" {
		t.Fatalf("unexpected level names: %q, %q", VeryWeak, Unbreakable)
	}
	if Level(42).String() != "Unknown" {
		t.Fatalf("expected Unknown for out of range level")
	}
}

func TestDetectClasses(t *testing.T) {
	tests := []struct {
		password string
		want     Classes
	}{
		{"", Classes{}},
		{"abc", Classes{Lower: true}},
		{"ABC", Classes{Upper: true}},
		{"123", Classes{Digit: true}},
		{" ", Classes{Symbol: true}},
		{"é", Classes{Symbol: true}},
		{"aB3$", Classes{Lower: true, Upper: true, Digit: true, Symbol: true}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, DetectClasses(tc.password)); diff != "" {
			t.Fatalf("DetectClasses(%q) (-want +got):\n%s", tc.password, diff)
		}
	}
}

func TestLengthCountsRunes(t *testing.T) {
	res := Evaluate("пароль")
	if res.Length != 6 {
		t.Fatalf("expected rune length 6, got %d", res.Length)
	}
}
