package strength

import "strings"

var commonPatterns = []string{
	"123", "abc", "qwerty", "password", "admin", "user",
	"login", "welcome", "letmein", "master", "super",
	"iloveyou", "123456", "123456789", "qwertyuiop",
	"asdfghjkl", "zxcvbnm", "111111", "000000",
}

var sequences = []string{
	"abcdefghijklmnopqrstuvwxyz",
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"0123456789",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

const (
	maxRepeats   = 3
	windowLength = 3
)

// HasCommonPattern reports whether password contains a denylisted substring,
// ignoring case.
func HasCommonPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, p := range commonPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// HasRepeatingRun reports whether any rune repeats three or more times in a row.
func HasRepeatingRun(password string) bool {
	count := 0
	var prev rune
	for i, r := range password {
		if i > 0 && r == prev {
			count++
			if count >= maxRepeats {
				return true
			}
			continue
		}
		prev = r
		count = 1
	}
	return false
}

// HasSequentialRun reports whether password contains, ignoring case, any
// three-character window of the alphabet, the digits or a keyboard row.
func HasSequentialRun(password string) bool {
	lower := strings.ToLower(password)
	for _, seq := range sequences {
		seq = strings.ToLower(seq)
		for i := 0; i+windowLength <= len(seq); i++ {
			if strings.Contains(lower, seq[i:i+windowLength]) {
				return true
			}
		}
	}
	return false
}
