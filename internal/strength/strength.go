// Package strength estimates password strength with a fixed heuristic.
package strength

// Level is a qualitative strength tier. The ordinal doubles as the display tier.
type Level int

// Strength levels, weakest first.
const (
	VeryWeak Level = iota
	Weak
	Medium
	Strong
	Unbreakable
)

var levelNames = [...]string{"Very Weak", "Weak", "Medium", "Strong", "Unbreakable"}

func (l Level) String() string {
	if l < VeryWeak || l > Unbreakable {
		return "Unknown"
	}
	return levelNames[l]
}

// Classes records which character classes appear in a password.
type Classes struct {
	Lower  bool
	Upper  bool
	Digit  bool
	Symbol bool
}

// Result is the full analysis of a password.
type Result struct {
	Score       int
	Level       Level
	Length      int
	EntropyBits int
	CrackTime   CrackTime
	Classes     Classes
	Warnings    []Warning
}

// Evaluate analyzes password. It never fails; the empty string yields a zero score.
func Evaluate(password string) Result {
	classes := DetectClasses(password)
	length := runeCount(password)
	bits := entropyBits(length, classes)
	score := Score(password)
	return Result{
		Score:       score,
		Level:       LevelFor(score),
		Length:      length,
		EntropyBits: bits,
		CrackTime:   EstimateCrackTime(bits),
		Classes:     classes,
		Warnings:    Warnings(password),
	}
}

// DetectClasses reports the ASCII letter/digit classes present and whether
// anything outside them (a symbol) appears.
func DetectClasses(password string) Classes {
	var c Classes
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Symbol = true
		}
	}
	return c
}

// Score computes the 0-100 strength score.
func Score(password string) int {
	length := runeCount(password)
	score := 0
	for _, threshold := range lengthThresholds {
		if length >= threshold {
			score += lengthBonus
		}
	}

	classes := DetectClasses(password)
	for _, present := range []bool{classes.Lower, classes.Upper, classes.Digit, classes.Symbol} {
		if present {
			score += classBonus
		}
	}

	if HasCommonPattern(password) {
		score -= commonPatternPenalty
	}
	if HasRepeatingRun(password) {
		score -= repeatingPenalty
	}
	if HasSequentialRun(password) {
		score -= sequentialPenalty
	}
	return clamp(score, 0, 100)
}

// LevelFor maps a score to its level. Boundary scores belong to the higher tier.
func LevelFor(score int) Level {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Medium
	case score < 80:
		return Strong
	default:
		return Unbreakable
	}
}

const (
	lengthBonus          = 20
	classBonus           = 10
	commonPatternPenalty = 30
	repeatingPenalty     = 20
	sequentialPenalty    = 20
)

var lengthThresholds = []int{8, 12, 16, 20}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
