package strength

// Warning identifies an advisory about a password. Warnings sort by priority.
type Warning int

// Warnings in the order they are reported.
const (
	WarnTooShort Warning = iota
	WarnNoUpper
	WarnNoLower
	WarnNoDigit
	WarnNoSymbol
	WarnCommonPattern
	WarnRepeatingChars
	WarnSequentialChars
)

// MinRecommendedLength is the length below which WarnTooShort fires.
const MinRecommendedLength = 12

var warningMessages = [...]string{
	WarnTooShort:        "Password should be at least 12 characters long",
	WarnNoUpper:         "Add uppercase letters for better security",
	WarnNoLower:         "Add lowercase letters for better security",
	WarnNoDigit:         "Include numbers to increase strength",
	WarnNoSymbol:        "Add special characters for maximum security",
	WarnCommonPattern:   "Avoid common patterns and dictionary words",
	WarnRepeatingChars:  "Avoid repeating characters",
	WarnSequentialChars: "Avoid sequential characters",
}

func (w Warning) String() string {
	if w < 0 || int(w) >= len(warningMessages) {
		return "Unknown warning"
	}
	return warningMessages[w]
}

// Warnings lists every advisory that applies to password, in priority order.
// The empty string only gets the length advisory.
func Warnings(password string) []Warning {
	if password == "" {
		return []Warning{WarnTooShort}
	}
	classes := DetectClasses(password)
	var out []Warning
	if runeCount(password) < MinRecommendedLength {
		out = append(out, WarnTooShort)
	}
	if !classes.Upper {
		out = append(out, WarnNoUpper)
	}
	if !classes.Lower {
		out = append(out, WarnNoLower)
	}
	if !classes.Digit {
		out = append(out, WarnNoDigit)
	}
	if !classes.Symbol {
		out = append(out, WarnNoSymbol)
	}
	if HasCommonPattern(password) {
		out = append(out, WarnCommonPattern)
	}
	if HasRepeatingRun(password) {
		out = append(out, WarnRepeatingChars)
	}
	if HasSequentialRun(password) {
		out = append(out, WarnSequentialChars)
	}
	return out
}
