package strength

import (
	"fmt"
	"math"
)

// Charset sizes used for the entropy estimate. The symbol bucket is a fixed
// approximation and does not track the generator's symbol set.
const (
	lowerCharset  = 26
	upperCharset  = 26
	digitCharset  = 10
	symbolCharset = 32
)

// GuessesPerSecond is the assumed attacker throughput.
const GuessesPerSecond = 1e12

// Entropy returns floor(length * log2(charset)) for password.
func Entropy(password string) int {
	return entropyBits(runeCount(password), DetectClasses(password))
}

func entropyBits(length int, c Classes) int {
	size := charsetSize(c)
	if size == 0 || length == 0 {
		return 0
	}
	return int(math.Floor(float64(length) * math.Log2(float64(size))))
}

func charsetSize(c Classes) int {
	size := 0
	if c.Lower {
		size += lowerCharset
	}
	if c.Upper {
		size += upperCharset
	}
	if c.Digit {
		size += digitCharset
	}
	if c.Symbol {
		size += symbolCharset
	}
	return size
}

// Unit is a crack-time bucket.
type Unit int

// Crack-time buckets, fastest first.
const (
	Instant Unit = iota
	UnderMinute
	Minutes
	Hours
	Days
	Months
	Years
	Centuries
)

// CrackTime is a bucketed average-case brute-force estimate. Count is only
// meaningful for Minutes through Years.
type CrackTime struct {
	Unit  Unit
	Count int64
}

func (c CrackTime) String() string {
	switch c.Unit {
	case Instant:
		return "Instant"
	case UnderMinute:
		return "< 1 minute"
	case Minutes:
		return fmt.Sprintf("%d minutes", c.Count)
	case Hours:
		return fmt.Sprintf("%d hours", c.Count)
	case Days:
		return fmt.Sprintf("%d days", c.Count)
	case Months:
		return fmt.Sprintf("%d months", c.Count)
	case Years:
		return fmt.Sprintf("%d years", c.Count)
	default:
		return "Centuries"
	}
}

const (
	secondsPerMinute  = 60
	secondsPerHour    = 3600
	secondsPerDay     = 86400
	secondsPerMonth   = 2592000
	secondsPerYear    = 31536000
	secondsPerCentury = 3153600000
)

// EstimateCrackTime converts entropy bits into a crack-time bucket assuming
// GuessesPerSecond and an average-case search of half the keyspace.
func EstimateCrackTime(bits int) CrackTime {
	if bits <= 0 {
		return CrackTime{Unit: Instant}
	}
	seconds := math.Pow(2, float64(bits)) / (2 * GuessesPerSecond)
	return bucketSeconds(seconds)
}

func bucketSeconds(seconds float64) CrackTime {
	switch {
	case seconds < 1:
		return CrackTime{Unit: Instant}
	case seconds < secondsPerMinute:
		return CrackTime{Unit: UnderMinute}
	case seconds < secondsPerHour:
		return CrackTime{Unit: Minutes, Count: int64(seconds / secondsPerMinute)}
	case seconds < secondsPerDay:
		return CrackTime{Unit: Hours, Count: int64(seconds / secondsPerHour)}
	case seconds < secondsPerMonth:
		return CrackTime{Unit: Days, Count: int64(seconds / secondsPerDay)}
	case seconds < secondsPerYear:
		return CrackTime{Unit: Months, Count: int64(seconds / secondsPerMonth)}
	case seconds < secondsPerCentury:
		return CrackTime{Unit: Years, Count: int64(seconds / secondsPerYear)}
	default:
		return CrackTime{Unit: Centuries}
	}
}
