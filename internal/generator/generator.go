// Package generator builds random passwords that cover every character class.
package generator

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Character classes drawn from when generating.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Length bounds, inclusive.
const (
	MinLength = 16
	MaxLength = 24
)

const allChars = Uppercase + Lowercase + Digits + Symbols

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Generator produces random passwords. It is not safe for concurrent use.
type Generator struct {
	rnd Source
}

// New returns a Generator backed by a ChaCha8 stream seeded from crypto/rand.
func New() *Generator {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return &Generator{rnd: rand.New(rand.NewChaCha8(seed))}
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src Source) *Generator {
	return &Generator{rnd: src}
}

// Generate returns a password of MinLength..MaxLength characters holding at
// least one uppercase letter, lowercase letter, digit and symbol. The result
// never equals previous.
func (g *Generator) Generate(previous string) string {
	for {
		password := g.generateOnce()
		if password != previous {
			return password
		}
	}
}

func (g *Generator) generateOnce() string {
	length := MinLength + g.rnd.IntN(MaxLength-MinLength+1)
	buf := make([]byte, 0, length)
	for _, class := range []string{Uppercase, Lowercase, Digits, Symbols} {
		buf = append(buf, pick(g.rnd, class))
	}
	for len(buf) < length {
		buf = append(buf, pick(g.rnd, allChars))
	}
	shuffle(g.rnd, buf)
	return string(buf)
}

func pick(rnd Source, set string) byte {
	return set[rnd.IntN(len(set))]
}

func shuffle(rnd Source, buf []byte) {
	for i := len(buf) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		buf[i], buf[j] = buf[j], buf[i]
	}
}
