package links

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet is base62; every generated code is drawn from it.
const CodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeGenerator produces candidate codes. It must not consult the store.
type CodeGenerator interface {
	Generate() (string, error)
}

type randomCodeGenerator struct {
	length int
}

// NewRandomCodeGenerator returns a crypto/rand backed generator of fixed length.
func NewRandomCodeGenerator(length int) CodeGenerator {
	return randomCodeGenerator{length: length}
}

func (g randomCodeGenerator) Generate() (string, error) {
	alphaLen := len(CodeAlphabet)
	// rejection sampling keeps the distribution uniform
	cutoff := (256 / alphaLen) * alphaLen

	out := make([]byte, g.length)
	filled := 0

	var buf [32]byte
	for filled < g.length {
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("rand read: %w", err)
		}

		for _, b := range buf {
			if filled >= g.length {
				break
			}

			if int(b) >= cutoff {
				continue
			}

			out[filled] = CodeAlphabet[int(b)%alphaLen]
			filled++
		}
	}

	return string(out), nil
}
