package indent

import (
	"slices"

	"github.com/yaklabco/goindent/pkg/textdoc"
)

// InferTabWidth guesses the document's effective indent width in spaces by
// scanning lines backward from startLine. It collects up to two distinct
// nonzero leading-whitespace lengths and returns their GCD: two indent levels
// that are both multiples of the true unit share it as a divisor. Coprime
// samples (GCD 1) indicate noise such as misaligned comments, and fewer than
// two samples carry no signal; both cases fall back to the configured width.
func InferTabWidth(doc *textdoc.Document, startLine, fallback int) int {
	if startLine >= doc.LineCount() {
		startLine = doc.LineCount() - 1
	}

	var samples []int
	for i := startLine; i >= 0; i-- {
		ws, err := doc.LeadingWhitespace(i)
		if err != nil {
			break
		}
		length := len(ws)
		if length == 0 {
			continue
		}
		// Two different lengths are needed to guess a width.
		if len(samples) < 2 && !slices.Contains(samples, length) {
			samples = append(samples, length)
		}
		if len(samples) >= 2 {
			break
		}
	}

	if len(samples) < 2 {
		return fallback
	}
	if g := gcd(samples[0], samples[1]); g != 1 {
		return g
	}
	return fallback
}

func gcd(a, b int) int {
	if b == 0 {
		return a
	}
	return gcd(b, a%b)
}
