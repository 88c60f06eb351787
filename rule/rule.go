// Package rule parses hashcat/John-the-Ripper rule text into its
// canonical byte form: whitespace and ':' no-ops stripped, operand
// bytes validated but kept verbatim for the engine to decode again at
// apply time.
package rule

import (
	"strings"

	"github.com/llamasoft/HashcatRulesEngine/codec"
)

// Rule is a canonicalized rule: operation bytes interleaved with their
// operand bytes, with all whitespace and ':' no-ops removed.
type Rule []byte

// String returns the canonical rule text.
func (r Rule) String() string {
	return string(r)
}

// Bytes returns the canonical rule bytes. The returned slice aliases
// the Rule's storage and must not be mutated.
func (r Rule) Bytes() []byte {
	return r
}

func isSkippable(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == ':'
}

// isMemoryRead reports whether op reads the memory register, requiring
// a prior 'M' in the same rule.
func isMemoryRead(op byte) bool {
	return op == '4' || op == '6' || op == 'Q' || op == 'X'
}

// Parse canonicalizes rule source text, validating every operation's
// arity and every positional operand's encoding.
func Parse(text string) (Rule, error) {
	src := []byte(text)
	out := make([]byte, 0, len(src))
	memSeen := false

	for i := 0; i < len(src); i++ {
		b := src[i]
		if isSkippable(b) {
			continue
		}

		arity, ok := opArity[b]
		if !ok {
			return nil, newError(ErrorUnknownRuleOp, b, i, nil)
		}

		if isMemoryRead(b) && !memSeen {
			return nil, newError(ErrorMemoryError, b, i, nil)
		}
		if b == 'M' {
			memSeen = true
		}

		n := arity.operandCount()
		operands := make([]byte, 0, n)
		for k := 0; k < n; k++ {
			i++
			for i < len(src) && isSkippable(src[i]) {
				i++
			}
			if i >= len(src) {
				return nil, newError(ErrorPrematureEndOfRule, b, i, nil)
			}
			if isPositionalOperand(arity, k) {
				if _, err := codec.Decode(src[i]); err != nil {
					return nil, newError(ErrorInvalidPositional, b, i, err)
				}
			}
			operands = append(operands, src[i])
		}

		out = append(out, b)
		out = append(out, operands...)
	}

	return Rule(out), nil
}

// ParseLine parses one line of a rule file, stripping a trailing '#'
// comment first. A line that is empty or comment-only yields a nil
// Rule and nil error; the caller should skip it rather than apply it.
func ParseLine(line string) (Rule, error) {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	return Parse(line)
}
