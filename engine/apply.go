// Package engine interprets a canonical rule against a word, producing
// a mangled word or a rejection/error.
package engine

import (
	"github.com/llamasoft/HashcatRulesEngine/codec"
	"github.com/llamasoft/HashcatRulesEngine/mutate"
	"github.com/llamasoft/HashcatRulesEngine/rule"
)

// Apply runs r against word and returns the mangled result. It returns
// Rejected (check with errors.Is) if one of the rule's predicates
// fires, or a *Error if the word is empty or does not fit in one block,
// or if a memory-reading operation runs before M. Apply does not check
// the rule's structure: an unknown operation byte is skipped, and it
// does not check that each operation's operands are present or that
// positional operands decode, as they always do in a Rule produced by
// rule.Parse.
func Apply(r rule.Rule, word []byte) ([]byte, error) {
	if len(word) == 0 || len(word) >= mutate.BlockSize {
		return nil, &Error{Kind: ErrorInvalidInput}
	}

	var buf [mutate.BlockSize]byte
	length := copy(buf[:], word)
	var mem register

	src := r.Bytes()
	for i := 0; i < len(src); {
		start := i
		op := src[i]
		i++

		readPositional := func() int {
			n, _ := codec.Decode(src[i])
			i++
			return n
		}
		readByte := func() byte {
			b := src[i]
			i++
			return b
		}

		switch op {
		case 'l':
			length = mutate.Lower(&buf, length)
		case 'u':
			length = mutate.Upper(&buf, length)
		case 'c':
			length = mutate.Capitalize(&buf, length)
		case 'C':
			length = mutate.InvertCapitalize(&buf, length)
		case 't':
			length = mutate.ToggleAll(&buf, length)
		case 'r':
			length = mutate.Reverse(&buf, length)
		case 'd':
			length = mutate.Duplicate(&buf, length)
		case 'f':
			length = mutate.Reflect(&buf, length)
		case '{':
			length = mutate.RotateLeft(&buf, length)
		case '}':
			length = mutate.RotateRight(&buf, length)
		case '[':
			length = mutate.DeleteFirst(&buf, length)
		case ']':
			length = mutate.DeleteLast(&buf, length)
		case 'q':
			length = mutate.DuplicateEvery(&buf, length)
		case 'k':
			length = mutate.SwapFirstTwo(&buf, length)
		case 'K':
			length = mutate.SwapLastTwo(&buf, length)
		case 'E':
			length = mutate.TitleCase(&buf, length)

		case 'T':
			length = mutate.ToggleAt(&buf, length, readPositional())
		case 'p':
			length = mutate.DuplicateN(&buf, length, readPositional())
		case 'D':
			length = mutate.DeleteAt(&buf, length, readPositional())
		case '\'':
			length = mutate.TruncateAt(&buf, length, readPositional())
		case 'z':
			length = mutate.DupFirst(&buf, length, readPositional())
		case 'Z':
			length = mutate.DupLast(&buf, length, readPositional())
		case 'y':
			length = mutate.DupFirstN(&buf, length, readPositional())
		case 'Y':
			length = mutate.DupLastN(&buf, length, readPositional())
		case 'L':
			length = mutate.ShiftLeftAt(&buf, length, readPositional())
		case 'R':
			length = mutate.ShiftRightAt(&buf, length, readPositional())
		case '+':
			length = mutate.IncrementAt(&buf, length, readPositional())
		case '-':
			length = mutate.DecrementAt(&buf, length, readPositional())
		case '.':
			length = mutate.CopyNextAt(&buf, length, readPositional())
		case ',':
			length = mutate.CopyPrevAt(&buf, length, readPositional())
		case '<':
			if n := readPositional(); length > n {
				return nil, Rejected
			}
		case '>':
			if n := readPositional(); length < n {
				return nil, Rejected
			}

		case '$':
			length = mutate.Append(&buf, length, readByte())
		case '^':
			length = mutate.Prepend(&buf, length, readByte())
		case '@':
			length = mutate.Purge(&buf, length, readByte())
		case '!':
			if containsByte(&buf, length, readByte()) {
				return nil, Rejected
			}
		case '/':
			if !containsByte(&buf, length, readByte()) {
				return nil, Rejected
			}
		case '(':
			c := readByte()
			if length == 0 || buf[0] != c {
				return nil, Rejected
			}
		case ')':
			c := readByte()
			if length == 0 || buf[length-1] != c {
				return nil, Rejected
			}

		case 's':
			a := readByte()
			b := readByte()
			length = mutate.Replace(&buf, length, a, b)

		case 'x':
			off := readPositional()
			sub := readPositional()
			length = mutate.Extract(&buf, length, off, sub)
		case 'O':
			off := readPositional()
			sub := readPositional()
			length = mutate.Omit(&buf, length, off, sub)
		case '*':
			a := readPositional()
			b := readPositional()
			length = mutate.SwapAt(&buf, length, a, b)

		case 'i':
			pos := readPositional()
			c := readByte()
			length = mutate.Insert(&buf, length, pos, c)
		case 'o':
			pos := readPositional()
			c := readByte()
			length = mutate.Overstrike(&buf, length, pos, c)
		case '=':
			pos := readPositional()
			c := readByte()
			if pos >= length || buf[pos] != c {
				return nil, Rejected
			}
		case '%':
			n := readPositional()
			c := readByte()
			if countByte(&buf, length, c) < n {
				return nil, Rejected
			}

		case 'X':
			memOff := readPositional()
			subLen := readPositional()
			strOff := readPositional()
			if !mem.set {
				return nil, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
			}
			length = mutate.InsertMulti(&buf, length, &mem.buf, mem.len, memOff, subLen, strOff)

		case '4':
			if !mem.set {
				return nil, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
			}
			length = mutate.AppendMemory(&buf, length, mem.buf[:mem.len])
		case '6':
			if !mem.set {
				return nil, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
			}
			length = mutate.PrependMemory(&buf, length, mem.buf[:mem.len])
		case 'M':
			mem.snapshot(&buf, length)
		case 'Q':
			if !mem.set {
				return nil, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
			}
			if mem.equals(&buf, length) {
				return nil, Rejected
			}
		}
	}

	out := make([]byte, length)
	copy(out, buf[:length])
	return out, nil
}

func containsByte(buf *[mutate.BlockSize]byte, length int, c byte) bool {
	return countByte(buf, length, c) > 0
}

func countByte(buf *[mutate.BlockSize]byte, length int, c byte) int {
	n := 0
	for i := 0; i < length; i++ {
		if buf[i] == c {
			n++
		}
	}
	return n
}
