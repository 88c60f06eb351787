package engine

import (
	"github.com/llamasoft/HashcatRulesEngine/codec"
	"github.com/llamasoft/HashcatRulesEngine/mutate"
	"github.com/llamasoft/HashcatRulesEngine/rule"
)

// Step is a snapshot taken after one operation of a rule has run.
type Step struct {
	Op        byte
	Operands  []byte
	Offset    int
	Word      []byte
	MemorySet bool
	Memory    []byte
	Err       error
}

// Steps runs r one operation at a time: each call to Next executes the
// next operation against the buffer state left by the previous one and
// returns the resulting Step. Next returns false once the rule is
// exhausted or a Step carries a terminal Err (Rejected or *Error).
//
// The interactive debugger drives Steps, pausing between calls to Next
// instead of running the whole rule at once. Apply does not use Steps;
// it carries its own copy of the same dispatch.
type Steps struct {
	src    []byte
	cursor int
	buf    [mutate.BlockSize]byte
	length int
	mem    register
	done   bool
}

// NewSteps begins stepping r against word. It returns an error
// immediately if word does not fit in one block.
func NewSteps(r rule.Rule, word []byte) (*Steps, error) {
	if len(word) == 0 || len(word) >= mutate.BlockSize {
		return nil, &Error{Kind: ErrorInvalidInput}
	}
	s := &Steps{src: r.Bytes()}
	s.length = copy(s.buf[:], word)
	return s, nil
}

// Done reports whether the rule is exhausted or has terminated early.
func (s *Steps) Done() bool {
	return s.done || s.cursor >= len(s.src)
}

// Next executes the next operation and returns the Step describing
// its effect. Calling Next after Done reports true returns false.
func (s *Steps) Next() (Step, bool) {
	if s.Done() {
		return Step{}, false
	}

	start := s.cursor
	op := s.src[s.cursor]
	s.cursor++

	var operands []byte
	if n, ok := rule.OperandCount(op); ok {
		operands = append(operands, s.src[s.cursor:s.cursor+n]...)
	}

	length, err := s.dispatch(op, start)
	s.length = length

	step := Step{
		Op:        op,
		Operands:  operands,
		Offset:    start,
		Word:      append([]byte(nil), s.buf[:s.length]...),
		MemorySet: s.mem.set,
		Err:       err,
	}
	if s.mem.set {
		step.Memory = append([]byte(nil), s.mem.buf[:s.mem.len]...)
	}
	if err != nil {
		s.done = true
	}
	return step, true
}

// dispatch executes a single operation, consuming its operands from
// s.src starting at s.cursor (which Next has already advanced past
// the op byte), and returns the new buffer length. start is the op
// byte's offset, reported in any *Error.
func (s *Steps) dispatch(op byte, start int) (int, error) {
	readPositional := func() int {
		n, _ := codec.Decode(s.src[s.cursor])
		s.cursor++
		return n
	}
	readByte := func() byte {
		b := s.src[s.cursor]
		s.cursor++
		return b
	}

	length := s.length
	buf := &s.buf

	switch op {
	case 'l':
		return mutate.Lower(buf, length), nil
	case 'u':
		return mutate.Upper(buf, length), nil
	case 'c':
		return mutate.Capitalize(buf, length), nil
	case 'C':
		return mutate.InvertCapitalize(buf, length), nil
	case 't':
		return mutate.ToggleAll(buf, length), nil
	case 'r':
		return mutate.Reverse(buf, length), nil
	case 'd':
		return mutate.Duplicate(buf, length), nil
	case 'f':
		return mutate.Reflect(buf, length), nil
	case '{':
		return mutate.RotateLeft(buf, length), nil
	case '}':
		return mutate.RotateRight(buf, length), nil
	case '[':
		return mutate.DeleteFirst(buf, length), nil
	case ']':
		return mutate.DeleteLast(buf, length), nil
	case 'q':
		return mutate.DuplicateEvery(buf, length), nil
	case 'k':
		return mutate.SwapFirstTwo(buf, length), nil
	case 'K':
		return mutate.SwapLastTwo(buf, length), nil
	case 'E':
		return mutate.TitleCase(buf, length), nil

	case 'T':
		return mutate.ToggleAt(buf, length, readPositional()), nil
	case 'p':
		return mutate.DuplicateN(buf, length, readPositional()), nil
	case 'D':
		return mutate.DeleteAt(buf, length, readPositional()), nil
	case '\'':
		return mutate.TruncateAt(buf, length, readPositional()), nil
	case 'z':
		return mutate.DupFirst(buf, length, readPositional()), nil
	case 'Z':
		return mutate.DupLast(buf, length, readPositional()), nil
	case 'y':
		return mutate.DupFirstN(buf, length, readPositional()), nil
	case 'Y':
		return mutate.DupLastN(buf, length, readPositional()), nil
	case 'L':
		return mutate.ShiftLeftAt(buf, length, readPositional()), nil
	case 'R':
		return mutate.ShiftRightAt(buf, length, readPositional()), nil
	case '+':
		return mutate.IncrementAt(buf, length, readPositional()), nil
	case '-':
		return mutate.DecrementAt(buf, length, readPositional()), nil
	case '.':
		return mutate.CopyNextAt(buf, length, readPositional()), nil
	case ',':
		return mutate.CopyPrevAt(buf, length, readPositional()), nil
	case '<':
		if n := readPositional(); length > n {
			return length, Rejected
		}
		return length, nil
	case '>':
		if n := readPositional(); length < n {
			return length, Rejected
		}
		return length, nil

	case '$':
		return mutate.Append(buf, length, readByte()), nil
	case '^':
		return mutate.Prepend(buf, length, readByte()), nil
	case '@':
		return mutate.Purge(buf, length, readByte()), nil
	case '!':
		if containsByte(buf, length, readByte()) {
			return length, Rejected
		}
		return length, nil
	case '/':
		if !containsByte(buf, length, readByte()) {
			return length, Rejected
		}
		return length, nil
	case '(':
		c := readByte()
		if length == 0 || buf[0] != c {
			return length, Rejected
		}
		return length, nil
	case ')':
		c := readByte()
		if length == 0 || buf[length-1] != c {
			return length, Rejected
		}
		return length, nil

	case 's':
		a := readByte()
		b := readByte()
		return mutate.Replace(buf, length, a, b), nil

	case 'x':
		off := readPositional()
		sub := readPositional()
		return mutate.Extract(buf, length, off, sub), nil
	case 'O':
		off := readPositional()
		sub := readPositional()
		return mutate.Omit(buf, length, off, sub), nil
	case '*':
		a := readPositional()
		b := readPositional()
		return mutate.SwapAt(buf, length, a, b), nil

	case 'i':
		pos := readPositional()
		c := readByte()
		return mutate.Insert(buf, length, pos, c), nil
	case 'o':
		pos := readPositional()
		c := readByte()
		return mutate.Overstrike(buf, length, pos, c), nil
	case '=':
		pos := readPositional()
		c := readByte()
		if pos >= length || buf[pos] != c {
			return length, Rejected
		}
		return length, nil
	case '%':
		n := readPositional()
		c := readByte()
		if countByte(buf, length, c) < n {
			return length, Rejected
		}
		return length, nil

	case 'X':
		memOff := readPositional()
		subLen := readPositional()
		strOff := readPositional()
		if !s.mem.set {
			return length, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
		}
		return mutate.InsertMulti(buf, length, &s.mem.buf, s.mem.len, memOff, subLen, strOff), nil

	case '4':
		if !s.mem.set {
			return length, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
		}
		return mutate.AppendMemory(buf, length, s.mem.buf[:s.mem.len]), nil
	case '6':
		if !s.mem.set {
			return length, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
		}
		return mutate.PrependMemory(buf, length, s.mem.buf[:s.mem.len]), nil
	case 'M':
		s.mem.snapshot(buf, length)
		return length, nil
	case 'Q':
		if !s.mem.set {
			return length, &Error{Kind: ErrorMemoryError, Op: op, Offset: start}
		}
		if s.mem.equals(buf, length) {
			return length, Rejected
		}
		return length, nil
	}

	return length, nil
}
