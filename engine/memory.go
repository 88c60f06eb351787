package engine

import "github.com/llamasoft/HashcatRulesEngine/mutate"

// register is the single per-call memory slot (M/Q/4/6/X). It is
// tri-state: unset until the first M, then holds a snapshot of the
// word at the time M ran.
type register struct {
	buf [mutate.BlockSize]byte
	len int
	set bool
}

func (r *register) snapshot(buf *[mutate.BlockSize]byte, length int) {
	copy(r.buf[:length], buf[:length])
	r.len = length
	r.set = true
}

func (r *register) equals(buf *[mutate.BlockSize]byte, length int) bool {
	if !r.set || r.len != length {
		return false
	}
	for i := 0; i < length; i++ {
		if r.buf[i] != buf[i] {
			return false
		}
	}
	return true
}
