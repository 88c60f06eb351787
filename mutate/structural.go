package mutate

// Reverse reverses buf[:length] in place. Needs no scratch buffer
// beyond the two cursors.
func Reverse(buf *[BlockSize]byte, length int) int {
	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return length
}

// Duplicate appends a copy of buf[:length] to itself.
func Duplicate(buf *[BlockSize]byte, length int) int {
	newLen := length * 2
	if !fits(newLen) {
		return length
	}
	copy(buf[length:newLen], buf[:length])
	return newLen
}

// DuplicateN appends `times` additional copies of the original
// buf[:length], so the result has times+1 copies total.
func DuplicateN(buf *[BlockSize]byte, length int, times int) int {
	if times <= 0 {
		return length
	}
	newLen := length * (times + 1)
	if !fits(newLen) {
		return length
	}
	for i := 1; i <= times; i++ {
		copy(buf[length*i:length*(i+1)], buf[:length])
	}
	return newLen
}

// Reflect appends the reverse of buf[:length] to itself.
func Reflect(buf *[BlockSize]byte, length int) int {
	newLen := length * 2
	if !fits(newLen) {
		return length
	}
	for i := 0; i < length; i++ {
		buf[newLen-1-i] = buf[i]
	}
	return newLen
}

// RotateLeft moves the first byte to the end.
func RotateLeft(buf *[BlockSize]byte, length int) int {
	if length < 2 {
		return length
	}
	first := buf[0]
	copy(buf[0:length-1], buf[1:length])
	buf[length-1] = first
	return length
}

// RotateRight moves the last byte to the front.
func RotateRight(buf *[BlockSize]byte, length int) int {
	if length < 2 {
		return length
	}
	last := buf[length-1]
	copy(buf[1:length], buf[0:length-1])
	buf[0] = last
	return length
}

// DeleteFirst removes buf[0].
func DeleteFirst(buf *[BlockSize]byte, length int) int {
	if length < 1 {
		return length
	}
	copy(buf[0:length-1], buf[1:length])
	return length - 1
}

// DeleteLast removes buf[length-1].
func DeleteLast(buf *[BlockSize]byte, length int) int {
	if length < 1 {
		return length
	}
	return length - 1
}

// SwapFirstTwo exchanges buf[0] and buf[1].
func SwapFirstTwo(buf *[BlockSize]byte, length int) int {
	if length < 2 {
		return length
	}
	buf[0], buf[1] = buf[1], buf[0]
	return length
}

// SwapLastTwo exchanges the last two bytes.
func SwapLastTwo(buf *[BlockSize]byte, length int) int {
	if length < 2 {
		return length
	}
	buf[length-1], buf[length-2] = buf[length-2], buf[length-1]
	return length
}

// DuplicateEvery turns "abc" into "aabbcc".
func DuplicateEvery(buf *[BlockSize]byte, length int) int {
	newLen := length * 2
	if !fits(newLen) {
		return length
	}
	for i := length - 1; i >= 0; i-- {
		buf[2*i+1] = buf[i]
		buf[2*i] = buf[i]
	}
	return newLen
}
