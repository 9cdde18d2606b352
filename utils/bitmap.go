package utils

// Initially inspired from https://github.com/kelindar/bitmap Thank you for using the MIT license!
// Trimmed to what the trial sweep needs: a fixed-size set of dense vertex indexes.

type Bitmap []uint64

// NewBitmap returns a zeroed bitmap able to hold bits [0, size).
func NewBitmap(size uint32) Bitmap {
	return make(Bitmap, (uint64(size)+63)>>6)
}

// Inline-able, returns false if out of range.
func (bitmap Bitmap) QuickSet(x uint32) bool {
	idx := int(x >> 6)
	if idx >= len(bitmap) {
		return false
	}
	bitmap[idx] |= 1 << (x % 64)
	return true
}

// IsSet reports whether bit x is set. Out of range is unset.
func (bitmap Bitmap) IsSet(x uint32) bool {
	idx := int(x >> 6)
	if idx >= len(bitmap) {
		return false
	}
	return bitmap[idx]&(1<<(x%64)) != 0
}

// Zeros all bits in the bitmap.
func (bitmap Bitmap) Zeroes() {
	for i := range bitmap {
		bitmap[i] = 0
	}
}
