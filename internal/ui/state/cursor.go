// Package state holds the pure selection and viewport arithmetic shared by
// the menu layouts.
package state

// Step moves index by one position in the direction of delta. Out of range
// moves clamp, or wrap around when wrap is set. It reports whether the index
// changed.
func Step(index, delta, count int, wrap bool) (int, bool) {
	if count <= 0 {
		return 0, false
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	old := index
	switch {
	case delta > 0:
		index++
	case delta < 0:
		index--
	default:
		return index, false
	}
	if wrap {
		index = (index%count + count) % count
	} else {
		if index < 0 {
			index = 0
		}
		if index >= count {
			index = count - 1
		}
	}
	return index, index != old
}

// MaxOffset returns the largest valid window offset.
func MaxOffset(total, view float64) float64 {
	if total <= view {
		return 0
	}
	return total - view
}

// Follow returns the window offset that keeps the span
// [itemStart, itemStart+itemSize) inside [offset, offset+view). The window
// only moves when the span would leave it, and then by the minimum amount.
// The result is clamped to [0, MaxOffset(total, view)].
func Follow(offset, itemStart, itemSize, view, total float64) float64 {
	if view <= 0 {
		return 0
	}
	if itemStart < offset {
		offset = itemStart
	}
	if end := itemStart + itemSize; end > offset+view {
		offset = end - view
	}
	if maxOffset := MaxOffset(total, view); offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Thumb returns the offset and length of a proportional scroll thumb on a
// track of the given length. A list of one item or fewer fills the track.
func Thumb(index, count, track, minLength int) (offset, length int) {
	if track <= 0 {
		return 0, 0
	}
	if count <= 1 {
		return 0, track
	}
	length = track / count
	if length < minLength {
		length = minLength
	}
	if length > track {
		length = track
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	offset = (track - length) * index / (count - 1)
	return offset, length
}

// Progress returns index/(count-1) in [0, 1]. Lists with one item or fewer
// report 1 so progress bars draw full.
func Progress(index, count int) float64 {
	if count <= 1 {
		return 1
	}
	if index <= 0 {
		return 0
	}
	if index >= count-1 {
		return 1
	}
	return float64(index) / float64(count-1)
}
