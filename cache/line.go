package cache

// A Line is a single storage slot of a set. It carries the tag of the
// memory block it holds, whether that data is live, and whether it was
// modified since it was filled.
type Line struct {
	Tag   uint64
	Valid bool
	Dirty bool
}

// Fill makes the line hold the block identified by tag. The line becomes
// valid and clean.
func (l *Line) Fill(tag uint64) {
	l.Tag = tag
	l.Valid = true
	l.Dirty = false
}

// MarkDirty records that the line's data was modified. It returns
// ErrInvalidLine if the line holds no valid data.
func (l *Line) MarkDirty() error {
	if !l.Valid {
		return ErrInvalidLine
	}

	l.Dirty = true

	return nil
}

// Invalidate returns the line to its empty state.
func (l *Line) Invalidate() {
	l.Tag = 0
	l.Valid = false
	l.Dirty = false
}

// Matches reports whether the line holds valid data for tag.
func (l *Line) Matches(tag uint64) bool {
	return l.Valid && l.Tag == tag
}
