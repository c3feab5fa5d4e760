package checklist

import "math"

// DeriveChecked rebuilds the checked set for an outline of total items from
// the stored index idx: position p is checked iff p <= idx.
func DeriveChecked(total, idx int) Set {
	if total < 0 {
		total = 0
	}
	s := make(Set, total)
	for p := 0; p < total && p <= idx; p++ {
		s[p] = true
	}
	return s
}

// DeriveIndex returns the index to store after toggling position p.
// keep is false when the record should be deleted instead.
func DeriveIndex(p int, wasChecked bool) (newIndex int, keep bool) {
	if !wasChecked {
		return p, true
	}
	if p == 0 {
		return 0, false
	}
	return p - 1, true
}

// Toggle flips position p. Turning an item on checks everything up to it;
// turning it off clears it and everything after it.
func (s Set) Toggle(p int) (Set, int, bool) {
	out := make(Set, len(s))
	copy(out, s)
	if p < 0 || p >= len(out) {
		idx, ok := out.Index()
		return out, idx, ok
	}

	wasChecked := out[p]
	if wasChecked {
		for i := p; i < len(out); i++ {
			out[i] = false
		}
	} else {
		for i := 0; i <= p; i++ {
			out[i] = true
		}
	}

	idx, keep := DeriveIndex(p, wasChecked)
	return out, idx, keep
}

// Index returns the last checked position of a prefix set. ok is false when
// nothing is checked.
func (s Set) Index() (int, bool) {
	idx := -1
	for p, v := range s {
		if v {
			idx = p
		}
	}
	return idx, idx >= 0
}

// Count is the number of checked positions.
func (s Set) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// IsPrefix reports whether checked positions form an unbroken run from 0.
func (s Set) IsPrefix() bool {
	seenUnchecked := false
	for _, v := range s {
		if !v {
			seenUnchecked = true
			continue
		}
		if seenUnchecked {
			return false
		}
	}
	return true
}

// Percent is round((idx+1)/total*100), clamped to [0,100]. It is 0 when
// there is no record or the outline is empty.
func Percent(idx int, found bool, total int) int {
	if !found || total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(idx+1) / float64(total) * 100))
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	}
	return pct
}
