package outline

import "errors"

// ErrPositionOutOfRange is returned for coordinates that do not address an item.
var ErrPositionOutOfRange = errors.New("position out of range")

// Section is a run of items under an optional header.
type Section struct {
	Header string   // Empty when the section has no header
	Items  []string // Item labels in source order
}

// Outline is the parsed form of one catalog text resource.
type Outline struct {
	ID       string
	Title    string
	Sections []Section
}

// Total is the number of items across all sections.
func (o Outline) Total() int {
	n := 0
	for _, s := range o.Sections {
		n += len(s.Items)
	}
	return n
}

// Position returns the flattened, zero-based position of item ii in section si.
func (o Outline) Position(si, ii int) (int, error) {
	if si < 0 || si >= len(o.Sections) {
		return 0, ErrPositionOutOfRange
	}
	if ii < 0 || ii >= len(o.Sections[si].Items) {
		return 0, ErrPositionOutOfRange
	}
	p := ii
	for _, s := range o.Sections[:si] {
		p += len(s.Items)
	}
	return p, nil
}

// Locate is the inverse of Position.
func (o Outline) Locate(p int) (si, ii int, ok bool) {
	if p < 0 {
		return 0, 0, false
	}
	for si, s := range o.Sections {
		if p < len(s.Items) {
			return si, p, true
		}
		p -= len(s.Items)
	}
	return 0, 0, false
}

// Split regroups a flattened per-item slice by section. Missing trailing
// values read as false.
func (o Outline) Split(flat []bool) [][]bool {
	out := make([][]bool, len(o.Sections))
	p := 0
	for si, s := range o.Sections {
		row := make([]bool, len(s.Items))
		for ii := range row {
			if p < len(flat) {
				row[ii] = flat[p]
			}
			p++
		}
		out[si] = row
	}
	return out
}
