package outline

import "strings"

const (
	headerMarker = "#"
	itemMarker   = "-"
)

// Parse turns a plain-text resource into an Outline. It never fails: input
// it does not understand becomes looser sections.
//
// The first non-empty line is the title. After it, "#" lines open a headed
// section, "-" lines add an item to the current section, and any other line
// opens a section headed by the whole line.
func Parse(id, raw string) Outline {
	o := Outline{ID: id, Title: id}

	titled := false
	current := Section{}
	flush := func() {
		if current.Header != "" || len(current.Items) > 0 {
			o.Sections = append(o.Sections, current)
		}
	}

	// TrimSpace also drops the '\r' of CRLF input.
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !titled {
			titled = true
			if strings.HasPrefix(line, headerMarker) {
				if title := stripHeader(line); title != "" {
					o.Title = title
				}
			} else {
				o.Title = line
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, headerMarker):
			flush()
			current = Section{Header: stripHeader(line)}
		case strings.HasPrefix(line, itemMarker):
			current.Items = append(current.Items, strings.TrimSpace(strings.TrimPrefix(line, itemMarker)))
		default:
			flush()
			current = Section{Header: line}
		}
	}
	flush()

	return o
}

// stripHeader removes the run of leading '#' and the whitespace after it.
func stripHeader(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, headerMarker))
}
