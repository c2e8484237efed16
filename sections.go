package bmfont

import "strings"

// The top-level structure of a font description is fixed: an `info` line,
// a `common` line, one or more `page` lines, a `chars count=N` marker, one
// or more `char` lines, and optionally a `kernings count=N` marker followed
// by `kerning` lines. splitSections validates that ordering in a single
// pass and slices out the raw lines of each repeated section; decoding the
// lines is left to the record decoders.
type sections struct {
	common   string
	pages    []string
	chars    []string
	kernings []string
}

func splitSections(content string) (*sections, error) {
	lines := descriptionLines(content)
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "info") {
		return nil, &MissingSectionError{Section: "info"}
	}
	if len(lines) < 2 || !strings.HasPrefix(lines[1], "common") {
		return nil, &MissingSectionError{Section: "common"}
	}
	s := &sections{common: lines[1]}
	rest := lines[2:]
	for len(rest) > 0 && !strings.HasPrefix(rest[0], "page") {
		rest = rest[1:]
	}
	s.pages, rest = takeRun(rest, "page")
	if len(s.pages) == 0 {
		return nil, &MissingSectionError{Section: "page"}
	}
	if len(rest) > 0 { // `chars count=N` marker, content not validated
		rest = rest[1:]
	}
	s.chars, rest = takeRun(rest, "char")
	if len(s.chars) == 0 {
		return nil, &MissingSectionError{Section: "char"}
	}
	if len(rest) > 0 { // optional `kernings count=N` marker
		rest = rest[1:]
		s.kernings, _ = takeRun(rest, "kerning")
	}
	return s, nil
}

// takeRun splits off the maximal leading run of lines starting with prefix.
func takeRun(lines []string, prefix string) (run, rest []string) {
	n := 0
	for n < len(lines) && strings.HasPrefix(lines[n], prefix) {
		n++
	}
	return lines[:n], lines[n:]
}

// descriptionLines splits content into lines, terminated by either `\n` or
// `\r\n`. A trailing line terminator produces no empty final line.
func descriptionLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
