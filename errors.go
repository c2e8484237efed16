package bmfont

import (
	"fmt"
	"strings"
)

// The font-description grammar is small but strict. Format errors carry
// enough context (section, component, offending value) to pinpoint the bad
// line; they are fatal to Font construction and never recovered internally.
// All of them are reachable through the error chain with errors.As.

// MissingSectionError reports that a mandatory section of the font
// description is absent or out of order.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("parse error: missing section = %s", e.Section)
}

// MissingComponentError reports that a section line ended before a required
// component was found.
type MissingComponentError struct {
	Section   string
	Component string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("parse error: missing component = %s in section = %s",
		e.Component, e.Section)
}

// InvalidComponentError reports a component at the wrong position, i.e. a
// key that does not match the component expected at that position.
type InvalidComponentError struct {
	Section  string
	Expected string
	Actual   string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("parse error: invalid component = %s in section = %s, expected = %s",
		e.Actual, e.Section, e.Expected)
}

// InvalidComponentValueError reports a component whose value half is
// missing or fails to convert to the component's type.
type InvalidComponentValueError struct {
	Section   string
	Component string
	Value     string
}

func (e *InvalidComponentValueError) Error() string {
	return fmt.Sprintf("parse error: invalid component value = %q for component = %s in section = %s",
		e.Value, e.Component, e.Section)
}

// StringParseError reports the characters of a layout input which the font
// cannot resolve. It is produced by Parse in strict mode only and is a
// data-classification report: the caller may drop or replace the offending
// characters and retry.
//
// Both slices preserve first-encounter order and retain duplicates.
type StringParseError struct {
	// MissingCharacters lists characters with no matching glyph id.
	MissingCharacters []rune
	// UnsupportedCharacters lists characters which need more than one
	// UTF-16 code unit and can never be present in this font format.
	UnsupportedCharacters []rune
}

func (e *StringParseError) Error() string {
	var b strings.Builder
	b.WriteString("unparsable characters:")
	if len(e.MissingCharacters) > 0 {
		fmt.Fprintf(&b, " missing = %q", e.MissingCharacters)
	}
	if len(e.UnsupportedCharacters) > 0 {
		fmt.Fprintf(&b, " unsupported = %q", e.UnsupportedCharacters)
	}
	return b.String()
}
