package bmfont

import (
	"fmt"
	"strconv"
	"strings"
)

// Every record of the description format is a section tag followed by an
// ordered list of `component=value` tokens. extractComponent is the single
// point of truth for decoding one such token; all record decoders go
// through it, so they share one error taxonomy.
func extractComponent[T any](token string, present bool, section string, component string,
	convert func(string) (T, error)) (T, error) {
	//
	var none T
	if !present {
		return none, &MissingComponentError{Section: section, Component: component}
	}
	key, value, hasValue := strings.Cut(token, "=")
	if !hasValue {
		return none, &InvalidComponentValueError{Section: section, Component: component, Value: ""}
	}
	if key != component {
		return none, &InvalidComponentError{Section: section, Expected: component, Actual: key}
	}
	v, err := convert(value)
	if err != nil {
		return none, &InvalidComponentValueError{Section: section, Component: component, Value: value}
	}
	return v, nil
}

func asU32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint32(n), err
}

func asI32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}

func asString(s string) (string, error) {
	return s, nil
}

// components walks the whitespace-separated tokens of one section line.
// Extraction errors are sticky: after the first failure every further
// extraction is a no-op and err holds that first failure.
type components struct {
	section string
	tokens  []string
	err     error
}

// splitComponents tokenizes line and drops the leading section tag.
func splitComponents(section, line string) *components {
	tokens := strings.Fields(line)
	if len(tokens) > 0 {
		tokens = tokens[1:]
	}
	return &components{section: section, tokens: tokens}
}

// recordComponents is splitComponents for record decoders: the first token
// of line must equal the record's section tag. Handing a decoder a line of
// a different section is a caller bug, not an input error.
func recordComponents(section, line string) *components {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		panic(fmt.Sprintf("bmfont: %s record created from empty line", section))
	}
	if tokens[0] != section {
		panic(fmt.Sprintf("bmfont: %s record created from %q line", section, tokens[0]))
	}
	return &components{section: section, tokens: tokens[1:]}
}

func (c *components) next() (string, bool) {
	if len(c.tokens) == 0 {
		return "", false
	}
	token := c.tokens[0]
	c.tokens = c.tokens[1:]
	return token, true
}

func (c *components) u32(component string) uint32 {
	if c.err != nil {
		return 0
	}
	token, ok := c.next()
	v, err := extractComponent(token, ok, c.section, component, asU32)
	c.err = err
	return v
}

func (c *components) i32(component string) int32 {
	if c.err != nil {
		return 0
	}
	token, ok := c.next()
	v, err := extractComponent(token, ok, c.section, component, asI32)
	c.err = err
	return v
}

func (c *components) str(component string) string {
	if c.err != nil {
		return ""
	}
	token, ok := c.next()
	v, err := extractComponent(token, ok, c.section, component, asString)
	c.err = err
	return v
}
