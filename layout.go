package bmfont

import (
	"iter"
	"strings"
	"unicode/utf16"
)

// CharPosition locates one laid-out character: its rectangle within the
// source texture page and its rectangle in screen space. Values are
// independent copies with no reference back to the Font or the input text.
type CharPosition struct {
	PageRect   Rect
	ScreenRect Rect
	PageIndex  uint32
}

// Parse computes the position of every resolvable character of text.
//
// Lines are separated by '\n'; a final unterminated line counts, an empty
// text produces an empty sequence. Within a line, each character advances
// a running pen position by its glyph's xadvance, adjusted by the kerning
// pair with the immediately preceding glyph, if one is declared.
//
// In strict mode, Parse first scans the whole text and refuses it with a
// *StringParseError if any character is missing from the font or not
// representable as a single UTF-16 code unit. In permissive mode such
// characters are skipped and contribute neither output nor pen advance.
//
// The returned sequence is lazy: positions are produced on demand, a
// consumer that stops ranging causes no further layout work, and ranging
// again restarts the layout from the beginning. Parse performs no I/O and
// never mutates the Font, so concurrent calls are safe.
func (f *Font) Parse(text string) (iter.Seq[CharPosition], error) {
	if f.mode == Strict {
		if err := f.classify(text); err != nil {
			tracer().Infof("text not representable in bitmap font: %v", err)
			return nil, err
		}
	}
	return f.layout(text), nil
}

// classify scans text for characters the font cannot resolve. Characters
// needing a surrogate pair are unsupported by the format; characters with
// no glyph of matching id are missing from this font. Newlines are neither.
func (f *Font) classify(text string) error {
	var missing, unsupported []rune
	for _, r := range text {
		if r == '\n' {
			continue
		}
		if utf16.RuneLen(r) != 1 {
			unsupported = append(unsupported, r)
			continue
		}
		if _, ok := f.glyphByID(uint32(r)); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 || len(unsupported) > 0 {
		return &StringParseError{
			MissingCharacters:     missing,
			UnsupportedCharacters: unsupported,
		}
	}
	return nil
}

// layout is the demand-driven layout pass over text.
func (f *Font) layout(text string) iter.Seq[CharPosition] {
	return func(yield func(CharPosition) bool) {
		y := int32(0)
		for _, line := range strings.Split(text, "\n") {
			x := int32(0)
			var pending []kerningValue // kerning candidates of the preceding glyph
			for _, r := range line {
				if utf16.RuneLen(r) != 1 {
					continue
				}
				g, ok := f.glyphByID(uint32(r))
				if !ok {
					continue
				}
				var kern int32
				for _, k := range pending {
					if k.second == g.id {
						kern = k.amount
						break
					}
				}
				var screenY int32
				switch f.orient {
				case BottomToTop:
					screenY = y + int32(f.baseHeight) - g.yoffset - int32(g.height)
				case TopToBottom:
					screenY = y + g.yoffset
				}
				pos := CharPosition{
					PageRect: Rect{
						X:     int32(g.x),
						Y:     int32(g.y),
						Width: g.width, Height: g.height,
					},
					ScreenRect: Rect{
						X:     x + g.xoffset + kern,
						Y:     screenY,
						Width: g.width, Height: g.height,
					},
					PageIndex: g.pageIndex,
				}
				if !yield(pos) {
					return
				}
				x += g.xadvance + kern
				pending = f.findKerningValues(g.id)
			}
			switch f.orient {
			case BottomToTop:
				y -= int32(f.lineHeight)
			case TopToBottom:
				y += int32(f.lineHeight)
			}
		}
	}
}
