package bmfont

import (
	"io"
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/bmfont/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Orientation selects the vertical-axis convention of screen space.
// It is fixed when a Font is created and governs every layout call on
// that Font.
type Orientation int8

const (
	// BottomToTop lets screen y grow upwards, as in OpenGL-style
	// coordinate systems. Successive lines get decreasing y.
	BottomToTop Orientation = iota
	// TopToBottom lets screen y grow downwards, as in raster-style
	// coordinate systems. Successive lines get increasing y.
	TopToBottom
)

// ParseMode selects how Parse treats characters which the font cannot
// resolve to a glyph.
type ParseMode int8

const (
	// Strict lets Parse refuse input containing unresolvable characters,
	// reporting all of them upfront with a *StringParseError.
	Strict ParseMode = iota
	// Permissive lets Parse silently skip unresolvable characters.
	Permissive
)

// Font is a decoded bitmap-font description.
//
// A Font is immutable from the moment New returns, thus any number of
// goroutines may run layout calls against it concurrently.
type Font struct {
	baseHeight uint32
	lineHeight uint32
	glyphs     *treemap.Map // glyph id ↦ glyph, ascending ids
	kernings   *treemap.Map // first glyph id ↦ []kerningValue, file order
	pages      []page
	orient     Orientation
	mode       ParseMode
}

// New reads a complete font description from source and decodes it.
// Construction is all-or-nothing: on error no partial Font is returned.
//
// The source is expected to be UTF-8 text; a leading byte-order mark, as
// emitted by some font generators, is tolerated. Format errors wrap the
// typed parse errors of this package (see errors.As), I/O errors wrap the
// reader's error.
func New(source io.Reader, orient Orientation, mode ParseMode) (*Font, error) {
	content, err := io.ReadAll(transform.NewReader(source, unicode.UTF8BOM.NewDecoder()))
	if err != nil {
		return nil, core.WrapError(err, core.ECONNECTION, "cannot read font description")
	}
	f, err := decodeDescription(string(content), orient, mode)
	if err != nil {
		tracer().Errorf("bitmap font description: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "bitmap font description format")
	}
	return f, nil
}

// decodeDescription runs the decode pipeline: section split, common
// components, record decoding, ordered-table build.
func decodeDescription(content string, orient Orientation, mode ParseMode) (*Font, error) {
	secs, err := splitSections(content)
	if err != nil {
		return nil, err
	}
	f := &Font{
		glyphs:   treemap.NewWith(utils.UInt32Comparator),
		kernings: treemap.NewWith(utils.UInt32Comparator),
		orient:   orient,
		mode:     mode,
	}
	c := splitComponents("common", secs.common)
	f.lineHeight = c.u32("lineHeight")
	f.baseHeight = c.u32("base")
	if c.err != nil {
		return nil, c.err
	}
	for _, line := range secs.pages {
		p, err := decodePage(line)
		if err != nil {
			return nil, err
		}
		f.pages = append(f.pages, p)
	}
	for _, line := range secs.chars {
		g, err := decodeGlyph(line)
		if err != nil {
			return nil, err
		}
		if _, dup := f.glyphs.Get(g.id); !dup { // first declaration wins
			f.glyphs.Put(g.id, g)
		}
	}
	for _, line := range secs.kernings {
		k, err := decodeKerning(line)
		if err != nil {
			return nil, err
		}
		if run, ok := f.kernings.Get(k.first); ok {
			f.kernings.Put(k.first, append(run.([]kerningValue), k))
		} else {
			f.kernings.Put(k.first, []kerningValue{k})
		}
	}
	tracer().Debugf("decoded bitmap font: %d glyphs on %d page(s), %d kerning pairs",
		f.glyphs.Size(), len(f.pages), len(secs.kernings))
	return f, nil
}

// BaseHeight returns the distance from the top of a line to the baseline
// the glyphs sit on, in pixels.
func (f *Font) BaseHeight() uint32 {
	return f.baseHeight
}

// LineHeight returns the vertical distance between successive lines of
// text, in pixels.
func (f *Font) LineHeight() uint32 {
	return f.lineHeight
}

// Pages returns the file names of the font's texture pages, in declaration
// order and with surrounding quotes stripped. The sequence may be ranged
// over any number of times.
func (f *Font) Pages() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range f.pages {
			if !yield(p.file) {
				return
			}
		}
	}
}

func (f *Font) glyphByID(id uint32) (glyph, bool) {
	v, ok := f.glyphs.Get(id)
	if !ok {
		return glyph{}, false
	}
	return v.(glyph), true
}

// findKerningValues returns every kerning entry whose first glyph id
// matches, in file order. Callers must not mutate the returned run.
func (f *Font) findKerningValues(first uint32) []kerningValue {
	v, ok := f.kernings.Get(first)
	if !ok {
		return nil
	}
	return v.([]kerningValue)
}
