/*
Package bmfont decodes bitmap-font descriptions and lays out text with them.

Bitmap fonts of the kind handled here are produced by AngelCode's BMFont
tool and its many clones: a texture atlas ("page") with pre-rendered glyph
images, plus a text description file that records where each glyph sits in
the atlas and how it advances the pen. The description is line-oriented:

	info face="Ubuntu" size=80 …
	common lineHeight=80 base=57 …
	page id=0 file="font.png"
	chars count=95
	char id=82 x=147 y=269 width=48 height=54 xoffset=6 yoffset=5 xadvance=54 page=0 …
	…
	kernings count=2
	kerning first=89 second=111 amount=-7

Package bmfont parses such a description into an immutable Font and
computes, for a given input string, the rectangle of every visible
character both within its texture page and within screen space:

	f, err := bmfont.New(file, bmfont.TopToBottom, bmfont.Strict)
	…
	seq, err := f.Parse("Hello\nworld")
	…
	for pos := range seq {
	    blit(pos.PageRect, pos.ScreenRect, pos.PageIndex)
	}

Layout honors line breaks, per-glyph kerning and a selectable vertical-axis
orientation (BottomToTop for GL-style coordinates, TopToBottom for
raster-style coordinates). The character sequence is produced lazily;
consumers that stop ranging early cause no further layout work.

Glyph identifiers in this format are single UTF-16 code units. Characters
outside the Basic Multilingual Plane can therefore never be represented and
are reported as unsupported. This is a limitation of the font tools that
emit the format, and it is preserved here.

No rasterizing, no rendering: clients receive rectangles and do their own
texturing. For scalable (outline) fonts see the sibling packages of the
tyse project.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.fonts'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.fonts")
}
