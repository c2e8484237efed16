package bmfont

// glyph holds the metrics of one character of the font: its rectangle
// within the texture page, its placement offsets, and its pen advance.
// The id is a single UTF-16 code unit.
type glyph struct {
	id        uint32
	x         uint32
	y         uint32
	width     uint32
	height    uint32
	xoffset   int32
	yoffset   int32
	xadvance  int32
	pageIndex uint32
}

// decodeGlyph decodes a `char` line. The component order is fixed by the
// format; trailing components (chnl, …) are ignored.
func decodeGlyph(line string) (glyph, error) {
	c := recordComponents("char", line)
	g := glyph{
		id:        c.u32("id"),
		x:         c.u32("x"),
		y:         c.u32("y"),
		width:     c.u32("width"),
		height:    c.u32("height"),
		xoffset:   c.i32("xoffset"),
		yoffset:   c.i32("yoffset"),
		xadvance:  c.i32("xadvance"),
		pageIndex: c.u32("page"),
	}
	if c.err != nil {
		return glyph{}, c.err
	}
	return g, nil
}
