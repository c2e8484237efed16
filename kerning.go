package bmfont

// kerningValue adjusts the pen position when the glyph with id second
// immediately follows the glyph with id first on a line.
type kerningValue struct {
	first  uint32
	second uint32
	amount int32
}

// decodeKerning decodes a `kerning` line, e.g. `kerning first=89 second=111 amount=-7`.
func decodeKerning(line string) (kerningValue, error) {
	c := recordComponents("kerning", line)
	k := kerningValue{
		first:  c.u32("first"),
		second: c.u32("second"),
		amount: c.i32("amount"),
	}
	if c.err != nil {
		return kerningValue{}, c.err
	}
	return k, nil
}
