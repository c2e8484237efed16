package bmfont

import "strings"

// page references one texture atlas image of the font.
type page struct {
	id   uint32
	file string
}

// decodePage decodes a `page` line, e.g. `page id=0 file="font.png"`.
// Surrounding double quotes of the file name are stripped.
func decodePage(line string) (page, error) {
	c := recordComponents("page", line)
	p := page{
		id:   c.u32("id"),
		file: c.str("file"),
	}
	if c.err != nil {
		return page{}, c.err
	}
	p.file = strings.Trim(p.file, `"`)
	return p, nil
}
