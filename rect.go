package bmfont

// Rect is an axis-aligned rectangle with integer coordinates.
// X and Y locate the minimum corner; Width and Height extend towards the
// maximum corner. Rects are value types and never mutated by this package.
type Rect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// MaxX returns the maximum x coordinate still covered by r.
func (r Rect) MaxX() int32 {
	return r.X + int32(r.Width) - 1
}

// MaxY returns the maximum y coordinate still covered by r.
func (r Rect) MaxY() int32 {
	return r.Y + int32(r.Height) - 1
}
