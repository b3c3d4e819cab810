package collision

import "github.com/solarlune/resolv"

// Box is an axis-aligned rectangle in world pixels, y pointing down.
type Box struct {
	X, Y, W, H float64
}

// BoxOf returns the bounds of a resolv object.
func BoxOf(o *resolv.Object) Box {
	return Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func (b Box) Right() float64   { return b.X + b.W }
func (b Box) Bottom() float64  { return b.Y + b.H }
func (b Box) CenterX() float64 { return b.X + b.W/2 }
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Intersects reports a strict overlap; boxes that only share an edge do not
// intersect.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Below returns a strip of the given depth directly under b, inset by inset on
// both sides.
func (b Box) Below(depth, inset float64) Box {
	return Box{X: b.X + inset, Y: b.Bottom(), W: b.W - 2*inset, H: depth}
}

// Ahead returns a box of width reach next to b on the facing side, spanning b's
// height.
func (b Box) Ahead(reach float64, facingRight bool) Box {
	if facingRight {
		return Box{X: b.Right(), Y: b.Y, W: reach, H: b.H}
	}
	return Box{X: b.X - reach, Y: b.Y, W: reach, H: b.H}
}
