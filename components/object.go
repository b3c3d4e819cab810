package components

import (
	"github.com/automoto/robofighter/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Box returns the object's current bounds.
func (o *ObjectData) Box() collision.Box {
	return collision.BoxOf(o.Object)
}

// CenterX is the actor's horizontal position as used by combat and AI.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

// SetCenter moves the object so its center sits at (x, y).
func (o *ObjectData) SetCenter(x, y float64) {
	o.X = x - o.W/2
	o.Y = y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
