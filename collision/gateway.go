// Package collision answers region overlap queries against a resolv space.
package collision

import "github.com/solarlune/resolv"

// Gateway is the physics query surface the simulation depends on.
type Gateway interface {
	// Overlaps reports whether any object carrying one of layers overlaps region.
	Overlaps(region Box, layers ...string) bool
	// Overlapping returns every object carrying one of layers that overlaps region.
	Overlapping(region Box, layers ...string) []*resolv.Object
}

// SpaceGateway runs queries by dropping a probe object into a resolv space.
// resolv only narrows by cell, so hits are filtered by exact bounds.
type SpaceGateway struct {
	space *resolv.Space
	probe *resolv.Object
}

func NewSpaceGateway(space *resolv.Space) *SpaceGateway {
	return &SpaceGateway{
		space: space,
		probe: resolv.NewObject(0, 0, 1, 1),
	}
}

// Space returns the underlying resolv space.
func (g *SpaceGateway) Space() *resolv.Space {
	return g.space
}

func (g *SpaceGateway) Overlaps(region Box, layers ...string) bool {
	found := false
	g.query(region, layers, func(*resolv.Object) bool {
		found = true
		return false
	})
	return found
}

func (g *SpaceGateway) Overlapping(region Box, layers ...string) []*resolv.Object {
	var out []*resolv.Object
	g.query(region, layers, func(o *resolv.Object) bool {
		out = append(out, o)
		return true
	})
	return out
}

func (g *SpaceGateway) query(region Box, layers []string, visit func(*resolv.Object) bool) {
	if region.W <= 0 || region.H <= 0 {
		return
	}
	g.probe.X, g.probe.Y = region.X, region.Y
	g.probe.W, g.probe.H = region.W, region.H
	g.space.Add(g.probe)
	defer g.space.Remove(g.probe)

	check := g.probe.Check(0, 0, layers...)
	if check == nil {
		return
	}
	for _, o := range check.Objects {
		if !BoxOf(o).Intersects(region) {
			continue
		}
		if !visit(o) {
			return
		}
	}
}
