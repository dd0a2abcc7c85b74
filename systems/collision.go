package systems

import (
	"github.com/solarlune/resolv"

	"github.com/hollowgrove/ravine/components"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

// moveResult reports which surfaces an axis-separated move hit.
type moveResult struct {
	HitWall    bool
	Landed     bool
	HitCeiling bool
}

// moveAndCollide integrates velocity over dt and resolves against solid
// geometry one axis at a time: move horizontally, snap out of any overlap,
// then move vertically and snap again. Snapping aligns the moving edge with
// the platform edge and zeroes the velocity component, so entities come to
// rest exactly flush. Boxes that merely touch edges are not overlapping.
func moveAndCollide(obj *components.ObjectData, phys *components.PhysicsData, dt float64) moveResult {
	var result moveResult

	obj.X += phys.Vel.X * dt
	obj.Update()
	for _, solid := range overlappingSolids(obj) {
		if phys.Vel.X > 0 {
			obj.X = solid.X - obj.W
		} else if phys.Vel.X < 0 {
			obj.X = solid.X + solid.W
		}
		phys.Vel.X = 0
		result.HitWall = true
		obj.Update()
	}

	obj.Y += phys.Vel.Y * dt
	obj.Update()
	for _, solid := range overlappingSolids(obj) {
		if phys.Vel.Y > 0 {
			obj.Y = solid.Y - obj.H
			result.Landed = true
		} else if phys.Vel.Y < 0 {
			obj.Y = solid.Y + solid.H
			result.HitCeiling = true
		}
		phys.Vel.Y = 0
		obj.Update()
	}

	return result
}

// overlappingSolids returns the solid objects strictly overlapping obj.
// The space check is a broadphase over shared cells, so each candidate is
// confirmed with an exact box test.
func overlappingSolids(obj *components.ObjectData) []*resolv.Object {
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	box := obj.Box()
	var solids []*resolv.Object
	for _, candidate := range check.Objects {
		if gamemath.Overlaps(box, gamemath.Box{X: candidate.X, Y: candidate.Y, W: candidate.W, H: candidate.H}) {
			solids = append(solids, candidate)
		}
	}
	return solids
}
