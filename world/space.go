package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/liminal/controller"
)

// probeRadius is the half extent of the broadphase query around the probe.
const probeRadius = 1e-6

type shapeEntry struct {
	owner controller.EntityID
	box   Box
}

// Space indexes box footprints in a Chipmunk space and answers vertical ground
// probes against their top faces.
type Space struct {
	space  *cp.Space
	owned  map[controller.EntityID][]*cp.Shape
	shapes map[*cp.Shape]shapeEntry
}

func NewSpace() *Space {
	return &Space{
		space:  cp.NewSpace(),
		owned:  make(map[controller.EntityID][]*cp.Shape),
		shapes: make(map[*cp.Shape]shapeEntry),
	}
}

// Add indexes another box for owner.
func (s *Space) Add(owner controller.EntityID, b Box) {
	shape := cp.NewBox2(s.space.StaticBody, b.Footprint(), 0)
	s.space.AddShape(shape)
	s.owned[owner] = append(s.owned[owner], shape)
	s.shapes[shape] = shapeEntry{owner: owner, box: b}
}

// Set replaces every box owned by owner, e.g. a moving body's volume.
func (s *Space) Set(owner controller.EntityID, boxes ...Box) {
	s.Remove(owner)
	for _, b := range boxes {
		s.Add(owner, b)
	}
}

// Remove drops all boxes owned by owner.
func (s *Space) Remove(owner controller.EntityID) {
	for _, shape := range s.owned[owner] {
		s.space.RemoveShape(shape)
		delete(s.shapes, shape)
	}
	delete(s.owned, owner)
}

// Len is the number of indexed boxes.
func (s *Space) Len() int {
	return len(s.shapes)
}

// ProbeGround reports the highest box top in [origin.Y-maxDistance, origin.Y]
// whose footprint contains the origin. Boxes owned by exclude are skipped.
func (s *Space) ProbeGround(origin mgl64.Vec3, maxDistance float64, exclude controller.EntityID) controller.ProbeResult {
	var result controller.ProbeResult
	if s == nil || maxDistance <= 0 {
		return result
	}

	x, y, z := origin.X(), origin.Y(), origin.Z()
	bb := cp.NewBBForExtents(cp.Vector{X: x, Y: z}, probeRadius, probeRadius)
	s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		entry, ok := s.shapes[shape]
		if !ok || entry.owner == exclude {
			return
		}
		if !entry.box.ContainsXZ(x, z) {
			return
		}
		top := entry.box.Top()
		if top > y || top < y-maxDistance {
			return
		}
		if !result.Hit || top > result.ContactHeight {
			result = controller.ProbeResult{Hit: true, ContactHeight: top}
		}
	}, nil)
	return result
}

var _ controller.GroundProbe = (*Space)(nil)
