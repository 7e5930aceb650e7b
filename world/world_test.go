package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/liminal/controller"
	"github.com/milk9111/liminal/input"
)

func box(x, y, z, sx, sy, sz float64) Box {
	return Box{Center: mgl64.Vec3{x, y, z}, Size: mgl64.Vec3{sx, sy, sz}}
}

func TestBoxGeometry(t *testing.T) {
	b := box(0, 0, 0, 10, 0.5, 4)
	if b.Top() != 0.25 {
		t.Fatalf("expected top 0.25, got %v", b.Top())
	}
	fp := b.Footprint()
	if fp.L != -5 || fp.R != 5 || fp.B != -2 || fp.T != 2 {
		t.Fatalf("unexpected footprint %+v", fp)
	}
	if !b.ContainsXZ(5, 2) || b.ContainsXZ(5.01, 0) || b.ContainsXZ(0, -2.5) {
		t.Fatalf("footprint containment is wrong")
	}
	if !b.Valid() || box(0, 0, 0, 1, 0, 1).Valid() {
		t.Fatalf("validity check is wrong")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindFloor, KindPlatform, KindPillar, KindBody} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("round trip of %v failed: %v %v", k, got, ok)
		}
	}
	if _, ok := ParseKind("orb"); ok {
		t.Fatalf("expected unknown kind to fail")
	}
}

func TestSpaceProbeGround(t *testing.T) {
	s := NewSpace()
	s.Add(1, box(0, 0, 0, 10, 0.5, 10))  // floor, top 0.25
	s.Add(2, box(2, 3, 2, 2, 0.5, 2))    // platform, top 3.25
	s.Add(3, box(-3, 0, -3, 2, 20, 2))   // pillar, top 10
	s.Add(7, box(0, 1.25, 0, 1, 2, 1))   // a body standing on the floor

	cases := []struct {
		name    string
		origin  mgl64.Vec3
		dist    float64
		exclude controller.EntityID
		hit     bool
		height  float64
	}{
		{"floor_in_range", mgl64.Vec3{4, 0.6, 4}, 0.5, 0, true, 0.25},
		{"floor_out_of_range", mgl64.Vec3{4, 1.0, 4}, 0.5, 0, false, 0},
		{"origin_below_top", mgl64.Vec3{4, 0.2, 4}, 0.5, 0, false, 0},
		{"exact_top", mgl64.Vec3{4, 0.25, 4}, 0.5, 0, true, 0.25},
		{"platform_beats_floor", mgl64.Vec3{2, 3.5, 2}, 5, 0, true, 3.25},
		{"beside_platform", mgl64.Vec3{3.5, 3.5, 3.5}, 0.5, 0, false, 0},
		{"pillar_top", mgl64.Vec3{-3, 10.1, -3}, 0.5, 0, true, 10},
		{"off_level", mgl64.Vec3{50, 0.3, 50}, 0.5, 0, false, 0},
		{"own_body_excluded", mgl64.Vec3{0, 2.3, 0}, 0.5, 7, false, 0},
		{"other_body_hit", mgl64.Vec3{0, 2.3, 0}, 0.5, 8, true, 2.25},
		{"zero_distance", mgl64.Vec3{4, 0.25, 4}, 0, 0, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.ProbeGround(tc.origin, tc.dist, tc.exclude)
			if got.Hit != tc.hit {
				t.Fatalf("expected hit=%v, got %+v", tc.hit, got)
			}
			if tc.hit && got.ContactHeight != tc.height {
				t.Fatalf("expected contact %v, got %v", tc.height, got.ContactHeight)
			}
		})
	}
}

func TestSpaceSetAndRemove(t *testing.T) {
	s := NewSpace()
	s.Add(1, box(0, 0, 0, 2, 1, 2))
	s.Add(1, box(10, 0, 0, 2, 1, 2))
	if s.Len() != 2 {
		t.Fatalf("expected 2 boxes, got %d", s.Len())
	}

	s.Set(1, box(20, 0, 0, 2, 1, 2))
	if s.Len() != 1 {
		t.Fatalf("expected 1 box after set, got %d", s.Len())
	}
	if s.ProbeGround(mgl64.Vec3{0, 0.6, 0}, 0.5, 0).Hit {
		t.Fatalf("replaced box still reported")
	}
	if !s.ProbeGround(mgl64.Vec3{20, 0.6, 0}, 0.5, 0).Hit {
		t.Fatalf("new box missing")
	}

	s.Remove(1)
	if s.Len() != 0 || s.ProbeGround(mgl64.Vec3{20, 0.6, 0}, 0.5, 0).Hit {
		t.Fatalf("expected empty space after remove")
	}
}

func TestControllerLandsOnSpace(t *testing.T) {
	s := NewSpace()
	s.Add(1, box(0, 0, 0, 10, 0.5, 10))
	s.Add(2, box(0, 4, 4, 4, 0.5, 4))

	cfg := controller.DefaultConfig()
	c, err := controller.New(cfg, mgl64.Vec3{0, 6, 0}, 0, 99)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 300 && !c.Grounded(); i++ {
		c.Update(input.Frame{}, 1.0/60, s)
	}
	if !c.Grounded() {
		t.Fatalf("controller never landed on the floor")
	}
	if y := c.Position().Y(); y != 1.25 {
		t.Fatalf("expected to stand at 1.25, got %v", y)
	}

	// Walk off the floor edge toward +X and fall forever.
	c.Update(input.Frame{Look: mgl64.Vec2{0.9, 0}}, 1, s) // yaw 0 -> 90, still planted
	for i := 0; i < 240; i++ {
		c.Update(input.Frame{Forward: 1}, 1.0/60, s)
	}
	st := c.State()
	if st.Grounded || st.Position.Y() > 0 {
		t.Fatalf("expected to have walked off the edge and be falling, got %+v", st)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Add(Object{ID: 1, Kind: KindFloor, Box: box(0, 0, 0, 1, 1, 1)})
	r.Add(Object{ID: 2, Kind: KindPlatform, Box: box(1, 0, 0, 1, 1, 1)})
	r.Add(Object{ID: 3, Kind: KindPlatform, Box: box(2, 0, 0, 1, 1, 1)})
	r.Add(Object{ID: 2, Kind: KindPlatform, Box: box(9, 0, 0, 1, 1, 1)})

	if r.Len() != 3 {
		t.Fatalf("expected 3 objects, got %d", r.Len())
	}
	if obj, ok := r.Get(2); !ok || obj.Box.Center.X() != 9 {
		t.Fatalf("expected replaced object, got %+v %v", obj, ok)
	}
	if got := r.OfKind(KindPlatform); len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected platforms %+v", got)
	}
	if got := r.OfKind(); len(got) != 3 {
		t.Fatalf("expected all objects, got %d", len(got))
	}

	if !r.Remove(2) || r.Remove(2) {
		t.Fatalf("remove should succeed once")
	}
	var ids []controller.EntityID
	r.Each(func(o Object) bool {
		ids = append(ids, o.ID)
		return true
	})
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Fatalf("unexpected order after remove: %v", ids)
	}
	if obj, ok := r.Get(3); !ok || obj.ID != 3 {
		t.Fatalf("index not updated after remove")
	}

	var nilReg *Registry
	if nilReg.Len() != 0 || nilReg.OfKind() != nil {
		t.Fatalf("nil registry should be empty")
	}
}
