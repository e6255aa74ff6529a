// Package slidepath builds and exposes the static per-shape sensor-hit-area
// table (spec.md §4.4), grounded on original_source's judge/slide_data.rs
// (STRAIGHT_DATA, CIRCLE_L_DATA, CURVE_L_DATA, THUNDER_L_DATA, CORNER_DATA,
// BEND_L_DATA, SKIP_L_DATA, FAN_DATA): literal [start][dest]-indexed hit-area
// arrays there are themselves rotations of a single `start = 0` family, which
// is exactly the construction spec.md §4.4 and §9 "Static tables" describe.
// Each shape family there walks a topologically distinct route through the
// A/B/C rings — e.g. STRAIGHT_DATA bridges A->B->C->B->A depending on
// distance, CIRCLE_L_DATA walks the A ring the long way around, CURVE_L_DATA
// walks the B ring, CORNER_DATA always detours through a fixed B0->C->B(dest)
// regardless of direction — and this package mirrors that per-shape topology
// with its own generator per family below. Rather than transcribing the
// original's proprietary numeric push/release distances, each generator
// authors one representative path per canonical shape and derives the rest
// by rotation and (for chiral shapes) flip, which is sufficient to satisfy
// every structural invariant spec.md §8 states about slide paths without
// claiming bit-for-bit fidelity to the original's geometry (see DESIGN.md).
package slidepath

import (
	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

// HitArea is one step of a slide's sensor path (spec.md §4.4).
type HitArea struct {
	Sensors         []position.TouchSensor
	PushDistance    float64
	ReleaseDistance float64
}

type pathKey struct {
	shape insn.SlideShape
	start position.Key
	dest  position.Key
}

var table map[pathKey][]HitArea

func init() {
	table = make(map[pathKey][]HitArea)
	for _, fam := range canonicalFamilies {
		registerFamily(fam.shape, fam.destsAtStart0, fam.gen)
	}
}

// pathGen builds the start=0 hit-area path to the given clockwise distance.
type pathGen func(distance int) []HitArea

type family struct {
	shape         insn.SlideShape
	destsAtStart0 []position.Key
	gen           pathGen
}

var canonicalFamilies = []family{
	{insn.ShapeStraight, keys(2, 3, 4, 5, 6), straightPath},
	{insn.ShapeCircleL, keys(1, 2, 3, 4, 5, 6, 7), circlePath},
	{insn.ShapeCurveR, keys(1, 2, 3, 4, 5, 6, 7), curvePath},
	{insn.ShapeThunderR, keys(4), thunderPath},
	{insn.ShapeCorner, keys(1, 2, 3, 5, 6, 7), cornerPath},
	{insn.ShapeBendR, keys(1, 2, 3, 4, 5, 6, 7), bendPath},
	{insn.ShapeSkipR, keys(4, 5, 6, 7), skipPath},
	{insn.ShapeFan, keys(4), fanPath},
}

func keys(ints ...int) []position.Key {
	out := make([]position.Key, len(ints))
	for i, n := range ints {
		out[i] = position.Key(n)
	}
	return out
}

// registerFamily builds the full 8-rotation (and, for chiral shapes,
// 8-rotation x 2-flip) table from a single start=0 family.
func registerFamily(shape insn.SlideShape, destsAtStart0 []position.Key, gen pathGen) {
	base := make(map[position.Key][]HitArea, len(destsAtStart0))
	for _, dest := range destsAtStart0 {
		base[dest] = gen(int(dest))
	}

	flips := []bool{false}
	if shape.Flipped() != shape {
		flips = append(flips, true)
	}

	for rot := 0; rot < 8; rot++ {
		for _, flip := range flips {
			t := position.NewTransformer(rot, flip)
			destShape := shape
			if flip {
				destShape = shape.Flipped()
			}
			for dest0, path := range base {
				start := t.ApplyKey(position.Key(0))
				dest := t.ApplyKey(dest0)
				table[pathKey{destShape, start, dest}] = transformPath(path, t)
			}
		}
	}
}

func aSensor(i int) position.TouchSensor {
	s, _ := position.NewTouchSensor(position.GroupA, ((i%8)+8)%8)
	return s
}

func bSensor(i int) position.TouchSensor {
	s, _ := position.NewTouchSensor(position.GroupB, ((i%8)+8)%8)
	return s
}

func cSensor() position.TouchSensor {
	s, _ := position.NewTouchSensor(position.GroupC, 0)
	return s
}

func hit(push, release float64, sensors ...position.TouchSensor) HitArea {
	return HitArea{Sensors: sensors, PushDistance: push, ReleaseDistance: release}
}

// terminate clears the release distance on the final hit area of a path, the
// convention every shape family uses (the last area never needs to release
// before the slide's own completion judges it).
func terminate(path []HitArea) []HitArea {
	if len(path) > 0 {
		path[len(path)-1].ReleaseDistance = 0
	}
	return path
}

// straightPath walks the A ring directly from A0 to A[distance], bridging
// through the B ring (and, at the midpoint, the single C sensor) the farther
// the destination is — grounded on STRAIGHT_DATA's A->B->C->B->A bridging
// that widens with distance.
func straightPath(distance int) []HitArea {
	if distance == 0 {
		return []HitArea{hit(150, 0, aSensor(0))}
	}
	var out []HitArea
	out = append(out, hit(150, 40, aSensor(0)))
	switch {
	case distance == 1:
		// direct neighbor, no bridge
	case distance == 2:
		out = append(out, hit(150, 40, aSensor(1), bSensor(1)))
	case distance == 4:
		out = append(out, hit(150, 40, bSensor(0)))
		out = append(out, hit(220, 40, cSensor()))
		out = append(out, hit(150, 40, bSensor(distance-1)))
	default:
		out = append(out, hit(150, 40, bSensor(1)))
		for i := 2; i < distance-1; i++ {
			out = append(out, hit(150, 40, bSensor(i)))
		}
		out = append(out, hit(150, 40, bSensor(distance-1)))
	}
	out = append(out, hit(150, 0, aSensor(distance)))
	return terminate(out)
}

// circlePath walks the A ring counter-clockwise — backward from A0 through
// every intervening A sensor down to A[distance] — grounded on
// CIRCLE_L_DATA's backward walk through the outer ring. It is registered as
// CircleL; the clockwise CircleR paths are its mirror images.
func circlePath(distance int) []HitArea {
	steps := 8 - distance
	var out []HitArea
	for i := 0; i <= steps; i++ {
		out = append(out, hit(220, 17, aSensor(-i)))
	}
	out[len(out)-1] = hit(220, 0, aSensor(distance))
	return out
}

// curvePath walks the B ring forward from just inside A0 to just inside
// A[distance], grounded on CURVE_L_DATA's A->B...B->A walk through the
// middle ring (distinct from straightPath's A-ring-only route and
// circlePath's backward A-ring route).
func curvePath(distance int) []HitArea {
	var out []HitArea
	out = append(out, hit(160, 16, aSensor(0)))
	for i := 0; i < distance; i++ {
		out = append(out, hit(150, 16, bSensor(i)))
	}
	out = append(out, hit(150, 0, aSensor(distance)))
	return terminate(out)
}

// thunderPath goes out to the C sensor by one side of the B ring and returns
// to the destination by the other side, grounded on THUNDER_L_DATA's
// A->B->B->C->B->B->A zig-zag (distinct from Corner's single-sided detour).
func thunderPath(distance int) []HitArea {
	return terminate([]HitArea{
		hit(160, 16, aSensor(0)),
		hit(145, 42, bSensor(1)),
		hit(220, 42, cSensor()),
		hit(145, 16, bSensor(distance-1)),
		hit(160, 0, aSensor(distance)),
	})
}

// cornerPath always detours through the fixed B0 sensor and the center C
// sensor before exiting through B[distance], regardless of direction —
// grounded on CORNER_DATA's fixed A0->B0->C->B[dest]->A[dest] shape.
func cornerPath(distance int) []HitArea {
	return terminate([]HitArea{
		hit(156, 43, aSensor(0)),
		hit(129, 42, bSensor(0)),
		hit(219, 42, cSensor()),
		hit(129, 43, bSensor(distance)),
		hit(156, 0, aSensor(distance)),
	})
}

// bendPath walks a direct A-ring arc partway, then bends through the center
// via B/C like cornerPath for the remainder, grounded on BEND_L_DATA's
// "arc then corner" composite shape.
func bendPath(distance int) []HitArea {
	if distance <= 1 {
		return terminate([]HitArea{hit(156, 43, aSensor(0)), hit(156, 0, aSensor(distance))})
	}
	mid := distance / 2
	var out []HitArea
	out = append(out, hit(156, 43, aSensor(0)))
	for i := 1; i <= mid; i++ {
		out = append(out, hit(227, 17, aSensor(i)))
	}
	out = append(out, hit(134, 42, bSensor(0)))
	out = append(out, hit(219, 42, cSensor()))
	out = append(out, hit(129, 43, bSensor(distance)))
	out = append(out, hit(156, 0, aSensor(distance)))
	return terminate(out)
}

// skipPath steps two areas backward around the A ring (A(-1), then A(-2))
// and continues backward along the B ring from B(-2) before ending on
// A[distance], grounded on SKIP_L_DATA's A0->A(-1)->B ring->A[dest] detour.
func skipPath(distance int) []HitArea {
	if distance <= 1 {
		return terminate([]HitArea{hit(130, 129, aSensor(0)), hit(130, 0, aSensor(distance))})
	}
	out := []HitArea{
		hit(130, 129, aSensor(0)),
		hit(159, 129, aSensor(-1), bSensor(-1)),
		hit(289, 131, aSensor(-2)),
	}
	for i := 0; i < distance; i++ {
		out = append(out, hit(145, 16, bSensor(-2-i)))
	}
	out = append(out, hit(159, 0, aSensor(distance)))
	return terminate(out)
}

// fanPath mirrors the shape of Corner's center sub-slide on an even
// destination and Straight's bridge on an odd one, grounded on FAN_DATA's
// alternating A0->B0->C->B->A / A0->B->B->A center paths.
func fanPath(distance int) []HitArea {
	if distance%2 == 0 {
		return cornerPath(distance)
	}
	return straightPath(distance)
}

func transformPath(path []HitArea, t position.Transformer) []HitArea {
	out := make([]HitArea, len(path))
	for i, ha := range path {
		sensors := make([]position.TouchSensor, len(ha.Sensors))
		for j, s := range ha.Sensors {
			sensors[j] = t.ApplySensor(s)
		}
		out[i] = HitArea{Sensors: sensors, PushDistance: ha.PushDistance, ReleaseDistance: ha.ReleaseDistance}
	}
	return out
}

// Lookup returns the static hit-area path for shape from start to dest, and
// whether that combination is registered.
func Lookup(shape insn.SlideShape, start, dest position.Key) ([]HitArea, bool) {
	p, ok := table[pathKey{shape, start, dest}]
	return p, ok
}

// DirectPath generates a forward arc path from start to dest without going
// through the shape table; used for Fan's two offset sub-slides (spec.md
// §4.4 "a Fan segment expands into three parallel sub-slides with
// destinations dest, rot+1(dest), rot-1(dest)"), whose endpoints are not
// independently validated shapes.
func DirectPath(start, dest position.Key) []HitArea {
	dist := start.CWDistance(dest)
	return transformPath(straightPath(dist), position.NewTransformer(int(start), false))
}

// Concatenate joins per-segment paths for a multi-segment slide track,
// dropping each interior boundary hit area since it is shared between the
// segment that ends there and the one that begins there (spec.md §4.4).
func Concatenate(paths [][]HitArea) []HitArea {
	var out []HitArea
	for i, p := range paths {
		if len(p) == 0 {
			continue
		}
		if i > 0 && len(out) > 0 {
			p = p[1:]
		}
		out = append(out, p...)
	}
	return out
}
