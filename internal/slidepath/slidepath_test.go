package slidepath

import (
	"testing"

	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

var allShapes = []insn.SlideShape{
	insn.ShapeStraight, insn.ShapeCircleL, insn.ShapeCircleR,
	insn.ShapeCurveL, insn.ShapeCurveR, insn.ShapeThunderL, insn.ShapeThunderR,
	insn.ShapeCorner, insn.ShapeBendL, insn.ShapeBendR, insn.ShapeSkipL, insn.ShapeSkipR,
	insn.ShapeFan,
}

func TestPathStartsOnMatchingASensor(t *testing.T) {
	for _, shape := range allShapes {
		for start := 0; start < 8; start++ {
			for dest := 0; dest < 8; dest++ {
				path, ok := Lookup(shape, position.Key(start), position.Key(dest))
				if !ok {
					continue
				}
				if len(path) == 0 {
					t.Fatalf("%v start=%d dest=%d: path is empty", shape, start, dest)
				}
				first := path[0]
				if len(first.Sensors) != 1 || first.Sensors[0].Group != position.GroupA || first.Sensors[0].Index != start {
					t.Fatalf("%v start=%d dest=%d: first hit area = %+v, want singleton A%d", shape, start, dest, first, start)
				}
			}
		}
	}
}

func TestPathHasNoConsecutiveIdenticalSingletons(t *testing.T) {
	for _, shape := range allShapes {
		for start := 0; start < 8; start++ {
			for dest := 0; dest < 8; dest++ {
				path, ok := Lookup(shape, position.Key(start), position.Key(dest))
				if !ok {
					continue
				}
				for i := 1; i < len(path); i++ {
					prev, cur := path[i-1], path[i]
					if len(prev.Sensors) == 1 && len(cur.Sensors) == 1 && prev.Sensors[0] == cur.Sensors[0] {
						t.Fatalf("%v start=%d dest=%d: consecutive identical hit area at %d: %+v", shape, start, dest, i, cur)
					}
				}
			}
		}
	}
}

func TestConcatenateDropsSharedBoundary(t *testing.T) {
	p1, _ := Lookup(insn.ShapeCircleR, position.Key(0), position.Key(2))
	p2, _ := Lookup(insn.ShapeCircleR, position.Key(2), position.Key(4))
	joined := Concatenate([][]HitArea{p1, p2})
	want := len(p1) + len(p2) - 1
	if len(joined) != want {
		t.Fatalf("Concatenate length = %d, want %d", len(joined), want)
	}
}

func TestDirectPathNonEmpty(t *testing.T) {
	for start := 0; start < 8; start++ {
		for dest := 0; dest < 8; dest++ {
			if start == dest {
				continue
			}
			path := DirectPath(position.Key(start), position.Key(dest))
			if len(path) == 0 {
				t.Fatalf("DirectPath(%d,%d) is empty", start, dest)
			}
		}
	}
}

func countEntries(shape insn.SlideShape) int {
	n := 0
	for start := 0; start < 8; start++ {
		for dest := 0; dest < 8; dest++ {
			if _, ok := Lookup(shape, position.Key(start), position.Key(dest)); ok {
				n++
			}
		}
	}
	return n
}

func groupSequence(path []HitArea) []position.SensorGroup {
	out := make([]position.SensorGroup, len(path))
	for i, ha := range path {
		out[i] = ha.Sensors[0].Group
	}
	return out
}

func sameGroups(a, b []position.SensorGroup) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestShapesWalkDistinctSensorGroupRoutes guards against every shape
// collapsing back into a single forward-arc-through-group-A generator: each
// of these shapes is defined on a common distance and must not all produce
// the same group-by-group route.
func TestShapesWalkDistinctSensorGroupRoutes(t *testing.T) {
	shapesAtDistance4 := []insn.SlideShape{
		insn.ShapeStraight, insn.ShapeCircleR, insn.ShapeCurveR,
		insn.ShapeThunderR, insn.ShapeCorner, insn.ShapeBendR, insn.ShapeSkipR,
	}
	var sequences [][]position.SensorGroup
	for _, shape := range shapesAtDistance4 {
		path, ok := Lookup(shape, position.Key(0), position.Key(4))
		if !ok {
			continue
		}
		sequences = append(sequences, groupSequence(path))
	}
	if len(sequences) < 2 {
		t.Fatalf("expected multiple shapes registered at distance 4, got %d", len(sequences))
	}
	allSame := true
	for _, seq := range sequences[1:] {
		if !sameGroups(sequences[0], seq) {
			allSame = false
			break
		}
	}
	if allSame {
		t.Fatalf("every shape produced the same sensor-group route %v; shapes must be topologically distinct", sequences[0])
	}
}

func TestCirclePathWalksOppositeDirectionFromStraight(t *testing.T) {
	straight, ok := Lookup(insn.ShapeStraight, position.Key(0), position.Key(2))
	if !ok {
		t.Fatalf("straight path not registered")
	}
	circle, ok := Lookup(insn.ShapeCircleL, position.Key(0), position.Key(2))
	if !ok {
		t.Fatalf("circle path not registered")
	}
	if len(circle) <= len(straight) {
		t.Fatalf("circle path (the long way around) should visit more hit areas than the direct straight path: circle=%d straight=%d", len(circle), len(straight))
	}
}

func TestChiralFamiliesHaveEqualCardinality(t *testing.T) {
	pairs := [][2]insn.SlideShape{
		{insn.ShapeCircleR, insn.ShapeCircleL},
		{insn.ShapeCurveR, insn.ShapeCurveL},
		{insn.ShapeThunderR, insn.ShapeThunderL},
		{insn.ShapeBendR, insn.ShapeBendL},
		{insn.ShapeSkipR, insn.ShapeSkipL},
	}
	for _, pair := range pairs {
		r, l := countEntries(pair[0]), countEntries(pair[1])
		if r == 0 {
			t.Fatalf("%v has no registered entries", pair[0])
		}
		if r != l {
			t.Fatalf("%v has %d entries, %v has %d, want equal", pair[0], r, pair[1], l)
		}
	}
}
