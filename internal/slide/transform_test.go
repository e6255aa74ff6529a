package slide

import (
	"testing"

	"github.com/oss-maidata/maicore-go/internal/insn"
	"github.com/oss-maidata/maicore-go/internal/position"
)

func TestTransformSwapsChiralityOnFlip(t *testing.T) {
	s := insn.NormalizedSegment{Shape: insn.ShapeCircleL, StartKey: key(0), Destination: key(3)}
	flip := position.NewTransformer(0, true)
	got := s.Transform(flip)
	if got.Shape != insn.ShapeCircleR {
		t.Fatalf("flipped CircleL = %v, want CircleR", got.Shape)
	}
}

func TestTransformPreservesFlipInvariantShapes(t *testing.T) {
	for _, shape := range []insn.SlideShape{insn.ShapeStraight, insn.ShapeCorner, insn.ShapeFan} {
		s := insn.NormalizedSegment{Shape: shape, StartKey: key(0), Destination: key(4)}
		got := s.Transform(position.NewTransformer(0, true))
		if got.Shape != shape {
			t.Fatalf("%v under flip = %v, want unchanged", shape, got.Shape)
		}
	}
}

func TestTransformRotatesEndpoints(t *testing.T) {
	s := insn.NormalizedSegment{Shape: insn.ShapeStraight, StartKey: key(0), Destination: key(3)}
	got := s.Transform(position.NewTransformer(2, false))
	if got.StartKey != key(2) || got.Destination != key(5) {
		t.Fatalf("rotate by 2 = (%v,%v), want (2,5)", got.StartKey, got.Destination)
	}
}

func TestTransformComposesWithKeyComposition(t *testing.T) {
	for rot1 := 0; rot1 < 8; rot1++ {
		for _, flip1 := range []bool{false, true} {
			for rot2 := 0; rot2 < 8; rot2++ {
				for _, flip2 := range []bool{false, true} {
					t1 := position.NewTransformer(rot1, flip1)
					t2 := position.NewTransformer(rot2, flip2)
					composed := t1.Compose(t2)
					s := insn.NormalizedSegment{Shape: insn.ShapeCircleL, StartKey: key(0), Destination: key(3)}
					viaComposed := s.Transform(composed)
					viaSequential := s.Transform(t1).Transform(t2)
					if viaComposed.StartKey != viaSequential.StartKey || viaComposed.Destination != viaSequential.Destination || viaComposed.Shape != viaSequential.Shape {
						t.Fatalf("rot1=%d flip1=%v rot2=%d flip2=%v: composed %+v != sequential %+v", rot1, flip1, rot2, flip2, viaComposed, viaSequential)
					}
				}
			}
		}
	}
}
