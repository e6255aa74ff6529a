package position

import "testing"

func TestTransformerApplyKeyRotateOnly(t *testing.T) {
	tr := NewTransformer(3, false)
	if got := tr.ApplyKey(Key(2)); got != Key(5) {
		t.Fatalf("ApplyKey(2) with rot=3 = %v, want 5", got)
	}
	if got := tr.ApplyKey(Key(6)); got != Key(1) {
		t.Fatalf("ApplyKey(6) with rot=3 = %v, want 1 (wraps)", got)
	}
}

func TestTransformerApplyKeyFlip(t *testing.T) {
	tr := NewTransformer(0, true)
	if got := tr.ApplyKey(Key(0)); got != Key(7) {
		t.Fatalf("flip ApplyKey(0) = %v, want 7", got)
	}
	if got := tr.ApplyKey(Key(7)); got != Key(0) {
		t.Fatalf("flip ApplyKey(7) = %v, want 0", got)
	}
}

func TestTransformerApplySensorCInvariant(t *testing.T) {
	c, _ := NewTouchSensor(GroupC, 0)
	tr := NewTransformer(5, true)
	if got := tr.ApplySensor(c); got != c {
		t.Fatalf("ApplySensor(C) = %v, want unchanged", got)
	}
}

func TestTransformerInverseUndoesApply(t *testing.T) {
	for rot := 0; rot < 8; rot++ {
		for _, flip := range []bool{false, true} {
			tr := NewTransformer(rot, flip)
			inv := tr.Inverse()
			for k := 0; k < 8; k++ {
				got := inv.ApplyKey(tr.ApplyKey(Key(k)))
				if got != Key(k) {
					t.Fatalf("rot=%d flip=%v: inverse did not undo apply for key %d, got %v", rot, flip, k, got)
				}
			}
		}
	}
}

func TestTransformerComposeMatchesSequentialApply(t *testing.T) {
	for rot1 := 0; rot1 < 8; rot1++ {
		for _, flip1 := range []bool{false, true} {
			for rot2 := 0; rot2 < 8; rot2++ {
				for _, flip2 := range []bool{false, true} {
					t1 := NewTransformer(rot1, flip1)
					t2 := NewTransformer(rot2, flip2)
					composed := t1.Compose(t2)
					for k := 0; k < 8; k++ {
						viaComposed := composed.ApplyKey(Key(k))
						viaSequential := t2.ApplyKey(t1.ApplyKey(Key(k)))
						if viaComposed != viaSequential {
							t.Fatalf("rot1=%d flip1=%v rot2=%d flip2=%v key=%d: composed=%v sequential=%v",
								rot1, flip1, rot2, flip2, k, viaComposed, viaSequential)
						}
					}
				}
			}
		}
	}
}
