package position

// Transformer is one element of the 16-element dihedral group D8 acting on
// keys and sensors: a rotation in [0,7] steps, optionally followed by a flip.
type Transformer struct {
	Rotation int
	Flip     bool
}

// Identity is the no-op transform.
var Identity = Transformer{}

// NewTransformer normalizes rotation into [0,7] before storing it.
func NewTransformer(rotation int, flip bool) Transformer {
	rotation = ((rotation % 8) + 8) % 8
	return Transformer{Rotation: rotation, Flip: flip}
}

// ApplyKey rotates then (optionally) flips k, per spec.md §3.1:
// k' = (k + rot) mod 8, then if flip, k' = 7 - k'.
func (t Transformer) ApplyKey(k Key) Key {
	v := (int(k) + t.Rotation) % 8
	if t.Flip {
		v = 7 - v
	}
	return Key(v)
}

// ApplySensor rotates and (optionally) flips s. Groups A/B behave like keys;
// D/E rotate the same way but flip as (8-i) mod 8; C is invariant.
func (t Transformer) ApplySensor(s TouchSensor) TouchSensor {
	if s.Group == GroupC {
		return s
	}
	idx := (s.Index + t.Rotation) % 8
	if t.Flip {
		switch s.Group {
		case GroupA, GroupB:
			idx = 7 - idx
		case GroupD, GroupE:
			idx = (8 - idx) % 8
		}
	}
	return TouchSensor{Group: s.Group, Index: idx}
}

// Compose returns the transformer equivalent to applying t first, then u:
// for all keys/sensors, u.ApplyX(t.ApplyX(k)) == t.Compose(u).ApplyX(k).
func (t Transformer) Compose(u Transformer) Transformer {
	if !t.Flip {
		return NewTransformer(t.Rotation+u.Rotation, u.Flip)
	}
	// t flips first: u's rotation must apply in the mirrored frame, so it
	// subtracts rather than adds; derived from chasing ApplyKey through two
	// applications and matching coefficients.
	return NewTransformer(t.Rotation-u.Rotation, !u.Flip)
}

// Inverse returns the transformer that undoes t.
func (t Transformer) Inverse() Transformer {
	if !t.Flip {
		return NewTransformer(-t.Rotation, false)
	}
	return t // every flip-reflection in D8 is its own inverse
}
