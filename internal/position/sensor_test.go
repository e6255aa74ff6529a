package position

import "testing"

func TestNewTouchSensorValidation(t *testing.T) {
	if _, err := NewTouchSensor(GroupA, 8); err == nil {
		t.Fatalf("NewTouchSensor(A,8) should fail")
	}
	if _, err := NewTouchSensor(GroupA, -1); err == nil {
		t.Fatalf("NewTouchSensor(A,-1) should fail")
	}
	if _, err := NewTouchSensor('X', 0); err == nil {
		t.Fatalf("NewTouchSensor(X,0) should fail")
	}
	s, err := NewTouchSensor(GroupC, 5)
	if err != nil || s.Index != 0 {
		t.Fatalf("NewTouchSensor(C,5) = %v,%v, want index 0, nil", s, err)
	}
}

func TestAllSensorsCount(t *testing.T) {
	all := AllSensors()
	if len(all) != 33 {
		t.Fatalf("AllSensors() returned %d sensors, want 33", len(all))
	}
	seen := map[string]bool{}
	for _, s := range all {
		str := s.String()
		if seen[str] {
			t.Fatalf("duplicate sensor %s", str)
		}
		seen[str] = true
	}
}
