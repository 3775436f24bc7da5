package entities

import "testing"

func TestTrailEvictsOldest(t *testing.T) {
	tr := NewTrail(3)
	for i := 0; i < 5; i++ {
		tr.Push(float64(i), 0)
	}
	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	for i, want := range []float64{2, 3, 4} {
		if pts[i].X != want {
			t.Fatalf("pts[%d].X = %v, want %v", i, pts[i].X, want)
		}
	}
}

func TestTrailSetLimit(t *testing.T) {
	tr := NewTrail(8)
	for i := 0; i < 8; i++ {
		tr.Push(float64(i), 0)
	}
	tr.SetLimit(15)
	for i := 8; i < 20; i++ {
		tr.Push(float64(i), 0)
	}
	if tr.Len() != 15 {
		t.Fatalf("len after grow = %d, want 15", tr.Len())
	}
	if first := tr.Points()[0].X; first != 5 {
		t.Fatalf("oldest after grow = %v, want 5", first)
	}

	tr.SetLimit(8)
	pts := tr.Points()
	if len(pts) != 8 || pts[0].X != 12 || pts[7].X != 19 {
		t.Fatalf("shrink kept %v", pts)
	}
	tr.Push(20, 0)
	if tr.Len() != 8 || tr.Points()[7].X != 20 {
		t.Fatalf("push after shrink: %v", tr.Points())
	}
}

func TestTrailClear(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(1, 1)
	tr.Push(2, 2)
	tr.Clear()
	if tr.Len() != 0 || len(tr.Points()) != 0 {
		t.Fatalf("trail not cleared")
	}
}
