package plot

import (
	"math"
	"testing"
)

func TestRegistryGetOrCreate(t *testing.T) {
	reg := NewRegistry(DefaultYStart, DefaultYEnd)
	if reg.Len() != 0 {
		t.Fatalf("Len=%d, want 0", reg.Len())
	}

	p1 := reg.GetOrCreate("p1")
	if s, e := p1.Range(); s != -300 || e != 300 {
		t.Fatalf("default range=[%v,%v], want [-300,300]", s, e)
	}
	if p1.Gesture() != Idle {
		t.Fatalf("gesture=%v, want idle", p1.Gesture())
	}
	if _, ok := p1.LastPointer(); ok {
		t.Fatal("fresh state has a drag anchor")
	}

	p1.SetRange(-10, 10)
	again := reg.GetOrCreate("p1")
	if again != p1 {
		t.Fatal("GetOrCreate returned a different state for the same id")
	}
	if s, e := again.Range(); s != -10 || e != 10 {
		t.Fatalf("range=[%v,%v], want [-10,10]", s, e)
	}

	if reg.GetOrCreate("p2") == p1 {
		t.Fatal("distinct ids share state")
	}
	if reg.Len() != 2 {
		t.Fatalf("Len=%d, want 2", reg.Len())
	}

	reg.Reset()
	if reg.Len() != 0 {
		t.Fatalf("Len after Reset=%d", reg.Len())
	}
	if reg.GetOrCreate("p1") == p1 {
		t.Fatal("Reset kept the old state")
	}
}

func TestRegistryCustomDefault(t *testing.T) {
	reg := NewRegistry(100, -100)
	if s, e := reg.GetOrCreate("a").Range(); s != -100 || e != 100 {
		t.Fatalf("range=[%v,%v], want [-100,100]", s, e)
	}
	reg = NewRegistry(math.NaN(), 1)
	if s, e := reg.DefaultRange(); s != DefaultYStart || e != DefaultYEnd {
		t.Fatalf("NaN default=[%v,%v]", s, e)
	}
}

func TestSetRangeKeepsInvariant(t *testing.T) {
	v := newViewportState(-1, 1)

	v.SetRange(50, -50)
	if s, e := v.Range(); s != -50 || e != 50 {
		t.Fatalf("swap: [%v,%v]", s, e)
	}

	v.SetRange(7, 7)
	s, e := v.Range()
	if !(e > s) || !near(e-s, MinSpan) || !near((s+e)/2, 7) {
		t.Fatalf("collapse: [%v,%v]", s, e)
	}

	v.SetRange(math.Inf(-1), 3)
	if s2, e2 := v.Range(); s2 != s || e2 != e {
		t.Fatalf("non-finite bounds changed range to [%v,%v]", s2, e2)
	}
}

func TestFit(t *testing.T) {
	v := newViewportState(-300, 300)
	v.Fit([]float64{-20, 5, 80, math.NaN()})
	// pad = 5: [-25, 85].
	if s, e := v.Range(); s != -25 || e != 85 {
		t.Fatalf("fit=[%v,%v], want [-25,85]", s, e)
	}

	v.Fit([]float64{3.5, 3.5})
	if s, e := v.Range(); s != 2 || e != 5 {
		t.Fatalf("flat fit=[%v,%v], want [2,5]", s, e)
	}

	v.Fit(nil)
	if s, e := v.Range(); s != 2 || e != 5 {
		t.Fatalf("empty fit changed range to [%v,%v]", s, e)
	}
}
