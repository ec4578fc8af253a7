package rng

import (
	"testing"
	"time"
)

func TestStreamDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("streams with identical seeds diverged at draw %d", i)
		}
	}
}

func TestStreamDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same == 100 {
		t.Error("streams with different seeds produced identical output")
	}
}

func TestZeroSeedIsNotFixedPoint(t *testing.T) {
	s := New(0)
	if v := s.Uint64(); v == 0 {
		t.Error("zero seed produced a zero stream")
	}
}

func TestFloat64Range(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 returned %f, want [0, 1)", v)
		}
	}
}

func TestIntnRange(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) returned %d", v)
		}
	}

	if s.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if s.Intn(-5) != 0 {
		t.Error("Intn(-5) should return 0")
	}
}

func TestChanceBounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) should never hit")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) should always hit")
		}
	}
}

func TestDateSeed(t *testing.T) {
	d := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	want := uint64(2025*10000 + 3*100 + 14)
	if got := DateSeed(d); got != want {
		t.Errorf("DateSeed = %d, want %d", got, want)
	}

	// Time of day must not matter.
	evening := time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC)
	if DateSeed(d) != DateSeed(evening) {
		t.Error("DateSeed should ignore time of day")
	}

	if DateSeed(d) == 0 {
		t.Error("DateSeed should never be zero for a real date")
	}
}

func TestNewDailyReproducible(t *testing.T) {
	day := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	a := NewDaily(day)
	b := NewDaily(day)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatal("daily streams for the same date diverged")
		}
	}
}

func TestEntropyRange(t *testing.T) {
	e := Entropy()
	for i := 0; i < 1000; i++ {
		v := e.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("entropy Float64 returned %f", v)
		}
	}
}
