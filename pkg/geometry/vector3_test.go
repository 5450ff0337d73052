package geometry

import (
	"math"
	"testing"
)

func TestVector3Sub(t *testing.T) {
	v := NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3))
	expected := NewVector3(4, 5, 6)

	if v != expected {
		t.Errorf("Sub failed: expected %+v, got %+v", expected, v)
	}
}

func TestVector3Dot(t *testing.T) {
	d := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))
	expected := 32.0

	if math.Abs(d-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, d)
	}
}

func TestVector3Cross(t *testing.T) {
	c := NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0))
	expected := NewVector3(0, 0, 1)

	if c != expected {
		t.Errorf("Cross failed: expected %+v, got %+v", expected, c)
	}
}

func TestVector3Length(t *testing.T) {
	l := NewVector3(3, 4, 0).Length()

	if math.Abs(l-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5.0, got %v", l)
	}
}

func TestVector3Distance(t *testing.T) {
	d := NewVector3(1, 1, 1).Distance(NewVector3(1, 1, 6))

	if math.Abs(d-5.0) > 1e-10 {
		t.Errorf("Distance failed: expected 5.0, got %v", d)
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, 3)
	b := NewVector3(2, 4, 3)

	min := a.Min(b)
	max := a.Max(b)

	if min != NewVector3(1, 4, 3) {
		t.Errorf("Min failed: got %+v", min)
	}
	if max != NewVector3(2, 5, 3) {
		t.Errorf("Max failed: got %+v", max)
	}
}
