package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 5, 0))

	if bbox.Min != NewVector3(-1, 2, 0) {
		t.Errorf("Min failed: got %+v", bbox.Min)
	}
	if bbox.Max != NewVector3(1, 5, 3) {
		t.Errorf("Max failed: got %+v", bbox.Max)
	}
}

func TestBoundingBoxExtendTriangle(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.ExtendTriangle(NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(10, 0, 0),
		NewVector3(0, 20, 5),
	))

	size := bbox.Size()
	if size != NewVector3(10, 20, 5) {
		t.Errorf("Size failed: got %+v", size)
	}
}

func TestBoundingBoxCenter(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	center := bbox.Center()
	if center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: got %+v", center)
	}
}

func TestBoundingBoxDiagonal(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(3, 4, 0))

	if math.Abs(bbox.Diagonal()-5.0) > 1e-10 {
		t.Errorf("Diagonal failed: expected 5.0, got %v", bbox.Diagonal())
	}
}
