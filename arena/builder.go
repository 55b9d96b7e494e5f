package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/drift-arena/vmath"
)

var (
	ErrInvalidRadius    = errors.New("arena: radius must be positive and finite")
	ErrInvalidFaceCount = errors.New("arena: face count must be greater than 2")
	ErrInvalidThickness = errors.New("arena: thickness must be positive and finite")
)

// MinFaces is the smallest face count that still closes a polygon
const MinFaces = 3

// Apothem returns the distance from the ring center to the midpoint of each face
func Apothem(radius float64, faces int) float64 {
	return radius * math.Cos(math.Pi/float64(faces))
}

// Perimeter returns the perimeter of the regular polygon inscribed in a circle of radius
// Slightly shorter than 2πr; the ring sits just inside the true circle
func Perimeter(radius float64, faces int) float64 {
	n := float64(faces)
	return 2 * n * radius * math.Sin(math.Pi/n)
}

// FaceHalfLength returns half the length of one face
func FaceHalfLength(radius float64, faces int) float64 {
	return Perimeter(radius, faces) / float64(faces) / 2
}

func validateShape(radius float64, faces int, thickness float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if faces < MinFaces {
		return fmt.Errorf("%w: got %d", ErrInvalidFaceCount, faces)
	}
	if !(thickness > 0) || math.IsInf(thickness, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidThickness, thickness)
	}
	return nil
}

// Build computes the faces of a regular polygon approximating a circle of the given radius,
// centered on the origin. Face i sits at angle i·2π/faces on the apothem circle, oriented
// tangent to it, so consecutive faces share an endpoint and the ring is closed
func Build(radius float64, faces int, thickness float64) ([]BoundarySegment, error) {
	if err := validateShape(radius, faces, thickness); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(faces)
	minor := Apothem(radius, faces)
	half := FaceHalfLength(radius, faces)

	segments := make([]BoundarySegment, faces)
	for i := range segments {
		angle := float64(i) * step
		segments[i] = BoundarySegment{
			Position:   vmath.V2FPolar(minor, angle),
			Angle:      angle + math.Pi/2,
			HalfLength: half,
			Thickness:  thickness,
		}
	}
	return segments, nil
}
