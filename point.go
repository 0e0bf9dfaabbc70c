package m25519

import "github.com/ok-john/m25519/gfp"

// Dim is the dimension of a Point: the number of gfp.Element-sized
// coordinate slots its buffer carries.
type Dim int

// Point dimensions and the coordinate systems they carry. The field/MPI
// layer never interprets Dim beyond sizing and routing Coords to gfp
// primitives; curve-level code built on this package gives each dimension
// its meaning.
const (
	DimX          Dim = 1 // x-coordinate only (e.g. X25519 key exchange)
	DimAffine     Dim = 2 // affine (x,y) or projective (X:Z)
	DimProjective Dim = 3 // (X:Y:Z) or extended affine (u,v,w)
	DimScratch3   Dim = 4 // DimProjective plus one scratch coordinate
	DimExtended   Dim = 5 // extended projective (X:Y:Z:E:H), E*H = T
	DimScratch5   Dim = 6 // DimExtended plus one scratch coordinate
)

// Point is a variable-dimension elliptic-curve point: a small dimension
// tag plus a flat buffer of gfp.Element-sized coordinates. Unlike a
// struct with fixed X/Y/Z fields, a single buffer indexed by dimension
// lets one type describe every coordinate system a curve layer might use,
// at the cost of the caller tracking what each slot means.
//
// Point is a boundary type only: this package constructs and validates
// nothing about it beyond its shape. Curve-level code (out of scope here)
// owns the semantics of each Dim.
type Point struct {
	Dim    Dim
	Coords []gfp.Element
}

// NewPoint allocates a Point with dim coordinate slots, each zeroed.
func NewPoint(dim Dim) *Point {
	return &Point{Dim: dim, Coords: make([]gfp.Element, dim)}
}
