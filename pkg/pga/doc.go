// Package pga implements 3D projective geometric algebra, Cl(3,0,1), in
// single precision.
//
// Four value types cover every element the rest of the module needs:
//
//	Motor    s + e23 + e31 + e12 + e01 + e02 + e03 + e0123   (rigid motions, lines)
//	Plane    e1 + e2 + e3 + e0                              (grade 1)
//	Point    e032 + e013 + e021 + e123                      (grade 3, x y z w)
//	Flector  Plane + Point                                  (odd products)
//
// The basis squares are e0² = 0 and e1² = e2² = e3² = 1. A plane E1 x + E2 y
// + E3 z + E0 w = 0 contains the points that satisfy it, and a line is a
// motor whose scalar and pseudoscalar parts are zero.
//
// Every product is spelled out per ordered type pair (MulMotor,
// MulPlanePoint, MulPointPlane and so on) because the product is not
// commutative and the sign differences between the two orders matter.
// Meet, join, dot and dual are layered on top and agree with the product.
package pga
