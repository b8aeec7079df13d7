// Copyright (c) 2026, The go-xr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit go-xr functionality.

package glm

// Ray represents an oriented 3D line segment defined by an origin point
// and a direction vector, which should be normalized.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay returns a new [Ray] with the given origin and direction,
// which should be normalized.
func NewRay(origin, dir Vector3) Ray {
	return Ray{origin, dir}
}

// Set sets this ray's origin and direction, which should be normalized.
func (r *Ray) Set(origin, dir Vector3) {
	r.Origin = origin
	r.Dir = dir
}

// At returns the point at the given distance along this ray.
func (r Ray) At(t float32) Vector3 {
	return r.Dir.MulScalar(t).Add(r.Origin)
}

// ClosestPointToPoint returns the point along this ray that is
// closest to the given point.
func (r Ray) ClosestPointToPoint(point Vector3) Vector3 {
	dirDist := point.Sub(r.Origin).Dot(r.Dir)
	if dirDist < 0 { // point behind the ray
		return r.Origin
	}
	return r.At(dirDist)
}

// DistanceToPoint returns the smallest distance
// from this ray to the given point.
func (r Ray) DistanceToPoint(point Vector3) float32 {
	return Sqrt(r.DistanceSquaredToPoint(point))
}

// DistanceSquaredToPoint returns the smallest squared distance
// from this ray to the given point.
func (r Ray) DistanceSquaredToPoint(point Vector3) float32 {
	dirDist := point.Sub(r.Origin).Dot(r.Dir)
	if dirDist < 0 { // point behind the ray
		return r.Origin.DistanceToSquared(point)
	}
	return r.At(dirDist).DistanceToSquared(point)
}

// DistanceToPlane returns the distance along this ray to the intersection
// with the given plane. Returns false if the ray does not intersect the
// plane in the forward direction (a coplanar ray intersects at distance 0).
func (r Ray) DistanceToPlane(plane Plane) (float32, bool) {
	denom := plane.Norm.Dot(r.Dir)
	if denom == 0 {
		// ray is parallel: coplanar if the origin is on the plane
		if plane.DistanceToPoint(r.Origin) == 0 {
			return 0, true
		}
		return 0, false
	}
	t := -(r.Origin.Dot(plane.Norm) + plane.Off) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane returns the point at which this ray intersects
// the given plane, or false if there is no forward intersection.
func (r Ray) IntersectPlane(plane Plane) (Vector3, bool) {
	t, ok := r.DistanceToPlane(plane)
	if !ok {
		return Vector3{}, false
	}
	return r.At(t), true
}

// IntersectSphere returns the nearest point at which this ray intersects
// the given sphere, or false if it does not intersect.
func (r Ray) IntersectSphere(sphere Sphere) (Vector3, bool) {
	v1 := sphere.Center.Sub(r.Origin)
	tca := v1.Dot(r.Dir)
	d2 := v1.Dot(v1) - tca*tca
	radius2 := sphere.Radius * sphere.Radius
	if d2 > radius2 {
		return Vector3{}, false
	}
	thc := Sqrt(radius2 - d2)

	// t0 = first intersect point - entrance on front of sphere
	t0 := tca - thc
	// t1 = second intersect point - exit point on back of sphere
	t1 := tca + thc
	if t0 < 0 && t1 < 0 {
		return Vector3{}, false
	}
	// if t0 is behind the ray, the ray starts inside the sphere, so return t1
	if t0 < 0 {
		return r.At(t1), true
	}
	return r.At(t0), true
}

// IntersectBox3 returns the nearest point at which this ray intersects
// the given box, or false if it does not intersect.
func (r Ray) IntersectBox3(box Box3) (Vector3, bool) {
	var tmin, tmax, tymin, tymax, tzmin, tzmax float32

	invdirx := 1 / r.Dir.X
	invdiry := 1 / r.Dir.Y
	invdirz := 1 / r.Dir.Z

	if invdirx >= 0 {
		tmin = (box.Min.X - r.Origin.X) * invdirx
		tmax = (box.Max.X - r.Origin.X) * invdirx
	} else {
		tmin = (box.Max.X - r.Origin.X) * invdirx
		tmax = (box.Min.X - r.Origin.X) * invdirx
	}

	if invdiry >= 0 {
		tymin = (box.Min.Y - r.Origin.Y) * invdiry
		tymax = (box.Max.Y - r.Origin.Y) * invdiry
	} else {
		tymin = (box.Max.Y - r.Origin.Y) * invdiry
		tymax = (box.Min.Y - r.Origin.Y) * invdiry
	}

	if tmin > tymax || tymin > tmax {
		return Vector3{}, false
	}

	// these lines also handle the case where tmin or tmax is NaN
	// (result of 0 * Inf): NaN comparisons return false
	if tymin > tmin || IsNaN(tmin) {
		tmin = tymin
	}
	if tymax < tmax || IsNaN(tmax) {
		tmax = tymax
	}

	if invdirz >= 0 {
		tzmin = (box.Min.Z - r.Origin.Z) * invdirz
		tzmax = (box.Max.Z - r.Origin.Z) * invdirz
	} else {
		tzmin = (box.Max.Z - r.Origin.Z) * invdirz
		tzmax = (box.Min.Z - r.Origin.Z) * invdirz
	}

	if tmin > tzmax || tzmin > tmax {
		return Vector3{}, false
	}
	if tzmin > tmin {
		tmin = tzmin
	}
	if tzmax < tmax {
		tmax = tzmax
	}

	// return point closest to the ray (positive side)
	if tmax < 0 {
		return Vector3{}, false
	}
	if tmin >= 0 {
		return r.At(tmin), true
	}
	return r.At(tmax), true
}

// IntersectTriangle returns the point at which this ray intersects the
// triangle with the given vertices, or false if it does not intersect.
// If backfaceCulling is true, intersections hitting the back face of the
// triangle (relative to its winding order) are ignored.
func (r Ray) IntersectTriangle(a, b, c Vector3, backfaceCulling bool) (Vector3, bool) {
	// from http://www.geometrictools.com/GTEngine/Include/Mathematics/GteIntrRay3Triangle3.h
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	normal := edge1.Cross(edge2)

	// Solve Q + t*D = b1*E1 + b2*E2 (Q = kDiff, D = ray direction,
	// E1 = kEdge1, E2 = kEdge2, N = Cross(E1,E2)) by
	//   |Dot(D,N)|*b1 = sign(Dot(D,N))*Dot(D,Cross(Q,E2))
	//   |Dot(D,N)|*b2 = sign(Dot(D,N))*Dot(D,Cross(E1,Q))
	//   |Dot(D,N)|*t = -sign(Dot(D,N))*Dot(Q,N)
	DdN := r.Dir.Dot(normal)
	var sign float32
	if DdN > 0 {
		if backfaceCulling {
			return Vector3{}, false
		}
		sign = 1
	} else if DdN < 0 {
		sign = -1
		DdN = -DdN
	} else {
		return Vector3{}, false
	}

	diff := r.Origin.Sub(a)
	DdQxE2 := sign * r.Dir.Dot(diff.Cross(edge2))
	// b1 < 0, no intersection
	if DdQxE2 < 0 {
		return Vector3{}, false
	}
	DdE1xQ := sign * r.Dir.Dot(edge1.Cross(diff))
	// b2 < 0, no intersection
	if DdE1xQ < 0 {
		return Vector3{}, false
	}
	// b1+b2 > 1, no intersection
	if DdQxE2+DdE1xQ > DdN {
		return Vector3{}, false
	}
	// line intersects triangle, check if ray does
	QdN := -sign * diff.Dot(normal)
	// t < 0, no intersection
	if QdN < 0 {
		return Vector3{}, false
	}
	// ray intersects triangle
	return r.At(QdN / DdN), true
}

// MulMatrix4 returns this ray transformed by the given matrix,
// with the direction renormalized.
func (r Ray) MulMatrix4(m *Matrix4) Ray {
	end := r.Dir.Add(r.Origin).MulMatrix4(m)
	origin := r.Origin.MulMatrix4(m)
	return Ray{origin, end.Sub(origin).Normal()}
}
