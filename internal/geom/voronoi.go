package geom

import "math"

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Segment is a finite line segment between two points.
type Segment struct {
	A, B Point
}

const voronoiEps = 1e-9

// VoronoiEdges reconstructs the Voronoi diagram of sites inside the
// [0,width]x[0,height] box by brute force: for every pair of sites the
// perpendicular bisector is clipped first against the box, then against
// the half-plane of every other site; whatever survives is a cell edge.
// O(n^3), fine for the handful of sites overlays use.
func VoronoiEdges(sites []Point, width, height float64) []Segment {
	var edges []Segment

	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			a, b := sites[i], sites[j]
			dx, dy := b.X-a.X, b.Y-a.Y
			if math.Abs(dx) < voronoiEps && math.Abs(dy) < voronoiEps {
				continue // coincident sites share no bisector
			}

			mid := Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
			dir := Point{-dy, dx} // perpendicular to a->b

			t0, t1, ok := clipLineToBox(mid, dir, width, height)
			if !ok {
				continue
			}

			for k := 0; k < len(sites) && t0 < t1; k++ {
				if k == i || k == j {
					continue
				}
				t0, t1, ok = clipLineToHalfPlane(mid, dir, a, sites[k], t0, t1)
				if !ok {
					break
				}
			}
			if !ok || t1-t0 < voronoiEps {
				continue
			}

			edges = append(edges, Segment{
				A: Point{mid.X + t0*dir.X, mid.Y + t0*dir.Y},
				B: Point{mid.X + t1*dir.X, mid.Y + t1*dir.Y},
			})
		}
	}
	return edges
}

// clipLineToBox intersects the parametric line p + t*d with the box and
// returns the surviving parameter interval.
func clipLineToBox(p, d Point, width, height float64) (float64, float64, bool) {
	t0, t1 := math.Inf(-1), math.Inf(1)

	clip := func(origin, dir, lo, hi float64) bool {
		if math.Abs(dir) < voronoiEps {
			return origin >= lo-voronoiEps && origin <= hi+voronoiEps
		}
		ta := (lo - origin) / dir
		tb := (hi - origin) / dir
		if ta > tb {
			ta, tb = tb, ta
		}
		if ta > t0 {
			t0 = ta
		}
		if tb < t1 {
			t1 = tb
		}
		return t0 <= t1
	}

	if !clip(p.X, d.X, 0, width) {
		return 0, 0, false
	}
	if !clip(p.Y, d.Y, 0, height) {
		return 0, 0, false
	}
	return t0, t1, t0 <= t1
}

// clipLineToHalfPlane keeps the part of the interval where points on the
// line p + t*d are at least as close to near as to far.
func clipLineToHalfPlane(p, d, near, far Point, t0, t1 float64) (float64, float64, bool) {
	// The boundary is the bisector of near/far; closer-to-near means
	// (q - m) . (far - near) <= 0 with m the midpoint.
	m := Point{(near.X + far.X) / 2, (near.Y + far.Y) / 2}
	n := Point{far.X - near.X, far.Y - near.Y}

	// f(t) = (p + t*d - m) . n, linear in t.
	c := (p.X-m.X)*n.X + (p.Y-m.Y)*n.Y
	slope := d.X*n.X + d.Y*n.Y

	if math.Abs(slope) < voronoiEps {
		if c > voronoiEps {
			return 0, 0, false // the whole line lies in far's territory
		}
		return t0, t1, true
	}

	tc := -c / slope
	if slope > 0 {
		// f increases with t; keep t <= tc.
		if tc < t1 {
			t1 = tc
		}
	} else {
		if tc > t0 {
			t0 = tc
		}
	}
	return t0, t1, t0 <= t1
}
