package geom

// Hilbert curve index mapping on a 2^order x 2^order grid, closed form in
// both directions. Used by overlays that want space-filling traversal
// without storing the whole path.

// HilbertPoint maps a distance d along the curve to grid coordinates.
// d wraps modulo the curve length, so any non-negative index is valid.
func HilbertPoint(order, d int) (x, y int) {
	side := 1 << order
	total := side * side
	if total <= 0 {
		return 0, 0
	}
	t := d % total
	if t < 0 {
		t += total
	}

	for s := 1; s < side; s <<= 1 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = hilbertRotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return x, y
}

// HilbertIndex is the inverse of HilbertPoint for in-grid coordinates.
func HilbertIndex(order, x, y int) int {
	d := 0
	for s := (1 << order) / 2; s > 0; s /= 2 {
		rx, ry := 0, 0
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = hilbertRotate(s, x, y, rx, ry)
	}
	return d
}

func hilbertRotate(s, x, y, rx, ry int) (int, int) {
	if ry == 0 {
		if rx == 1 {
			x = s - 1 - x
			y = s - 1 - y
		}
		x, y = y, x
	}
	return x, y
}
