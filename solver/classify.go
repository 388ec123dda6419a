// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/sketchsolve/constraint"
)

// classify applies the second-derivative test to every point. Missing
// entries count as zero, so a point no constraint touches is Under.
func classify(res constraint.Result, points []constraint.Point, tol float64) map[constraint.Point]Status {
	out := make(map[constraint.Point]Status, len(points))
	for _, p := range points {
		out[p] = rigidity(res.Dfdxx[p.X], res.Dfdxx[p.Y], res.Dfdxy[p], tol)
	}

	return out
}

// rigidity is Under when h = fxx·fyy - fxy² is within tol of the squared
// curvature scale (|fxx|+|fyy|)².
func rigidity(fxx, fyy, fxy, tol float64) Status {
	h := fxx*fyy - fxy*fxy
	scale := math.Abs(fxx) + math.Abs(fyy)
	if math.Abs(h) <= tol*scale*scale {
		return Under
	}

	return Stable
}
