package geo

import (
	"github.com/paulmach/orb"
)

// Traverse walks the route polyline in order and returns the sequence of
// region codes crossed, deduplicated by adjacency only: a region that is
// visited, left and re-entered appears twice. Points outside every region
// (open water, outside dataset coverage) produce no transition. An empty
// route yields an empty sequence.
func (x *Index) Traverse(route []orb.Point) []string {
	crossed := make([]string, 0, 4)
	current := ""

	for _, point := range route {
		found := ""

		// Fast path: consecutive points usually stay in the same region.
		if current != "" {
			if region, ok := x.regions[current]; ok && contains(region, point) {
				found = current
			}
		}

		if found == "" {
			for _, code := range x.codes {
				if contains(x.regions[code], point) {
					found = code

					break
				}
			}
		}

		if found != "" && found != current {
			crossed = append(crossed, found)
			current = found
		}
	}

	return crossed
}
