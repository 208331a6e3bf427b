// Package matcher decides which fires fall inside which interest points.
package matcher

import (
	"go-ignis/geo"
	"go-ignis/types"
)

// Match filters the fire set against every interest point and groups the
// hits by owning user, preserving interest-point iteration order within each
// user. An interest point with no fire inside its radius contributes
// nothing. A fire exactly on the radius counts as inside.
//
// O(interestPoints x fires) per cycle, which is fine at a few hundred fires
// and tens of interest points. The distance check is a pure function, so an
// indexed implementation could replace this without changing the contract.
func Match(fires []types.FirePoint, points []types.InterestPoint) map[string][]types.Match {
	matches := make(map[string][]types.Match)

	for _, p := range points {
		var inside []types.FirePoint
		for _, f := range fires {
			if geo.DistanceKM(f.Latitude, f.Longitude, p.Lat, p.Lng) <= p.RadiusKM {
				inside = append(inside, f)
			}
		}
		if len(inside) > 0 {
			matches[p.UserID] = append(matches[p.UserID], types.Match{Point: p, Fires: inside})
		}
	}

	return matches
}
