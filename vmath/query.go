package vmath

import "math/rand/v2"

// QueryMode selects how Nearby reduces the matching candidates
type QueryMode uint8

const (
	// QueryAll returns every match in candidate order
	QueryAll QueryMode = iota
	// QueryOne returns the first match in candidate order, not the closest
	QueryOne
	// QueryRandom returns one uniformly chosen match
	QueryRandom
)

// AreaWithin enumerates the cells whose truncated distance to center is at most radius
// Cells outside bounds are dropped
func AreaWithin(center Point, radius int, bounds Bounds, includeCenter bool) []Point {
	if radius < 0 {
		return nil
	}
	cells := make([]Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if !WithinRadius(dy, dx, radius) {
				continue
			}
			if dy == 0 && dx == 0 && !includeCenter {
				continue
			}
			p := center.Add(dy, dx)
			if bounds.Contains(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// Disk enumerates every offset cell within radius of center without clipping
func Disk(center Point, radius int) []Point {
	if radius < 0 {
		return nil
	}
	cells := make([]Point, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if WithinRadius(dy, dx, radius) {
				cells = append(cells, center.Add(dy, dx))
			}
		}
	}
	return cells
}

// Nearby filters candidates to those within radius of origin
// Returns nil when nothing matches; QueryOne and QueryRandom return at most one element
// rng is only consulted for QueryRandom
func Nearby[T Locatable](origin Locatable, candidates []T, radius int, mode QueryMode, rng *rand.Rand) []T {
	at := origin.Position()

	if mode == QueryOne {
		for _, c := range candidates {
			if Distance(c.Position(), at) <= radius {
				return []T{c}
			}
		}
		return nil
	}

	var matches []T
	for _, c := range candidates {
		if Distance(c.Position(), at) <= radius {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	switch mode {
	case QueryRandom:
		return []T{matches[rng.IntN(len(matches))]}
	default:
		return matches
	}
}

// NearbyOne returns the first candidate within radius in candidate order
func NearbyOne[T Locatable](origin Locatable, candidates []T, radius int) (T, bool) {
	found := Nearby(origin, candidates, radius, QueryOne, nil)
	if found == nil {
		var zero T
		return zero, false
	}
	return found[0], true
}

// NearbyRandom returns a uniformly chosen candidate within radius
func NearbyRandom[T Locatable](origin Locatable, candidates []T, radius int, rng *rand.Rand) (T, bool) {
	found := Nearby(origin, candidates, radius, QueryRandom, rng)
	if found == nil {
		var zero T
		return zero, false
	}
	return found[0], true
}

// AnyNearby reports whether at least one candidate lies within radius
func AnyNearby[T Locatable](origin Locatable, candidates []T, radius int) bool {
	_, ok := NearbyOne(origin, candidates, radius)
	return ok
}
