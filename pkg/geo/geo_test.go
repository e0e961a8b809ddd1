package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.Zero(t, DistanceKm(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestDistanceKm_SydneyToMelbourne(t *testing.T) {
	d := DistanceKm(-33.8688, 151.2093, -37.8136, 144.9631)
	assert.InDelta(t, 713, d, 10)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := DistanceKm(-33.8688, 151.2093, -37.8136, 144.9631)
	b := DistanceKm(-37.8136, 144.9631, -33.8688, 151.2093)
	assert.InDelta(t, a, b, 1e-9)
}
