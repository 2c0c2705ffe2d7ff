package geo_test

import (
	"math"
	"testing"

	"staffmis_backend/geo"

	"github.com/stretchr/testify/assert"
)

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{26.8467, 80.9462, 28.6139, 77.2090},
		{0, 0, 51.5074, -0.1278},
		{-33.8688, 151.2093, 40.7128, -74.0060},
	}
	for _, p := range pairs {
		ab := geo.Haversine(p[0], p[1], p[2], p[3])
		ba := geo.Haversine(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestHaversineIdenticalPoints(t *testing.T) {
	d := geo.Haversine(26.8467, 80.9462, 26.8467, 80.9462)
	assert.InDelta(t, 0, d, 1e-6)
}

func TestHaversineOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is about 111.195 km.
	d := geo.Haversine(0, 0, 0, 1)
	assert.InDelta(t, 111195, d, 50)
}

func TestHaversineAntipodal(t *testing.T) {
	d := geo.Haversine(0, 0, 0, 180)
	assert.False(t, math.IsNaN(d))
	// Half the Earth's circumference.
	assert.InDelta(t, math.Pi*geo.EarthRadiusMeters, d, 1)
}

func TestWithinFence(t *testing.T) {
	// Office with a 10 m radius: the exact office point passes.
	ok, d := geo.WithinFence(26.8467, 80.9462, 26.8467, 80.9462, 10)
	assert.True(t, ok)
	assert.InDelta(t, 0, d, 1e-6)

	// A point roughly 1 km north fails and the distance is reported.
	ok, d = geo.WithinFence(26.8557, 80.9462, 26.8467, 80.9462, 10)
	assert.False(t, ok)
	assert.InDelta(t, 1000, d, 15)
}

func TestWithinFenceBoundaryInclusive(t *testing.T) {
	d := geo.Haversine(0, 0, 0, 0.001)
	ok, _ := geo.WithinFence(0, 0.001, 0, 0, d)
	assert.True(t, ok)
}
