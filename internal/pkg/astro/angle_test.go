package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArcsecToDeg(t *testing.T) {
	assert.InDelta(t, 1.0, ArcsecToDeg(3600), 1e-12)
	assert.InDelta(t, 0.5, ArcsecToDeg(1800), 1e-12)
	assert.InDelta(t, 30.0/3600.0, ArcsecToDeg(30), 1e-12)
	assert.Zero(t, ArcsecToDeg(0))
}

func TestArcsecToDegMonotonic(t *testing.T) {
	radii := []float64{0.1, 1, 10, 30, 120, 3600}
	for i := 1; i < len(radii); i++ {
		assert.Less(t, ArcsecToDeg(radii[i-1]), ArcsecToDeg(radii[i]))
	}
}

func TestArcsecDegRoundTrip(t *testing.T) {
	for _, arcsec := range []float64{0.5, 1, 30, 3600, 7200} {
		assert.InDelta(t, arcsec, DegToArcsec(ArcsecToDeg(arcsec)), 1e-9)
	}
}
