// Package astro provides the small set of angular unit conversions the
// object catalog needs. Cone-search radii arrive in arcseconds but the q3c
// database functions take degrees.
package astro

// ArcsecPerDeg is the number of arcseconds in one degree.
const ArcsecPerDeg = 3600.0

// ArcsecToDeg converts an angle from arcseconds to degrees.
func ArcsecToDeg(arcsec float64) float64 {
	return arcsec / ArcsecPerDeg
}

// DegToArcsec converts an angle from degrees to arcseconds.
func DegToArcsec(deg float64) float64 {
	return deg * ArcsecPerDeg
}
