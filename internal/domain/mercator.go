package domain

import "math"

// webMercatorHalfCircumference is half the EPSG:3857 world extent in meters.
const webMercatorHalfCircumference = 20037508.34

// MercatorToLatLon inverse-projects a Web Mercator (EPSG:3857) meter pair to
// WGS-84 (EPSG:4326) degrees. The second return value is false when the
// result is non-finite or outside the valid geographic range.
func MercatorToLatLon(x, y float64) (Geo, bool) {
	lon := (x / webMercatorHalfCircumference) * 180
	lat := (math.Atan(math.Exp((y/webMercatorHalfCircumference)*math.Pi))*360)/math.Pi - 90

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Geo{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Geo{}, false
	}
	return Geo{Lat: lat, Lon: lon}, true
}

// ReprojectMercator parses raw x/y strings through [ParseNumber] and
// inverse-projects them. Either value being absent makes the whole location
// absent.
func ReprojectMercator(xRaw, yRaw string) (Geo, bool) {
	x, okX := ParseNumber(xRaw)
	y, okY := ParseNumber(yRaw)
	if !okX || !okY {
		return Geo{}, false
	}
	return MercatorToLatLon(x, y)
}
