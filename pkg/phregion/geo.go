package phregion

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

type center struct {
	name     string
	lat, lng float64
}

// centers contains the regional center (seat of the regional government) of
// each region, with approximate coordinates of the city proper.
var centers = map[Region]center{
	NCR:        {"Manila", 14.5995, 120.9842},
	CAR:        {"Baguio", 16.4023, 120.5960},
	RegionI:    {"San Fernando, La Union", 16.6159, 120.3166},
	RegionII:   {"Tuguegarao", 17.6132, 121.7270},
	RegionIII:  {"San Fernando, Pampanga", 15.0286, 120.6898},
	RegionIVA:  {"Calamba", 14.2117, 121.1653},
	RegionIVB:  {"Calapan", 13.4117, 121.1803},
	RegionV:    {"Legazpi", 13.1391, 123.7438},
	RegionVI:   {"Iloilo City", 10.7202, 122.5621},
	RegionVII:  {"Cebu City", 10.3157, 123.8854},
	RegionVIII: {"Tacloban", 11.2444, 125.0039},
	RegionIX:   {"Pagadian", 7.8257, 123.4370},
	RegionX:    {"Cagayan de Oro", 8.4542, 124.6319},
	RegionXI:   {"Davao City", 7.1907, 125.4553},
	RegionXII:  {"Koronadal", 6.5008, 124.8469},
	RegionXIII: {"Butuan", 8.9475, 125.5406},
	BARMM:      {"Cotabato City", 7.2236, 124.2464},
}

// Center returns the regional center and its coordinates. If the region is
// unknown, ok is false.
func (r Region) Center() (name string, lat, lng float64, ok bool) {
	c, ok := centers[r]
	return c.name, c.lat, c.lng, ok
}

// Geohash returns the geohash of the regional center with the specified number
// of characters (1-12), or an empty string if the region is unknown.
func (r Region) Geohash(chars uint) string {
	c, ok := centers[r]
	if !ok {
		return ""
	}
	return geohash.EncodeWithPrecision(c.lat, c.lng, chars)
}

// Nearest returns the region with the closest regional center to the
// specified coordinates. It always returns a known region, even if the
// coordinates are outside the country. If either coordinate is NaN or
// infinite, NCR is returned.
func Nearest(lat, lng float64) Region {
	rs := Regions()
	var (
		best  = rs[0]
		bestD = math.Inf(1)
	)
	for _, r := range rs {
		c := centers[r]
		if d := haversine(lat, lng, c.lat, c.lng); d < bestD {
			best, bestD = r, d
		}
	}
	return best
}

// haversine returns the great-circle distance in kilometers.
func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadius = 6371.0
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dlat, dlng := rad(lat2-lat1), rad(lng2-lng1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dlng/2)*math.Sin(dlng/2)
	return 2 * earthRadius * math.Asin(math.Sqrt(a))
}
