// Package regionmap maps IP address location info to Philippine regions.
//
// The region is determined from the IP2Location region field if it names a
// region directly, and otherwise from the coordinates of the record, which are
// matched against the nearest regional center. IP2Location usually reports a
// province in the region field for the Philippines, so the coordinates are
// what is used most of the time.
package regionmap

import (
	"errors"
	"fmt"
	"math"
	"net/netip"

	"github.com/pg9182/ip2x"
	"github.com/phregion/phregion/pkg/phregion"
)

var (
	// ErrLocal is returned for private addresses.
	ErrLocal = errors.New("private address")

	// ErrNotPhilippines is returned for addresses outside the Philippines.
	ErrNotPhilippines = errors.New("not in the philippines")
)

// Record contains the IP2Location fields used by GetRegion. It is implemented
// by [ip2x.Record].
type Record interface {
	GetString(ip2x.DBField) (string, bool)
	GetFloat32(ip2x.DBField) (float32, bool)
}

var _ Record = ip2x.Record{}

// GetRegion gets the region for the provided IP address and IP2Location
// record. The IP2Location record should have at least the CountryShort field,
// and either the Region or the Latitude/Longitude fields.
func GetRegion(ip netip.Addr, r Record) (phregion.Region, error) {
	// RFC 1918/4193
	if ip.IsPrivate() || ip.IsLoopback() {
		return "", ErrLocal
	}

	country, ok := r.GetString(ip2x.CountryCode)
	if !ok {
		return "", fmt.Errorf("missing country field in ip2location data")
	}
	if country != "PH" {
		return "", fmt.Errorf("%w (country %q)", ErrNotPhilippines, country)
	}

	if region, ok := r.GetString(ip2x.Region); ok && region != "" {
		if x, ok := regionName(region); ok {
			return x, nil
		}
	}

	lat, ok1 := r.GetFloat32(ip2x.Latitude)
	lng, ok2 := r.GetFloat32(ip2x.Longitude)
	if !ok1 || !ok2 {
		return "", fmt.Errorf("missing region and latlon fields in ip2location data")
	}
	if lat == 0 && lng == 0 {
		return "", fmt.Errorf("unknown location in ip2location data")
	}
	if !finite(lat) || !finite(lng) {
		return "", fmt.Errorf("invalid latlon (%v, %v) in ip2location data", lat, lng)
	}
	return phregion.Nearest(float64(lat), float64(lng)), nil
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// regionName parses a region name as returned by IP2Location.
func regionName(s string) (phregion.Region, bool) {
	if r, ok := phregion.Parse(s); ok {
		return r, true
	}
	// names which aren't region aliases, but are used by location databases
	switch phregion.Normalize(s) {
	case "metro_manila", "metropolitan_manila":
		return phregion.NCR, true
	case "autonomous_region_in_muslim_mindanao", "armm", "bangsamoro":
		return phregion.BARMM, true
	case "calabarzon_region", "southern_tagalog_mainland":
		return phregion.RegionIVA, true
	case "mimaropa_region", "southwestern_tagalog_region":
		return phregion.RegionIVB, true
	}
	return "", false
}
