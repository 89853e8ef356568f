// Package phregion contains the administrative regions of the Philippines.
//
// The set of regions is closed. Each region has a short lowercase code (which
// is also the underlying value of [Region]), an abbreviation, a name, and a
// full name. Regions can be recovered from most common spellings using
// [Parse].
package phregion

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownRegion is returned when text does not match any region.
var ErrUnknownRegion = errors.New("unknown region")

// Region is a first-level administrative region. The underlying value is the
// region code.
type Region string

const (
	NCR        Region = "ncr"
	CAR        Region = "car"
	RegionI    Region = "1"
	RegionII   Region = "2"
	RegionIII  Region = "3"
	RegionIVA  Region = "4a"
	RegionIVB  Region = "4b"
	RegionV    Region = "5"
	RegionVI   Region = "6"
	RegionVII  Region = "7"
	RegionVIII Region = "8"
	RegionIX   Region = "9"
	RegionX    Region = "10"
	RegionXI   Region = "11"
	RegionXII  Region = "12"
	RegionXIII Region = "13"
	BARMM      Region = "barmm"
)

// Regions gets all regions in declaration order. A new slice is returned
// every time.
func Regions() []Region {
	return []Region{
		NCR,
		CAR,
		RegionI,
		RegionII,
		RegionIII,
		RegionIVA,
		RegionIVB,
		RegionV,
		RegionVI,
		RegionVII,
		RegionVIII,
		RegionIX,
		RegionX,
		RegionXI,
		RegionXII,
		RegionXIII,
		BARMM,
	}
}

// GoString gets the region in Go syntax.
func (r Region) GoString() string {
	return "Region(" + strconv.Quote(string(r)) + ")"
}

// SourceString gets the raw region value.
func (r Region) SourceString() string {
	return string(r)
}

// Known checks if r is one of the defined regions.
func (r Region) Known() bool {
	_, ok := r.Title()
	return ok
}

// String returns the display form of known regions (see [Region.Display]),
// or the raw value.
func (r Region) String() string {
	if r.Known() {
		return r.Display()
	}
	return r.SourceString()
}

// Title returns the name of known regions.
func (r Region) Title() (string, bool) {
	if n := r.Name(); n != "" {
		return n, true
	}
	return "", false
}

// Display formats the region as "(abbrev) name".
//
// Note that this is not always the same as FullName, which spells the
// numbered Calabarzon and Mimaropa regions without the hyphen.
func (r Region) Display() string {
	return "(" + r.Abbrev() + ") " + r.Name()
}

// Code returns the short lowercase region code, or an empty string if the
// region is unknown.
func (r Region) Code() string {
	if r.Name() == "" {
		return ""
	}
	return string(r)
}

// Abbrev returns the display abbreviation (e.g., "NCR", "Region IV-A").
func (r Region) Abbrev() string {
	switch r {
	case NCR:
		return "NCR"
	case CAR:
		return "CAR"
	case RegionI:
		return "Region I"
	case RegionII:
		return "Region II"
	case RegionIII:
		return "Region III"
	case RegionIVA:
		return "Region IV-A"
	case RegionIVB:
		return "Region IV-B"
	case RegionV:
		return "Region V"
	case RegionVI:
		return "Region VI"
	case RegionVII:
		return "Region VII"
	case RegionVIII:
		return "Region VIII"
	case RegionIX:
		return "Region IX"
	case RegionX:
		return "Region X"
	case RegionXI:
		return "Region XI"
	case RegionXII:
		return "Region XII"
	case RegionXIII:
		return "Region XIII"
	case BARMM:
		return "BARMM"
	}
	return ""
}

// Name returns the English name of the region.
func (r Region) Name() string {
	switch r {
	case NCR:
		return "National Capital Region"
	case CAR:
		return "Cordillera Administrative Region"
	case RegionI:
		return "Ilocos Region"
	case RegionII:
		return "Cagayan Valley"
	case RegionIII:
		return "Central Luzon"
	case RegionIVA:
		return "CALABARZON"
	case RegionIVB:
		return "MIMAROPA"
	case RegionV:
		return "Bicol Region"
	case RegionVI:
		return "Western Visayas"
	case RegionVII:
		return "Central Visayas"
	case RegionVIII:
		return "Eastern Visayas"
	case RegionIX:
		return "Zamboanga Peninsula"
	case RegionX:
		return "Northern Mindanao"
	case RegionXI:
		return "Davao Region"
	case RegionXII:
		return "SOCCSKSARGEN"
	case RegionXIII:
		return "Caraga Region"
	case BARMM:
		return "Bangsamoro Autonomous Region in Muslim Mindanao"
	}
	return ""
}

// FullName returns the abbreviation and name (e.g., "(Region IVA) CALABARZON").
func (r Region) FullName() string {
	switch r {
	case NCR:
		return "(NCR) National Capital Region"
	case CAR:
		return "(CAR) Cordillera Administrative Region"
	case RegionI:
		return "(Region I) Ilocos Region"
	case RegionII:
		return "(Region II) Cagayan Valley"
	case RegionIII:
		return "(Region III) Central Luzon"
	case RegionIVA:
		return "(Region IVA) CALABARZON"
	case RegionIVB:
		return "(Region IVB) MIMAROPA"
	case RegionV:
		return "(Region V) Bicol Region"
	case RegionVI:
		return "(Region VI) Western Visayas"
	case RegionVII:
		return "(Region VII) Central Visayas"
	case RegionVIII:
		return "(Region VIII) Eastern Visayas"
	case RegionIX:
		return "(Region IX) Zamboanga Peninsula"
	case RegionX:
		return "(Region X) Northern Mindanao"
	case RegionXI:
		return "(Region XI) Davao Region"
	case RegionXII:
		return "(Region XII) SOCCSKSARGEN"
	case RegionXIII:
		return "(Region XIII) Caraga Region"
	case BARMM:
		return "(BARMM) Bangsamoro Autonomous Region in Muslim Mindanao"
	}
	return ""
}

// MarshalText implements [encoding.TextMarshaler]. Unknown regions cannot be
// marshaled.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Known() {
		return nil, fmt.Errorf("marshal %q: %w", string(r), ErrUnknownRegion)
	}
	return []byte(r), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Any text accepted by
// Parse is accepted.
func (r *Region) UnmarshalText(b []byte) error {
	v, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unmarshal %q: %w", string(b), ErrUnknownRegion)
	}
	*r = v
	return nil
}
