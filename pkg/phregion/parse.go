package phregion

import (
	"strconv"
	"strings"
)

// aliases contains the accepted normalized spellings of each region. The
// first alias of the numbered regions is the roman numeral.
//
// Note that "4" is Calabarzon. Mimaropa must be written as "4b" or "ivb".
var aliases = map[Region][]string{
	NCR:        {"ncr", "national_capital_region", "ncr_national_capital_region"},
	CAR:        {"car", "cordillera_administrative_region", "car_cordillera_administrative_region"},
	RegionI:    {"i", "ilocos_region", "region_i_ilocos_region", "region_i", "1", "region_1"},
	RegionII:   {"ii", "cagayan_valley", "region_ii_cagayan_valley", "region_ii", "2", "region_2"},
	RegionIII:  {"iii", "central_luzon", "region_iii_central_luzon", "region_iii", "3", "region_3"},
	RegionIVA:  {"iva", "calabarzon", "region_iva_calabarzon", "region_iva", "4", "region_4", "4a", "region_4a"},
	RegionIVB:  {"ivb", "mimaropa", "region_ivb_mimaropa", "region_ivb", "4b", "region_4b"},
	RegionV:    {"v", "bicol_region", "region_v_bicol_region", "region_v", "5", "region_5"},
	RegionVI:   {"vi", "western_visayas", "region_vi_western_visayas", "region_vi", "6", "region_6"},
	RegionVII:  {"vii", "central_visayas", "region_vii_central_visayas", "region_vii", "7", "region_7"},
	RegionVIII: {"viii", "eastern_visayas", "region_viii_eastern_visayas", "region_viii", "8", "region_8"},
	RegionIX:   {"ix", "zamboanga_peninsula", "region_ix_zamboanga_peninsula", "region_ix", "9", "region_9"},
	RegionX:    {"x", "northern_mindanao", "region_x_northern_mindanao", "region_x", "10", "region_10"},
	RegionXI:   {"xi", "davao_region", "region_xi_davao_region", "region_xi", "11", "region_11"},
	RegionXII:  {"xii", "soccsksargen", "region_xii_soccsksargen", "region_xii", "12", "region_12"},
	RegionXIII: {"xiii", "caraga_region", "region_xiii_caraga_region", "region_xiii", "13", "region_13"},
	BARMM:      {"barmm", "bangsamoro_autonomous_region_in_muslim_mindanao", "barmm_bangsamoro_autonomous_region_in_muslim_mindanao"},
}

// aliasIndex maps every normalized alias to its region. It is never modified
// after initialization.
var aliasIndex = func() map[string]Region {
	m := map[string]Region{}
	for _, r := range Regions() {
		for _, a := range aliases[r] {
			if x, dup := m[a]; dup {
				panic("phregion: alias " + a + " used by both " + x.GoString() + " and " + r.GoString())
			}
			m[a] = r
		}
	}
	return m
}()

// Normalize normalizes s for matching against region aliases by trimming
// surrounding whitespace, lowercasing, replacing spaces with underscores, and
// removing parentheses.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	return s
}

// Parse parses a region from a code, roman numeral, name, or a combination of
// them (e.g., "7", "vii", "Region VII", "Central Visayas", "(Region VII)
// Central Visayas"). Matching is case-insensitive and exact after
// normalization; partial names are not accepted.
func Parse(s string) (Region, bool) {
	r, ok := aliasIndex[Normalize(s)]
	return r, ok
}

// MustParse is like Parse, but panics if s is not a known region.
func MustParse(s string) Region {
	r, ok := Parse(s)
	if !ok {
		panic("phregion: unknown region " + strconv.Quote(s))
	}
	return r
}

// Aliases returns a copy of the normalized spellings accepted by Parse for r,
// or nil if r is unknown.
func Aliases(r Region) []string {
	a, ok := aliases[r]
	if !ok {
		return nil
	}
	return append([]string(nil), a...)
}
