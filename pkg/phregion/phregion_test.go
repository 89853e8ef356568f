package phregion

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegions(t *testing.T) {
	a, b := Regions(), Regions()
	if len(a) != 17 {
		t.Fatalf("expected 17 regions, got %d", len(a))
	}
	if a[0] != NCR || a[len(a)-1] != BARMM {
		t.Errorf("expected regions to start with NCR and end with BARMM, got %#v ... %#v", a[0], a[len(a)-1])
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("regions not stable between calls (-first +second):\n%s", diff)
	}
	a[0] = BARMM
	if Regions()[0] != NCR {
		t.Errorf("modifying the returned slice changed the regions")
	}
}

func TestRegion(t *testing.T) {
	var dummy Region = "__nonexistent__"
	if dummy.GoString() != `Region("__nonexistent__")` {
		t.Error("incorrect GoString output for nonexistent region")
	}
	if dummy.String() != "__nonexistent__" {
		t.Error("incorrect String output for nonexistent region")
	}
	if dummy.SourceString() != "__nonexistent__" {
		t.Error("incorrect SourceString output for nonexistent region")
	}
	if dummy.Known() {
		t.Error("known should not return true for nonexistent region")
	}
	if x, ok := dummy.Title(); x != "" || ok {
		t.Error("incorrect Title output for nonexistent region")
	}
	if dummy.Code() != "" || dummy.Abbrev() != "" || dummy.Name() != "" || dummy.FullName() != "" {
		t.Error("attributes should be empty for nonexistent region")
	}
	if _, _, _, ok := dummy.Center(); ok || dummy.Geohash(5) != "" {
		t.Error("center should not exist for nonexistent region")
	}
	if Aliases(dummy) != nil {
		t.Error("aliases should be nil for nonexistent region")
	}

	seen := map[string]Region{}
	for _, r := range Regions() {
		if r.Code() == "" || r.Abbrev() == "" || r.Name() == "" || r.FullName() == "" {
			t.Errorf("%#v: missing attribute", r)
		}
		if x, dup := seen[r.Code()]; dup {
			t.Errorf("%#v: code %q already used by %#v", r, r.Code(), x)
		}
		seen[r.Code()] = r

		if r.GoString() != fmt.Sprintf("Region(%q)", string(r)) {
			t.Errorf("%#v: incorrect GoString output", r)
		}
		if r.SourceString() != r.Code() {
			t.Errorf("%#v: code should be the raw value", r)
		}
		if !r.Known() {
			t.Errorf("%#v: known should return true", r)
		}
		if x, ok := r.Title(); x != r.Name() || !ok {
			t.Errorf("%#v: incorrect Title output", r)
		}
		if r.String() != r.Display() {
			t.Errorf("%#v: String should be the display form", r)
		}
		if _, _, _, ok := r.Center(); !ok {
			t.Errorf("%#v: missing center", r)
		}
		if len(Aliases(r)) == 0 {
			t.Errorf("%#v: missing aliases", r)
		}
	}
}

func TestDisplay(t *testing.T) {
	for _, c := range []struct {
		r        Region
		display  string
		fullName string
	}{
		{NCR, "(NCR) National Capital Region", "(NCR) National Capital Region"},
		{CAR, "(CAR) Cordillera Administrative Region", "(CAR) Cordillera Administrative Region"},
		{RegionIVA, "(Region IV-A) CALABARZON", "(Region IVA) CALABARZON"},
		{RegionIVB, "(Region IV-B) MIMAROPA", "(Region IVB) MIMAROPA"},
		{RegionVII, "(Region VII) Central Visayas", "(Region VII) Central Visayas"},
		{BARMM, "(BARMM) Bangsamoro Autonomous Region in Muslim Mindanao", "(BARMM) Bangsamoro Autonomous Region in Muslim Mindanao"},
	} {
		if act := c.r.Display(); act != c.display {
			t.Errorf("%#v: expected display %q, got %q", c.r, c.display, act)
		}
		if act := fmt.Sprint(c.r); act != c.display {
			t.Errorf("%#v: expected formatted %q, got %q", c.r, c.display, act)
		}
		if act := c.r.FullName(); act != c.fullName {
			t.Errorf("%#v: expected full name %q, got %q", c.r, c.fullName, act)
		}
	}
}

func TestParse(t *testing.T) {
	for _, c := range []struct {
		in string
		r  Region
		ok bool
	}{
		{"ncr", NCR, true},
		{"CAR", CAR, true},
		{"  CaR ", CAR, true},
		{"Cordillera Administrative Region", CAR, true},
		{"(CAR) Cordillera Administrative Region", CAR, true},
		{"1", RegionI, true},
		{"region_ii", RegionII, true},
		{"3", RegionIII, true},
		{"4", RegionIVA, true},
		{"4a", RegionIVA, true},
		{"region_iva", RegionIVA, true},
		{"(Region IVA) CALABARZON", RegionIVA, true},
		{"region ivb", RegionIVB, true},
		{"4b", RegionIVB, true},
		{"ivb", RegionIVB, true},
		{"Region 4B", RegionIVB, true},
		{"  5  ", RegionV, true},
		{"region_vi", RegionVI, true},
		{"Region VII", RegionVII, true},
		{"region_vii", RegionVII, true},
		{"8", RegionVIII, true},
		{"IX", RegionIX, true},
		{"10", RegionX, true},
		{"11", RegionXI, true},
		{"12", RegionXII, true},
		{"13", RegionXIII, true},
		{"barmm", BARMM, true},
		{"Bangsamoro Autonomous Region in Muslim Mindanao", BARMM, true},
		{"invalid", "", false},
		{"", "", false},
		{"   ", "", false},
		{"99", "", false},
		{"iv", "", false},
		{"region", "", false},
		{"central", "", false},
		{"cordillera", "", false},
		{"region_ivb_calabarzon", "", false},
		{"Region IV-A", "", false},
		{"national\tcapital\tregion", "", false},
	} {
		r, ok := Parse(c.in)
		if r != c.r || ok != c.ok {
			t.Errorf("parse %q: expected (%#v, %t), got (%#v, %t)", c.in, c.r, c.ok, r, ok)
		}
	}
}

func TestParseScenario(t *testing.T) {
	r, ok := Parse("region_vii")
	if !ok || r != RegionVII {
		t.Fatalf("expected Region VII, got (%#v, %t)", r, ok)
	}
	if r.Abbrev() != "Region VII" {
		t.Errorf("incorrect abbreviation %q", r.Abbrev())
	}
	if r.Name() != "Central Visayas" {
		t.Errorf("incorrect name %q", r.Name())
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, r := range Regions() {
		for _, s := range []string{r.Code(), r.Name(), r.FullName(), r.Display(), string(r)} {
			if s == r.Display() && (r == RegionIVA || r == RegionIVB) {
				continue // hyphenated abbreviations aren't aliases
			}
			if x, ok := Parse(s); !ok || x != r {
				t.Errorf("%#v: parse %q: got (%#v, %t)", r, s, x, ok)
			}
		}
		for _, a := range Aliases(r) {
			if Normalize(a) != a {
				t.Errorf("%#v: alias %q is not normalized", r, a)
			}
			if x, ok := Parse(a); !ok || x != r {
				t.Errorf("%#v: parse alias %q: got (%#v, %t)", r, a, x, ok)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	for _, c := range [][2]string{
		{"", ""},
		{"NCR", "ncr"},
		{"  Region VII  ", "region_vii"},
		{"(Region IVA) CALABARZON", "region_iva_calabarzon"},
		{"((x))", "x"},
		{"a  b", "a__b"},
	} {
		if act := Normalize(c[0]); act != c[1] {
			t.Errorf("normalize %#q: expected %#q, got %#q", c[0], c[1], act)
		}
	}
}

func TestMustParse(t *testing.T) {
	if r := MustParse("Central Visayas"); r != RegionVII {
		t.Errorf("expected %#v, got %#v", RegionVII, r)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown region")
		}
	}()
	MustParse("invalid")
}

func TestCatalog(t *testing.T) {
	if diff := cmp.Diff([]string{
		"ncr", "car", "1", "2", "3", "4a", "4b", "5", "6", "7", "8", "9", "10", "11", "12", "13", "barmm",
	}, Codes()); diff != "" {
		t.Errorf("incorrect codes (-expected +actual):\n%s", diff)
	}
	if diff := cmp.Diff([]string{
		"NCR", "CAR", "Region I", "Region II", "Region III", "Region IV-A", "Region IV-B", "Region V",
		"Region VI", "Region VII", "Region VIII", "Region IX", "Region X", "Region XI", "Region XII",
		"Region XIII", "BARMM",
	}, Abbrevs()); diff != "" {
		t.Errorf("incorrect abbreviations (-expected +actual):\n%s", diff)
	}

	names := Names()
	if len(names) != 17 || names[0] != "National Capital Region" || names[1] != "Cordillera Administrative Region" {
		t.Errorf("incorrect names %q", names)
	}

	list := List()
	if len(list) != 17 {
		t.Errorf("expected 17 entries, got %d", len(list))
	}
	if v := list["ncr"]; v != "National Capital Region" {
		t.Errorf("incorrect ncr entry %q", v)
	}
	if v := list["car"]; v != "Cordillera Administrative Region" {
		t.Errorf("incorrect car entry %q", v)
	}

	full := ListByFullName()
	if len(full) != 17 {
		t.Errorf("expected 17 entries, got %d", len(full))
	}
	if v := full["ncr"]; v != "(NCR) National Capital Region" {
		t.Errorf("incorrect ncr entry %q", v)
	}
	if v := full["car"]; v != "(CAR) Cordillera Administrative Region" {
		t.Errorf("incorrect car entry %q", v)
	}
	if v := full["4a"]; v != "(Region IVA) CALABARZON" {
		t.Errorf("incorrect 4a entry %q", v)
	}
}

func TestText(t *testing.T) {
	var v struct {
		Region Region `json:"region"`
	}
	if err := json.Unmarshal([]byte(`{"region":"Central Visayas"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Region != RegionVII {
		t.Errorf("expected %#v, got %#v", RegionVII, v.Region)
	}
	if buf, err := json.Marshal(v); err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if string(buf) != `{"region":"7"}` {
		t.Errorf("incorrect json %s", buf)
	}

	if err := json.Unmarshal([]byte(`{"region":"nowhere"}`), &v); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("expected unknown region error, got %v", err)
	}
	if _, err := Region("nowhere").MarshalText(); !errors.Is(err, ErrUnknownRegion) {
		t.Errorf("expected unknown region error, got %v", err)
	}
}

func TestNearest(t *testing.T) {
	for _, r := range Regions() {
		_, lat, lng, _ := r.Center()
		if x := Nearest(lat, lng); x != r {
			t.Errorf("%#v: nearest to own center is %#v", r, x)
		}
	}
	for _, c := range []struct {
		name     string
		lat, lng float64
		r        Region
	}{
		{"Quezon City", 14.6760, 121.0437, NCR},
		{"Zamboanga City", 6.9214, 122.0790, RegionIX},
		{"Vigan", 17.5747, 120.3869, RegionI},
		{"Mandaue", 10.3236, 123.9223, RegionVII},
	} {
		if x := Nearest(c.lat, c.lng); x != c.r {
			t.Errorf("%s: expected %#v, got %#v", c.name, c.r, x)
		}
	}
}

func TestGeohash(t *testing.T) {
	if h := NCR.Geohash(5); len(h) != 5 || h[:2] != "wd" {
		t.Errorf("incorrect geohash %q for NCR", h)
	}
	for _, r := range Regions() {
		if h := r.Geohash(1); h != "w" {
			t.Errorf("%#v: expected geohash w, got %q", r, h)
		}
	}
}

func TestNearestNonFinite(t *testing.T) {
	for _, c := range [][2]float64{
		{math.NaN(), 121},
		{14.6, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	} {
		if r := Nearest(c[0], c[1]); !r.Known() {
			t.Errorf("nearest (%v, %v): expected a known region, got %#v", c[0], c[1], r)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if r, ok := Parse("  Region VII "); !ok || r != RegionVII {
					errs <- fmt.Sprintf("parse: got (%#v, %t)", r, ok)
					return
				}
				if m := List(); len(m) != 17 || m["ncr"] != "National Capital Region" {
					errs <- fmt.Sprintf("list: got %v", m)
					return
				}
				if rs := Regions(); len(rs) != 17 || rs[0] != NCR {
					errs <- fmt.Sprintf("regions: got %#v", rs)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
