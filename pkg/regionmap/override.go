package regionmap

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/phregion/phregion/pkg/phregion"
)

// Override forces the region for addresses within Prefix.
type Override struct {
	Prefix netip.Prefix
	Region phregion.Region
}

// Overrides is a list of region overrides, checked in order.
type Overrides []Override

// ParseOverrides parses a list of prefix=region overrides. The prefix may also
// be a single address, and the region may be anything accepted by
// [phregion.Parse].
func ParseOverrides(s []string) (Overrides, error) {
	var mos Overrides
	for _, x := range s {
		a, r, ok := strings.Cut(x, "=")
		if !ok {
			return nil, fmt.Errorf("parse region override %q: missing equals sign", x)
		}
		region, ok := phregion.Parse(r)
		if !ok {
			return nil, fmt.Errorf("parse region override %q: %w %q", x, phregion.ErrUnknownRegion, r)
		}
		if strings.ContainsRune(a, '/') {
			if pfx, err := netip.ParsePrefix(a); err == nil {
				mos = append(mos, Override{pfx.Masked(), region})
			} else {
				return nil, fmt.Errorf("parse region override %q: invalid prefix: %w", x, err)
			}
		} else {
			if ip, err := netip.ParseAddr(a); err == nil {
				if pfx, err := ip.Prefix(ip.BitLen()); err == nil {
					mos = append(mos, Override{pfx, region})
				} else {
					panic(err)
				}
			} else {
				return nil, fmt.Errorf("parse region override %q: invalid prefix: %w", x, err)
			}
		}
	}
	return mos, nil
}

// Match returns the region of the first override containing ip.
func (mos Overrides) Match(ip netip.Addr) (phregion.Region, bool) {
	for _, mo := range mos {
		if mo.Prefix.Contains(ip) {
			return mo.Region, true
		}
	}
	return "", false
}

// Wrap returns a function which checks the overrides before calling next. If
// next is nil, GetRegion is used.
func (mos Overrides) Wrap(next func(netip.Addr, Record) (phregion.Region, error)) func(netip.Addr, Record) (phregion.Region, error) {
	if next == nil {
		next = GetRegion
	}
	if len(mos) == 0 {
		return next
	}
	return func(a netip.Addr, r Record) (phregion.Region, error) {
		if x, ok := mos.Match(a); ok {
			return x, nil
		}
		return next(a, r)
	}
}
