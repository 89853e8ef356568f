package regiontool

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/VictoriaMetrics/metrics"
	"github.com/phregion/phregion/pkg/metricsx"
	"github.com/phregion/phregion/pkg/phregion"
	"github.com/phregion/phregion/pkg/regionmap"
	"github.com/rs/zerolog"
)

// Tool prints region information.
type Tool struct {
	Logger zerolog.Logger
	Out    io.Writer
	JSON   bool
	Indent bool

	// IP2Location and RegionMap are only set if an IP2Location database is
	// configured.
	IP2Location *regionmap.DB
	RegionMap   func(netip.Addr, regionmap.Record) (phregion.Region, error)

	metrics       *metrics.Set
	parseCounter  *metricsx.RegionCounter
	lookupCounter *metricsx.RegionCounter
}

// NewTool configures a new tool using c, which is assumed to be initialized to
// default or configured values (as done by UnmarshalEnv). Output is written to
// out, and logs to log.
func NewTool(c *Config, out, log io.Writer) (*Tool, error) {
	t := &Tool{
		Logger:  configureLogging(c, log),
		Out:     out,
		JSON:    c.Output == "json",
		Indent:  c.OutputIndent,
		metrics: metrics.NewSet(),
	}
	t.parseCounter = metricsx.NewRegionCounter(t.metrics, `phregion_parse_total`)
	t.lookupCounter = metricsx.NewRegionCounter(t.metrics, `phregion_ip_lookup_total`)

	mos, err := regionmap.ParseOverrides(c.RegionMapOverride)
	if err != nil {
		return nil, fmt.Errorf("initialize region map: %w", err)
	}
	if c.IP2Location != "" {
		db := new(regionmap.DB)
		if err := db.Load(c.IP2Location); err != nil {
			return nil, fmt.Errorf("initialize ip2location: %w", err)
		}
		t.IP2Location = db
		t.RegionMap = mos.Wrap(regionmap.GetRegion)
	}
	return t, nil
}

func configureLogging(c *Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if c.LogPretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).
		Level(c.LogLevel).
		With().
		Timestamp().
		Logger()
}

// Close releases resources held by the tool.
func (t *Tool) Close() error {
	if t.IP2Location != nil {
		return t.IP2Location.Close()
	}
	return nil
}

// PrintCatalog prints the region names and full names by code.
func (t *Tool) PrintCatalog() error {
	if t.JSON {
		return t.writeJSON(struct {
			Names     map[string]string `json:"names"`
			FullNames map[string]string `json:"full_names"`
		}{
			Names:     phregion.List(),
			FullNames: phregion.ListByFullName(),
		})
	}
	var b strings.Builder
	for i, m := range []map[string]string{phregion.List(), phregion.ListByFullName()} {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, code := range phregion.Codes() {
			b.WriteString(code)
			b.WriteByte('\t')
			b.WriteString(m[code])
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(t.Out, b.String())
	return err
}

type regionInfo struct {
	Code     string  `json:"code"`
	Abbrev   string  `json:"abbrev"`
	Name     string  `json:"name"`
	FullName string  `json:"full_name"`
	Center   string  `json:"center"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Geohash  string  `json:"geohash"`
}

func newRegionInfo(r phregion.Region) regionInfo {
	center, lat, lng, _ := r.Center()
	return regionInfo{
		Code:     r.Code(),
		Abbrev:   r.Abbrev(),
		Name:     r.Name(),
		FullName: r.FullName(),
		Center:   center,
		Lat:      lat,
		Lng:      lng,
		Geohash:  r.Geohash(6),
	}
}

// PrintTable prints all attributes of every region.
func (t *Tool) PrintTable() error {
	var rs []regionInfo
	for _, r := range phregion.Regions() {
		rs = append(rs, newRegionInfo(r))
	}
	if t.JSON {
		return t.writeJSON(rs)
	}
	tw := tabwriter.NewWriter(t.Out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tABBREV\tNAME\tFULL NAME\tCENTER\tGEOHASH")
	for _, r := range rs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Code, r.Abbrev, r.Name, r.FullName, r.Center, r.Geohash)
	}
	return tw.Flush()
}

type parseResult struct {
	Input  string      `json:"input"`
	Region *regionInfo `json:"region"`
	Error  string      `json:"error,omitempty"`
}

func (t *Tool) printResults(rs []parseResult) error {
	if t.JSON {
		return t.writeJSON(rs)
	}
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Input)
		b.WriteByte('\t')
		if r.Region != nil {
			b.WriteString(r.Region.Code)
			b.WriteByte('\t')
			b.WriteString("(" + r.Region.Abbrev + ") " + r.Region.Name)
		} else {
			b.WriteByte('-')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.Out, b.String())
	return err
}

// Parse parses each input as a region and prints the result. Inputs which
// don't match a region are not an error.
func (t *Tool) Parse(inputs ...string) error {
	rs := make([]parseResult, 0, len(inputs))
	for _, in := range inputs {
		res := parseResult{Input: in}
		if r, ok := phregion.Parse(in); ok {
			ri := newRegionInfo(r)
			res.Region = &ri
			t.parseCounter.Inc(r)
		} else {
			t.parseCounter.IncUnknown()
			t.Logger.Debug().
				Str("input", in).
				Str("normalized", phregion.Normalize(in)).
				Msg("no matching region")
		}
		rs = append(rs, res)
	}
	return t.printResults(rs)
}

// LookupIP looks up the region of each IP address and prints the result.
// Lookup failures are logged and printed, but are not an error.
func (t *Tool) LookupIP(inputs ...string) error {
	if t.IP2Location == nil {
		return fmt.Errorf("no ip2location database configured")
	}
	rs := make([]parseResult, 0, len(inputs))
	for _, in := range inputs {
		res := parseResult{Input: in}
		r, err := t.lookupIP(in)
		if err == nil {
			ri := newRegionInfo(r)
			res.Region = &ri
			t.lookupCounter.Inc(r)
		} else {
			res.Error = err.Error()
			t.lookupCounter.IncUnknown()
			e := t.Logger.Warn()
			if errors.Is(err, regionmap.ErrLocal) || errors.Is(err, regionmap.ErrNotPhilippines) {
				e = t.Logger.Debug()
			}
			e.Err(err).Str("input", in).Msg("failed to get region")
		}
		rs = append(rs, res)
	}
	return t.printResults(rs)
}

func (t *Tool) lookupIP(s string) (phregion.Region, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return t.IP2Location.GetRegion(ip.Unmap(), t.RegionMap)
}

// WriteMetrics writes the parse and lookup counters in the Prometheus text
// format.
func (t *Tool) WriteMetrics(w io.Writer) {
	t.metrics.WritePrometheus(w)
}

func (t *Tool) writeJSON(v any) error {
	var (
		buf []byte
		err error
	)
	if t.Indent {
		buf, err = json.MarshalIndent(v, "", "    ")
	} else {
		buf, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(t.Out, string(buf))
	return err
}
