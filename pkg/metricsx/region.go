// Package metricsx extends github.com/VictoriaMetrics/metrics with per-region
// metrics.
package metricsx

import (
	"io"
	"strconv"
	"strings"

	"github.com/VictoriaMetrics/metrics"
	"github.com/phregion/phregion/pkg/phregion"
)

// RegionCounter is like a *metrics.Counter, but split by region. It is safe
// for concurrent use.
type RegionCounter struct {
	ctr map[phregion.Region]*metrics.Counter
	unk *metrics.Counter
	set *metrics.Set
}

// NewRegionCounter creates a new RegionCounter writing to metrics in set named
// name, with a region label containing the region code. Unknown regions are
// counted with an empty region label.
//
// If set is nil, a new set is created.
func NewRegionCounter(set *metrics.Set, name string) *RegionCounter {
	if set == nil {
		set = metrics.NewSet()
	}
	c := &RegionCounter{
		ctr: map[phregion.Region]*metrics.Counter{},
		unk: set.NewCounter(regionMetricName(name, "")),
		set: set,
	}
	for _, r := range phregion.Regions() {
		c.ctr[r] = set.NewCounter(regionMetricName(name, r.Code()))
	}
	return c
}

// Inc increments the counter for r, or the unknown counter if r is not a known
// region.
func (c *RegionCounter) Inc(r phregion.Region) {
	c.Counter(r).Inc()
}

// IncUnknown increments the unknown counter.
func (c *RegionCounter) IncUnknown() {
	c.unk.Inc()
}

// Counter gets the underlying counter for r, or the unknown counter if r is
// not a known region.
func (c *RegionCounter) Counter(r phregion.Region) *metrics.Counter {
	if m, ok := c.ctr[r]; ok {
		return m
	}
	return c.unk
}

// CounterUnknown gets the underlying counter for unknown regions.
func (c *RegionCounter) CounterUnknown() *metrics.Counter {
	return c.unk
}

// WritePrometheus writes the Prometheus text metrics for the entire set the
// counter belongs to.
func (c *RegionCounter) WritePrometheus(w io.Writer) {
	c.set.WritePrometheus(w)
}

// regionMetricName adds a region label containing code to the end of the
// label list of the metric name, if any.
func regionMetricName(name, code string) string {
	base, labels := name, ""
	if i := strings.IndexByte(name, '{'); i != -1 && strings.HasSuffix(name, "}") {
		base, labels = name[:i], name[i+1:len(name)-1]
	}
	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('{')
	if labels != "" {
		b.WriteString(labels)
		b.WriteByte(',')
	}
	b.WriteString("region=")
	b.WriteString(strconv.Quote(code))
	b.WriteByte('}')
	return b.String()
}
