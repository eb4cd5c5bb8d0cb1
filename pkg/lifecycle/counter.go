package lifecycle

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/5cript/simple-util/pkg/valueptr"
)

var (
	clonesDesc = prometheus.NewDesc(
		prometheus.BuildFQName("simpleutil", "valueptr", "clones_total"),
		"Pointees produced by clone policies.", nil, nil)
	failuresDesc = prometheus.NewDesc(
		prometheus.BuildFQName("simpleutil", "valueptr", "clone_failures_total"),
		"Clone policy calls that returned an error.", nil, nil)
	destroysDesc = prometheus.NewDesc(
		prometheus.BuildFQName("simpleutil", "valueptr", "destroys_total"),
		"Pointees released by destroy policies.", nil, nil)
)

// Counter accumulates clone and destroy events from counted policies. Policies
// are copied along with the reference that carries them, so they share a
// *Counter. A Counter is a prometheus.Collector and can be registered as is.
type Counter struct {
	clones   atomic.Int64
	failures atomic.Int64
	destroys atomic.Int64
}

// Clones is the number of successful clones.
func (c *Counter) Clones() int64 { return c.clones.Load() }

// Failures is the number of clone attempts that returned an error.
func (c *Counter) Failures() int64 { return c.failures.Load() }

// Destroys is the number of destroyed pointees.
func (c *Counter) Destroys() int64 { return c.destroys.Load() }

// Live returns clones minus destroys. Adopted pointees that were never
// cloned count as negative once destroyed, so callers compare Live against
// the number of pointees they handed in.
func (c *Counter) Live() int64 { return c.clones.Load() - c.destroys.Load() }

// Describe implements prometheus.Collector.
func (c *Counter) Describe(ch chan<- *prometheus.Desc) {
	ch <- clonesDesc
	ch <- failuresDesc
	ch <- destroysDesc
}

// Collect implements prometheus.Collector.
func (c *Counter) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(clonesDesc, prometheus.CounterValue, float64(c.Clones()))
	ch <- prometheus.MustNewConstMetric(failuresDesc, prometheus.CounterValue, float64(c.Failures()))
	ch <- prometheus.MustNewConstMetric(destroysDesc, prometheus.CounterValue, float64(c.Destroys()))
}

var _ prometheus.Collector = (*Counter)(nil)

// CountedCloner wraps Inner and counts its results into Counter. A nil
// Counter counts nothing.
type CountedCloner[P any, C valueptr.Cloner[P]] struct {
	Inner   C
	Counter *Counter
}

// Clone implements valueptr.Cloner.
func (c CountedCloner[P, C]) Clone(p P) (P, error) {
	cp, err := c.Inner.Clone(p)
	if c.Counter == nil {
		return cp, err
	}
	if err != nil {
		c.Counter.failures.Add(1)
		return cp, err
	}
	c.Counter.clones.Add(1)
	return cp, nil
}

// CountedDestroyer wraps Inner and counts destroys into Counter. A nil
// Counter counts nothing.
type CountedDestroyer[P any, D valueptr.Destroyer[P]] struct {
	Inner   D
	Counter *Counter
}

// Destroy implements valueptr.Destroyer.
func (d CountedDestroyer[P, D]) Destroy(p P) {
	if d.Counter != nil {
		d.Counter.destroys.Add(1)
	}
	d.Inner.Destroy(p)
}

// NewCounted takes ownership of p with both policies wrapped for counting.
func NewCounted[P comparable, C valueptr.Cloner[P], D valueptr.Destroyer[P]](
	p P, c C, d D, counter *Counter,
) *valueptr.Ref[P, CountedCloner[P, C], CountedDestroyer[P, D]] {
	return valueptr.New(p,
		CountedCloner[P, C]{Inner: c, Counter: counter},
		CountedDestroyer[P, D]{Inner: d, Counter: counter},
	)
}
