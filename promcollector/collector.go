// Package promcollector exposes numeric and boolean parameters as Prometheus
// gauges.
package promcollector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/davidroman0O/options"
)

// Collector implements prometheus.Collector over a shared collection.
type Collector struct {
	src  *options.Synced
	desc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// New creates a collector emitting <namespace>_option_value{name="..."}.
func New(src *options.Synced, namespace string) *Collector {
	return &Collector{
		src: src,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "option_value"),
			"Current value of a numeric or boolean option.",
			[]string{"name"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.src.Read(func(o *options.Options) {
		for name, v := range o.All() {
			f, ok := gaugeValue(v)
			if !ok {
				continue
			}
			ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, f, name)
		}
	})
}

type number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

func numeric[T number](v options.Value) (float64, bool) {
	x, ok := options.As[T](v)
	return float64(x), ok
}

var converters = []func(options.Value) (float64, bool){
	numeric[int], numeric[int8], numeric[int16], numeric[int32], numeric[int64],
	numeric[uint], numeric[uint8], numeric[uint16], numeric[uint32], numeric[uint64],
	numeric[float32], numeric[float64],
}

// gaugeValue only accepts the exact built-in types; named types are skipped.
func gaugeValue(v options.Value) (float64, bool) {
	if b, ok := options.As[bool](v); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	for _, conv := range converters {
		if f, ok := conv(v); ok {
			return f, true
		}
	}
	return 0, false
}
