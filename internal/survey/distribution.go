package survey

// Distribution maps every scale value to its response count.
type Distribution map[Response]int

// NewDistribution returns a distribution with every value of scale set to zero.
func NewDistribution(scale Scale) Distribution {
	d := make(Distribution, len(scale))
	for _, r := range scale {
		d[r] = 0
	}
	return d
}

// Total returns the number of counted responses.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d {
		n += c
	}
	return n
}

// Counts returns the counts in scale order.
func (d Distribution) Counts(scale Scale) []int {
	out := make([]int, len(scale))
	for i, r := range scale {
		out[i] = d[r]
	}
	return out
}

// MetricDistribution is the distribution of one metric.
type MetricDistribution struct {
	Metric string
	Counts Distribution
}

// Distributions is an ordered list of per-metric distributions.
type Distributions []MetricDistribution

// Metrics returns the metric names in order.
func (ds Distributions) Metrics() []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Metric
	}
	return out
}

// Get returns the distribution of the named metric.
func (ds Distributions) Get(metric string) (Distribution, bool) {
	for _, d := range ds {
		if d.Metric == metric {
			return d.Counts, true
		}
	}
	return nil, false
}

// Responses returns the number of valid responses across all metrics.
func (ds Distributions) Responses() int {
	n := 0
	for _, d := range ds {
		n += d.Counts.Total()
	}
	return n
}
