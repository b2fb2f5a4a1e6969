package prometheus

import (
	"regexp"
	"slices"

	"github.com/prometheus/client_golang/prometheus"

	io_prometheus_client "github.com/prometheus/client_model/go"
)

type nameFilteringGatherer struct {
	base        prometheus.Gatherer
	namePattern *regexp.Regexp
}

// NewNameFilteringGatherer creates a decorator for Gatherer that only
// returns the metric families whose name matches a regular expression.
// It is used to limit the metrics printed at the end of a comparison
// run to the ones it produced.
func NewNameFilteringGatherer(base prometheus.Gatherer, namePattern *regexp.Regexp) prometheus.Gatherer {
	return &nameFilteringGatherer{
		base:        base,
		namePattern: namePattern,
	}
}

func (g *nameFilteringGatherer) Gather() ([]*io_prometheus_client.MetricFamily, error) {
	families, err := g.base.Gather()
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(families, func(family *io_prometheus_client.MetricFamily) bool {
		return !g.namePattern.MatchString(family.GetName())
	}), nil
}
