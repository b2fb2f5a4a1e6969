package prometheus

import (
	"io"

	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// WriteText gathers all metric families exposed by a Gatherer and
// writes them to a stream, using the text-based exposition format.
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return util.StatusWrap(err, "Failed to gather metrics")
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return util.StatusWrapf(err, "Failed to write metric family %#v", family.GetName())
		}
	}
	return nil
}
