// Package mock contains gomock stubs for interfaces declared by this
// module and its dependencies.
package mock

//go:generate mockgen -destination clock.go -package mock github.com/arielmakestuff/pathlib-sub000/pkg/clock Clock
//go:generate mockgen -destination prometheus.go -package mock -mock_names Gatherer=MockPrometheusGatherer github.com/prometheus/client_golang/prometheus Gatherer
//go:generate mockgen -destination util.go -package mock github.com/arielmakestuff/pathlib-sub000/pkg/util ErrorLogger
