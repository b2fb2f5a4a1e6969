package main

import (
	"context"
	"log"
	"os"

	"github.com/arielmakestuff/pathlib-sub000/pkg/clock"
	"github.com/arielmakestuff/pathlib-sub000/pkg/pathcompare"
	"github.com/arielmakestuff/pathlib-sub000/pkg/program"
	"github.com/arielmakestuff/pathlib-sub000/pkg/prometheus"
	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/google/uuid"
	client_prometheus "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// A utility for checking that the direct scanner and the combinator
// based parser split pathnames identically. Pathnames are read from the
// corpus in the configuration file. Every pathname is split by both
// algorithms, traversing the components forward, backward and from
// both ends at once. The utility terminates with a non-zero exit code
// if any differences are found.
//
// Upon completion, the time spent per algorithm is printed in the form
// of Prometheus metrics.

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: pathlib_compare pathlib_compare.jsonnet")
		}
		var configuration pathcompare.Configuration
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}
		configuration.ApplyDefaults()

		metricsNamePattern, err := configuration.GetMetricsNamePattern()
		if err != nil {
			return err
		}
		cases, err := pathcompare.NewCasesFromConfiguration(&configuration)
		if err != nil {
			return util.StatusWrap(err, "Failed to load corpus")
		}

		comparator := pathcompare.NewComparator(
			clock.SystemClock,
			util.DefaultErrorLogger,
			otel.GetTracerProvider(),
			uuid.NewRandom,
			pathcompare.DefaultAlgorithms,
			configuration.Iterations,
			configuration.Parallelism)
		report, err := comparator.Compare(ctx, cases)
		if err != nil {
			return util.StatusWrap(err, "Failed to compare corpus")
		}
		log.Printf(
			"Run %s: compared %d cases, of which %d matched, %d had a malformed prefix and %d yielded mismatching components",
			report.RunID,
			report.Cases,
			report.Matches,
			report.Malformed,
			len(report.Mismatches))

		if err := prometheus.WriteText(
			os.Stdout,
			prometheus.NewNameFilteringGatherer(client_prometheus.DefaultGatherer, metricsNamePattern),
		); err != nil {
			return util.StatusWrap(err, "Failed to print metrics")
		}
		return report.Err()
	})
}
