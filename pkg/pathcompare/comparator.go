package pathcompare

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/arielmakestuff/pathlib-sub000/pkg/clock"
	"github.com/arielmakestuff/pathlib-sub000/pkg/filesystem/path"
	"github.com/arielmakestuff/pathlib-sub000/pkg/util"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otel_codes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	comparatorIterationDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pathlib",
			Subsystem: "compare",
			Name:      "iteration_duration_seconds",
			Help:      "Amount of time spent splitting a single pathname into components, in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-8, 2, 24),
		},
		[]string{"syntax", "algorithm"})
	comparatorCasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pathlib",
			Subsystem: "compare",
			Name:      "cases_total",
			Help:      "Number of corpus cases compared, partitioned by outcome.",
		},
		[]string{"syntax", "outcome"})
)

func init() {
	prometheus.MustRegister(comparatorIterationDurationSeconds)
	prometheus.MustRegister(comparatorCasesTotal)
}

// Outcomes of comparing a single case, as used in metric labels.
const (
	OutcomeMatch     = "match"
	OutcomeMismatch  = "mismatch"
	OutcomeMalformed = "malformed"
)

// Algorithm is a named strategy for splitting pathnames into
// components.
type Algorithm struct {
	Name     string
	Splitter path.Splitter
}

// DefaultAlgorithms contains the direct scanner, which acts as the
// reference, followed by the combinator based parser.
var DefaultAlgorithms = []Algorithm{
	{Name: "scanner", Splitter: path.ScanComponents},
	{Name: "parser", Splitter: path.ParseComponents},
}

// Comparator checks that a set of algorithms split pathnames into
// identical sequences of components, regardless of the direction in
// which iteration takes place. It also measures how long each of the
// algorithms takes.
type Comparator struct {
	clock         clock.Clock
	errorLogger   util.ErrorLogger
	tracer        trace.Tracer
	uuidGenerator util.UUIDGenerator
	algorithms    []Algorithm
	iterations    int
	parallelism   int
}

// NewComparator creates a Comparator. The first algorithm is used as
// the reference against which all others are compared.
func NewComparator(clock clock.Clock, errorLogger util.ErrorLogger, tracerProvider trace.TracerProvider, uuidGenerator util.UUIDGenerator, algorithms []Algorithm, iterations, parallelism int) *Comparator {
	if len(algorithms) == 0 {
		panic("At least one algorithm must be provided")
	}
	return &Comparator{
		clock:         clock,
		errorLogger:   errorLogger,
		tracer:        tracerProvider.Tracer("github.com/arielmakestuff/pathlib-sub000/pkg/pathcompare"),
		uuidGenerator: uuidGenerator,
		algorithms:    algorithms,
		iterations:    max(iterations, 1),
		parallelism:   max(parallelism, 1),
	}
}

// Report summarizes the results of a comparison run.
type Report struct {
	RunID      uuid.UUID
	Cases      int
	Matches    int
	Malformed  int
	Mismatches []error
}

// Err returns an error if one or more cases yielded a mismatch.
func (r *Report) Err() error {
	if len(r.Mismatches) == 0 {
		return nil
	}
	return status.Errorf(codes.Internal, "%d out of %d cases yielded mismatching components", len(r.Mismatches), r.Cases)
}

type caseResult struct {
	outcome  string
	mismatch error
}

// Compare all cases in the corpus. Mismatches do not cause this
// function to fail. They are reported through the error logger and
// listed in the report instead.
func (c *Comparator) Compare(ctx context.Context, cases []Case) (*Report, error) {
	for i, tc := range cases {
		if tc.Syntax == nil {
			return nil, status.Errorf(codes.InvalidArgument, "Case %d has no pathname syntax", i)
		}
	}
	runID, err := c.uuidGenerator()
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to generate run ID")
	}

	results := make([]caseResult, len(cases))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.parallelism)
	for i, tc := range cases {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			result, err := c.compareCase(groupCtx, tc)
			if err != nil {
				return util.StatusWrapf(err, "Case %d", i)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	report := &Report{
		RunID: runID,
		Cases: len(cases),
	}
	for i, result := range results {
		switch result.outcome {
		case OutcomeMatch:
			report.Matches++
		case OutcomeMalformed:
			report.Malformed++
		case OutcomeMismatch:
			tc := cases[i]
			err := util.StatusWrapf(result.mismatch, "Case %d with %s pathname %#v", i, tc.Syntax.Name(), tc.Path)
			c.errorLogger.Log(util.StatusWrapf(err, "Run %s", runID))
			report.Mismatches = append(report.Mismatches, err)
		}
	}
	return report, nil
}

func (c *Comparator) compareCase(ctx context.Context, tc Case) (caseResult, error) {
	syntaxName := tc.Syntax.Name()
	_, span := c.tracer.Start(
		ctx,
		"pathcompare.Comparator.compareCase",
		trace.WithAttributes(
			attribute.String("pathlib.syntax", syntaxName),
			attribute.String("pathlib.path", tc.Path),
		))
	defer span.End()

	result, err := c.doCompareCase(tc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otel_codes.Error, err.Error())
		return caseResult{}, err
	}
	span.SetAttributes(attribute.String("pathlib.outcome", result.outcome))
	if result.mismatch != nil {
		span.SetStatus(otel_codes.Error, result.mismatch.Error())
	}
	comparatorCasesTotal.WithLabelValues(syntaxName, result.outcome).Inc()
	return result, nil
}

func (c *Comparator) doCompareCase(tc Case) (caseResult, error) {
	p, err := path.NewPath(tc.Syntax, tc.Path)
	if err != nil {
		var parseError *path.ParseError
		if errors.As(err, &parseError) && parseError.Kind == path.ErrorKindMalformedPrefix {
			return caseResult{outcome: OutcomeMalformed}, nil
		}
		return caseResult{}, err
	}

	c.measure(p)
	if mismatch := c.findMismatch(p); mismatch != nil {
		return caseResult{outcome: OutcomeMismatch, mismatch: mismatch}, nil
	}
	return caseResult{outcome: OutcomeMatch}, nil
}

// measure the average amount of time each algorithm takes to split
// the path into components.
func (c *Comparator) measure(p path.Path) {
	syntaxName := p.Syntax().Name()
	for _, algorithm := range c.algorithms {
		timeStart := c.clock.Now()
		for i := 0; i < c.iterations; i++ {
			it := p.ComponentsWith(algorithm.Splitter, true)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
		}
		comparatorIterationDurationSeconds.WithLabelValues(syntaxName, algorithm.Name).Observe(
			c.clock.Now().Sub(timeStart).Seconds() / float64(c.iterations))
	}
}

type traversal struct {
	name    string
	collect func(it path.ComponentIterator) []path.Component
}

var traversals = []traversal{
	{name: "forward", collect: path.Collect},
	{name: "backward", collect: collectBackward},
	{name: "alternating", collect: collectAlternating},
}

func collectBackward(it path.ComponentIterator) []path.Component {
	var components []path.Component
	for component := range path.Backward(it) {
		components = append(components, component)
	}
	slices.Reverse(components)
	return components
}

func collectAlternating(it path.ComponentIterator) []path.Component {
	var front, back []path.Component
	for {
		component, ok := it.Next()
		if !ok {
			break
		}
		front = append(front, component)
		if component, ok = it.NextBack(); !ok {
			break
		}
		back = append(back, component)
	}
	slices.Reverse(back)
	return append(front, back...)
}

func componentStrings(components []path.Component) []string {
	s := make([]string, 0, len(components))
	for _, component := range components {
		s = append(s, component.String())
	}
	return s
}

func newMismatchError(subject, reference string, want, got []string) error {
	return status.Errorf(
		codes.Internal,
		"%s differs from %s (-want +got):\n%s",
		subject,
		reference,
		cmp.Diff(want, got, cmpopts.EquateEmpty()))
}

// getPathType returns the syntax specific type of a path, so that it
// can be compared against that of another path.
func getPathType(p path.Path) any {
	switch typed := p.(type) {
	case interface{ Type() path.UNIXPathType }:
		return typed.Type()
	case interface{ Type() path.WindowsPathType }:
		return typed.Type()
	default:
		return nil
	}
}

// findMismatch returns an error describing the first way in which the
// path is split differently than by the reference algorithm traversing
// forward.
func (c *Comparator) findMismatch(p path.Path) error {
	referenceAlgorithm := c.algorithms[0]
	referenceName := fmt.Sprintf("%s/forward", referenceAlgorithm.Name)
	reference := path.Collect(p.ComponentsWith(referenceAlgorithm.Splitter, true))
	want := componentStrings(reference)

	for i, algorithm := range c.algorithms {
		for j, traversal := range traversals {
			if i == 0 && j == 0 {
				continue
			}
			got := traversal.collect(p.ComponentsWith(algorithm.Splitter, true))
			if !slices.Equal(reference, got) {
				return newMismatchError(
					fmt.Sprintf("%s/%s", algorithm.Name, traversal.name),
					referenceName,
					want,
					componentStrings(got))
			}
		}
	}

	// The rebuilt string must be parsed into a path of the same type,
	// having the same components.
	rebuilt := p.Rebuild()
	reparsed, err := path.NewPath(p.Syntax(), rebuilt)
	if err != nil {
		return util.StatusWrapWithCode(err, codes.Internal, fmt.Sprintf("Failed to reparse rebuilt pathname %#v", rebuilt))
	}
	if want, got := getPathType(p), getPathType(reparsed); want != got || p.HasRoot() != reparsed.HasRoot() {
		return status.Errorf(
			codes.Internal,
			"Rebuilt pathname %#v has type %+v and root %t, while the original has type %+v and root %t",
			rebuilt,
			got,
			reparsed.HasRoot(),
			want,
			p.HasRoot())
	}
	if got := path.Collect(reparsed.ComponentsWith(referenceAlgorithm.Splitter, true)); !slices.Equal(reference, got) {
		return newMismatchError(
			fmt.Sprintf("Rebuilt pathname %#v", rebuilt),
			referenceName,
			want,
			componentStrings(got))
	}

	// Compare against the standard library if the pathname uses the
	// syntax of the host.
	if p.Syntax() == path.LocalSyntax {
		var names []string
		for _, component := range reference {
			if component.Kind() != path.ComponentKindRootDir {
				names = append(names, component.Name())
			}
		}
		if got := splitNative(p.String()); !slices.Equal(names, got) {
			return status.Errorf(
				codes.Internal,
				"Native splitting differs from %s (-want +got):\n%s",
				referenceName,
				cmp.Diff(names, got, cmpopts.EquateEmpty()))
		}
	}
	return nil
}
