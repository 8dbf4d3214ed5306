package loadgen

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stats accumulates per-request outcomes across all simulated clients.
// It is safe for concurrent use.
type Stats struct {
	mu        sync.Mutex
	started   time.Time
	total     int
	success   int
	failed    int
	latencies []time.Duration
	endpoints map[string]*endpointCounters
}

type endpointCounters struct {
	total   int
	success int
	failed  int
}

// NewStats creates an empty aggregator. The run clock starts at the
// first recorded request.
func NewStats() *Stats {
	return &Stats{endpoints: make(map[string]*endpointCounters)}
}

// Record adds one request outcome. A request counts as successful only
// when ok is true (2xx status and a well-formed body).
func (s *Stats) Record(endpoint string, ok bool, latency time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started.IsZero() {
		s.started = time.Now()
	}

	s.total++
	s.latencies = append(s.latencies, latency)

	ep := s.endpoints[endpoint]
	if ep == nil {
		ep = &endpointCounters{}
		s.endpoints[endpoint] = ep
	}
	ep.total++

	if ok {
		s.success++
		ep.success++
	} else {
		s.failed++
		ep.failed++
	}
}

// EndpointSummary is the per-endpoint slice of a run summary.
type EndpointSummary struct {
	Endpoint string
	Total    int
	Success  int
	Failed   int
}

// Summary is a point-in-time snapshot of the aggregated counters.
type Summary struct {
	Total       int
	Successful  int
	Failed      int
	SuccessRate float64
	AvgLatency  time.Duration
	P50Latency  time.Duration
	P95Latency  time.Duration
	Duration    time.Duration
	Endpoints   []EndpointSummary
}

// Summarize computes the final statistics for the run so far.
func (s *Stats) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Total:      s.total,
		Successful: s.success,
		Failed:     s.failed,
	}
	if s.total == 0 {
		return sum
	}

	sum.SuccessRate = float64(s.success) / float64(s.total) * 100
	sum.Duration = time.Since(s.started)

	var totalLatency time.Duration
	sorted := make([]time.Duration, len(s.latencies))
	copy(sorted, s.latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, l := range sorted {
		totalLatency += l
	}
	sum.AvgLatency = totalLatency / time.Duration(len(sorted))
	sum.P50Latency = percentile(sorted, 50)
	sum.P95Latency = percentile(sorted, 95)

	names := make([]string, 0, len(s.endpoints))
	for name := range s.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ep := s.endpoints[name]
		sum.Endpoints = append(sum.Endpoints, EndpointSummary{
			Endpoint: name,
			Total:    ep.total,
			Success:  ep.success,
			Failed:   ep.failed,
		})
	}

	return sum
}

// percentile expects a sorted slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Status maps the success rate onto a qualitative verdict.
func (s Summary) Status() string {
	switch {
	case s.SuccessRate >= 95:
		return "EXCELLENT"
	case s.SuccessRate >= 85:
		return "GOOD"
	case s.SuccessRate >= 70:
		return "ACCEPTABLE"
	default:
		return "POOR"
	}
}

// Render writes the fixed-format final report.
func (s Summary) Render(w io.Writer) {
	line := strings.Repeat("=", 50)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "AI SERVICE TEST RESULTS")
	fmt.Fprintln(w, line)

	if s.Total == 0 {
		fmt.Fprintln(w, "No requests completed")
		fmt.Fprintln(w, line)
		return
	}

	fmt.Fprintf(w, "Total Requests: %d\n", s.Total)
	fmt.Fprintf(w, "Successful: %d (%.1f%%)\n", s.Successful, s.SuccessRate)
	fmt.Fprintf(w, "Failed: %d\n", s.Failed)
	fmt.Fprintf(w, "Avg Response Time: %dms\n", s.AvgLatency.Milliseconds())
	fmt.Fprintf(w, "P50 Response Time: %dms\n", s.P50Latency.Milliseconds())
	fmt.Fprintf(w, "P95 Response Time: %dms\n", s.P95Latency.Milliseconds())
	fmt.Fprintf(w, "Test Duration: %.1fs\n", s.Duration.Seconds())
	fmt.Fprintf(w, "Service Status: %s\n", s.Status())

	if len(s.Endpoints) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Per-Endpoint:")
		for _, ep := range s.Endpoints {
			fmt.Fprintf(w, "  %-10s total=%d success=%d failed=%d\n", ep.Endpoint, ep.Total, ep.Success, ep.Failed)
		}
	}

	fmt.Fprintln(w, line)
}
