package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sleepstars/groqgate/internal/models"
)

// Task weights, matching an 8:2:1 chat/health/models traffic mix.
const (
	chatWeight   = 8
	healthWeight = 2
	modelsWeight = 1
	totalWeight  = chatWeight + healthWeight + modelsWeight
)

// Options configures a load run.
type Options struct {
	// Host is the gateway base URL, e.g. http://localhost:8000.
	Host string
	// Users is the number of simulated clients to ramp up to.
	Users int
	// SpawnRate is how many clients are started per second.
	SpawnRate float64
	// RunTime bounds the run; zero means run until the context is
	// cancelled (e.g. by SIGINT).
	RunTime time.Duration
	// Timeout applies to each individual request.
	Timeout time.Duration
	// MinWait/MaxWait bound the think time between a client's requests.
	MinWait time.Duration
	MaxWait time.Duration
	// Questions is the prompt pool; DefaultQuestions() when empty.
	Questions []Question
}

func (o *Options) applyDefaults() {
	if o.Users <= 0 {
		o.Users = 10
	}
	if o.SpawnRate <= 0 {
		o.SpawnRate = 1
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.MinWait <= 0 {
		o.MinWait = time.Second
	}
	if o.MaxWait < o.MinWait {
		o.MaxWait = 3 * time.Second
	}
	if len(o.Questions) == 0 {
		o.Questions = DefaultQuestions()
	}
}

// Runner drives concurrent simulated clients against a gateway and
// aggregates the outcomes.
type Runner struct {
	opts   Options
	client *http.Client
	stats  *Stats
}

// NewRunner creates a runner with its own pooled HTTP client.
func NewRunner(opts Options) *Runner {
	opts.applyDefaults()

	transport := &http.Transport{
		MaxIdleConns:        opts.Users,
		MaxIdleConnsPerHost: opts.Users,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Runner{
		opts: opts,
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		stats: NewStats(),
	}
}

// Run ramps up the simulated clients and blocks until the run deadline
// or context cancellation, then returns the final summary. Request
// errors never abort the run; they are counted as failures.
func (r *Runner) Run(ctx context.Context) Summary {
	if r.opts.RunTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.RunTime)
		defer cancel()
	}

	log.WithFields(log.Fields{
		"host":       r.opts.Host,
		"users":      r.opts.Users,
		"spawn_rate": r.opts.SpawnRate,
		"questions":  len(r.opts.Questions),
	}).Info("Load run starting")

	spawnInterval := time.Duration(float64(time.Second) / r.opts.SpawnRate)

	var wg sync.WaitGroup
ramp:
	for i := 0; i < r.opts.Users; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r.clientLoop(ctx, id)
		}(i)

		if i == r.opts.Users-1 {
			break
		}
		select {
		case <-ctx.Done():
			break ramp
		case <-time.After(spawnInterval):
		}
	}

	<-ctx.Done()
	wg.Wait()

	summary := r.stats.Summarize()
	log.WithFields(log.Fields{
		"total":        summary.Total,
		"successful":   summary.Successful,
		"failed":       summary.Failed,
		"success_rate": summary.SuccessRate,
	}).Info("Load run finished")

	return summary
}

// clientLoop is one simulated client: pick a weighted task, issue it,
// record the outcome, think, repeat.
func (r *Runner) clientLoop(ctx context.Context, id int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		switch pick := rng.Intn(totalWeight); {
		case pick < chatWeight:
			r.doChat(ctx, rng)
		case pick < chatWeight+healthWeight:
			r.doHealth(ctx)
		default:
			r.doModels(ctx)
		}

		wait := r.opts.MinWait + time.Duration(rng.Int63n(int64(r.opts.MaxWait-r.opts.MinWait)+1))
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (r *Runner) doChat(ctx context.Context, rng *rand.Rand) {
	question := r.opts.Questions[rng.Intn(len(r.opts.Questions))]
	temperature := 0.1 + rng.Float64()*0.9
	maxTokens := 100 + rng.Intn(413)

	payload := models.ChatRequest{
		Message:     question.Text,
		Temperature: &temperature,
		MaxTokens:   &maxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		r.stats.Record("/chat", false, 0)
		return
	}

	start := time.Now()
	resp, err := r.post(ctx, "/chat", body)
	latency := time.Since(start)
	if err != nil {
		// Requests cut off by the run deadline are abandoned, not failed.
		if ctx.Err() == nil {
			r.stats.Record("/chat", false, latency)
		}
		return
	}
	defer resp.Body.Close()

	ok := false
	if resp.StatusCode == http.StatusOK {
		var chat models.ChatResponse
		if json.NewDecoder(resp.Body).Decode(&chat) == nil && chat.Reply != "" {
			ok = true
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	r.stats.Record("/chat", ok, latency)
}

func (r *Runner) doHealth(ctx context.Context) {
	start := time.Now()
	resp, err := r.get(ctx, "/health")
	latency := time.Since(start)
	if err != nil {
		if ctx.Err() == nil {
			r.stats.Record("/health", false, latency)
		}
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	r.stats.Record("/health", resp.StatusCode == http.StatusOK, latency)
}

func (r *Runner) doModels(ctx context.Context) {
	start := time.Now()
	resp, err := r.get(ctx, "/models")
	latency := time.Since(start)
	if err != nil {
		if ctx.Err() == nil {
			r.stats.Record("/models", false, latency)
		}
		return
	}
	defer resp.Body.Close()

	ok := false
	if resp.StatusCode == http.StatusOK {
		var list models.ModelsResponse
		if json.NewDecoder(resp.Body).Decode(&list) == nil && len(list.Models) > 0 {
			ok = true
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	r.stats.Record("/models", ok, latency)
}

func (r *Runner) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.opts.Host+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return r.client.Do(req)
}

func (r *Runner) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.opts.Host+path, nil)
	if err != nil {
		return nil, err
	}
	return r.client.Do(req)
}
