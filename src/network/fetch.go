package network

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"byoa-assistant/src/logutil"
	"byoa-assistant/src/worker"
)

// DefaultTimeout bounds every fetch.
const DefaultTimeout = 30 * time.Second

var supportedMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodDelete:  true,
	http.MethodPatch:   true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

var errQueueFull = errors.New("fetch queue full")

type Options struct {
	Timeout time.Duration
	Workers int
	// Proxy overrides OS/environment proxy discovery when non-nil.
	Proxy  *ProxySettings
	Logger *slog.Logger
}

// Fetcher performs HTTP requests on behalf of page scripts.
type Fetcher struct {
	client  *http.Client
	pool    *worker.Pool
	timeout time.Duration
	log     *slog.Logger

	// done is cancelled by Close and aborts requests still in flight.
	done context.Context
	stop context.CancelFunc
}

func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	logger := logutil.Component(opts.Logger, "network")

	var sys ProxySettings
	if opts.Proxy != nil {
		sys = *opts.Proxy
	} else {
		sys = SystemProxy()
	}
	if !sys.empty() {
		logger.Info("using system proxy", "http", sys.HTTP, "https", sys.HTTPS)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxyFunc(sys)

	done, stop := context.WithCancel(context.Background())
	return &Fetcher{
		done:    done,
		stop:    stop,
		client:  &http.Client{Transport: transport, Timeout: opts.Timeout},
		pool:    worker.New(opts.Workers, opts.Workers*4, opts.Logger),
		timeout: opts.Timeout,
		log:     logger,
	}
}

// Fetch performs one request and returns the response envelope as JSON.
// It never fails: transport problems are reported as status 0.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, optionsJSON string) string {
	return ResponseToJSON(f.Do(ctx, rawURL, ParseOptions(optionsJSON, f.log)))
}

// Do performs one request described by opts.
func (f *Fetcher) Do(ctx context.Context, rawURL string, opts FetchOptions) FetchResponse {
	// Method names are case-sensitive: "post" is rejected like any unknown method.
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	reqID := uuid.NewString()
	log := f.log.With("request_id", reqID, "method", method, "url", rawURL)

	if !supportedMethods[method] {
		log.Warn("unsupported method")
		return badRequest(opts.Method)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	defer context.AfterFunc(f.done, cancel)()

	var body io.Reader
	if opts.Body != "" {
		body = strings.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		log.Error("invalid request", "error", err)
		return networkError(err)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	log.Debug("fetch started", "headers", logutil.RedactHeaders(opts.Headers))

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("fetch failed", "error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("reading response body failed", "error", err)
		return networkError(err)
	}

	out := newResponse(resp.StatusCode, statusText(resp), string(data))
	for k, vs := range resp.Header {
		out.Headers[k] = strings.Join(vs, ", ")
	}
	log.Info("fetch completed", "status", resp.StatusCode, "bytes", len(data), "elapsed", time.Since(start))
	return out
}

// FetchAsync runs Fetch on the worker pool. The channel receives exactly one envelope.
func (f *Fetcher) FetchAsync(ctx context.Context, rawURL, optionsJSON string) <-chan string {
	ch := make(chan string, 1)
	ok := f.pool.Submit(ctx, func(jobCtx context.Context) {
		ch <- f.Fetch(jobCtx, rawURL, optionsJSON)
	})
	if !ok {
		f.log.Warn("fetch rejected", "url", rawURL, "error", errQueueFull)
		ch <- ResponseToJSON(networkError(errQueueFull))
	}
	return ch
}

// Close aborts in-flight fetches, waits for the workers to return and stops them.
func (f *Fetcher) Close() {
	f.stop()
	f.pool.Close()
}

func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
