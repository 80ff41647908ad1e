package sonapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/gammazero/workerpool"
)

const (
	defaultHost     = "api.sonapi.ee"
	defaultProtocol = "https"
	lookupPath      = "/v2/"
	languageParam   = "lg"
	languageEnglish = "en"
	// maxResponseBody caps how much of a response is read
	maxResponseBody = 4 << 20
)

type Config struct {
	// ExtraHeader specifies what header will be added to each request
	ExtraHeader map[string]string
	// Timeout bounds a single lookup. Zero means no timeout.
	Timeout time.Duration
	// Host specifies remote host to which request will be sent
	Host     string
	Protocol string
	// MaxWorkers specifies how many workers decode responses
	// Zero value mean that it will be equal to number of logical CPU
	MaxWorkers int
}

// Remote looks words up in the sonapi dictionary service.
type Remote struct {
	client *http.Client
	config *Config
	pool   *workerpool.WorkerPool
}

func NewRemote(client *http.Client, config *Config) *Remote {
	if client == nil {
		client = &http.Client{}
	}
	if config == nil {
		config = &Config{}
	}
	if config.Host == "" {
		config.Host = defaultHost
	}
	if config.Protocol == "" {
		config.Protocol = defaultProtocol
	}
	if config.MaxWorkers < 1 { // nolint:gomnd // if number not specified
		config.MaxWorkers = runtime.NumCPU()
	}
	return &Remote{
		client: client,
		config: config,
		pool:   workerpool.New(config.MaxWorkers),
	}
}

// Lookup fetches word from the service. When isEnglish is set, word is treated
// as the English term and echoed back as EnglishWord.
func (q *Remote) Lookup(ctx context.Context, word string, isEnglish bool) (*Result, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	if q.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.config.Timeout)
		defer cancel()
	}
	body, err := q.get(ctx, q.newLookupURL(word, isEnglish))
	if err != nil {
		return nil, fmt.Errorf("failed to lookup %q: %w", word, err)
	}
	var response *Response
	q.pool.SubmitWait(func() {
		response, err = decodeResponse(body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", word, err)
	}
	result, err := response.Result(word, isEnglish)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", word, err)
	}
	return result, nil
}

func (q *Remote) get(ctx context.Context, urlGet string) ([]byte, error) {
	request, err := q.newRequest(ctx, urlGet)
	if err != nil {
		return nil, fmt.Errorf("can not assemble request: %w", err)
	}
	response, err := q.client.Do(request)
	if err != nil {
		return nil, &TransportError{URL: urlGet, Err: err}
	}
	defer response.Body.Close()
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{URL: urlGet, StatusCode: response.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBody+1))
	if err != nil {
		return nil, &TransportError{URL: urlGet, StatusCode: response.StatusCode, Err: err}
	}
	if len(body) > maxResponseBody {
		return nil, &TransportError{URL: urlGet, StatusCode: response.StatusCode, Err: ErrBodyTooLarge}
	}
	return body, nil
}

// newLookupURL escapes word as a single path segment. RawPath keeps the
// escaping stable so the word is encoded exactly once on the wire.
func (q *Remote) newLookupURL(word string, isEnglish bool) string {
	lookupURL := q.newURL()
	lookupURL.Path = lookupPath + word
	lookupURL.RawPath = lookupPath + escapeWord(word)

	if isEnglish {
		v := url.Values{}
		v.Set(languageParam, languageEnglish)
		lookupURL.RawQuery = v.Encode()
	}
	return lookupURL.String()
}

// escapeWord percent-encodes everything but unreserved characters, so
// sub-delimiters such as '+' reach the service escaped. Space becomes %20.
func escapeWord(word string) string {
	return strings.ReplaceAll(url.QueryEscape(word), "+", "%20")
}

func (q *Remote) newURL() *url.URL {
	return &url.URL{
		Scheme: q.config.Protocol,
		Host:   q.config.Host,
	}
}

func (q *Remote) newRequest(ctx context.Context, urlRequest string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlRequest, nil)
	if err != nil {
		return nil, fmt.Errorf("can not form request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range q.config.ExtraHeader {
		req.Header.Add(key, value)
	}
	return req, nil
}

func (q *Remote) Close(ctx context.Context) error {
	q.client.CloseIdleConnections()
	q.pool.StopWait()
	return nil
}
