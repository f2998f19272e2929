package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const (
	DefaultEndpoint = "https://translate.googleapis.com/translate_a/single"
	DefaultClient   = "gtx"
	DefaultTimeout  = 30 * time.Second
)

// GTXService talks to the public translate_a/single endpoint used by the
// Google Translate web widgets. No credentials are needed.
type GTXService struct {
	endpoint string
	clientID string
	client   *http.Client
	logger   *logrus.Logger
}

func NewGTXService(cfg ServiceConfig, logger *logrus.Logger) *GTXService {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Client == "" {
		cfg.Client = DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &GTXService{
		endpoint: cfg.Endpoint,
		clientID: cfg.Client,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

func (s *GTXService) Name() string {
	return "gtx"
}

func (s *GTXService) requestURL(req TranslateRequest) string {
	params := url.Values{}
	params.Set("client", s.clientID)
	params.Set("sl", req.SourceLang)
	params.Set("tl", req.TargetLang)
	params.Set("dt", "t")
	params.Set("q", req.Text)
	return s.endpoint + "?" + params.Encode()
}

func (s *GTXService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	s.logger.WithFields(logrus.Fields{
		"request_id":  req.ID,
		"source_lang": req.SourceLang,
		"target_lang": req.TargetLang,
		"text_length": utf8.RuneCountInString(req.Text),
	}).Debug("Sending translation request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(req), nil)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Error = fmt.Sprintf("HTTP error! Status: %d", resp.StatusCode)
		return result, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	text, detected, err := parseSegments(body)
	if err != nil {
		result.Error = err.Error()
		return result, err
	}

	result.TranslatedText = text
	result.DetectedSource = detected
	return result, nil
}

// parseSegments extracts the translation from a body shaped like
// [[["Hola ","Hello ",...],["Mundo","World",...]], null, "en", ...].
// The first element of each segment is concatenated in order.
func parseSegments(body []byte) (string, string, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	top, ok := raw.([]any)
	if !ok || len(top) == 0 {
		return "", "", fmt.Errorf("%w: top level is not a non-empty array", ErrUnexpectedResponse)
	}
	segments, ok := top[0].([]any)
	if !ok {
		return "", "", fmt.Errorf("%w: missing segment list", ErrUnexpectedResponse)
	}

	var sb strings.Builder
	for i, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			return "", "", fmt.Errorf("%w: segment %d is not a tuple", ErrUnexpectedResponse, i)
		}
		switch v := parts[0].(type) {
		case string:
			sb.WriteString(v)
		case nil:
		default:
			return "", "", fmt.Errorf("%w: segment %d has non-text fragment", ErrUnexpectedResponse, i)
		}
	}

	var detected string
	if len(top) > 2 {
		detected, _ = top[2].(string)
	}
	return sb.String(), detected, nil
}

// IsAvailable reports whether the endpoint URL is usable. The public endpoint
// has no health route, so nothing is sent.
func (s *GTXService) IsAvailable(ctx context.Context) error {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint scheme %q", u.Scheme)
	}
	return nil
}
