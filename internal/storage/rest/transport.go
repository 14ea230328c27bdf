package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"workforce-admin/internal/storage"
)

const (
	requestIDHeader = "X-Request-Id"
	maxMessageLen   = 512
)

// Transport handles low-level HTTP against the single backend origin.
type Transport struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        *slog.Logger
}

func NewTransport(baseURL string, httpClient *http.Client, log *slog.Logger) (*Transport, error) {
	const op = "storage.rest.NewTransport"

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base url %q: %w", op, baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: base url %q must be absolute", op, baseURL)
	}

	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Transport{baseURL: u, httpClient: httpClient, log: log}, nil
}

// Do sends one request with an optional JSON body and decodes a non-empty
// response into out. There are no retries.
func (t *Transport) Do(ctx context.Context, method, path string, body, out any) error {
	const op = "storage.rest.Transport.Do"

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode %s %s: %w", op, method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build %s %s: %w", op, method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	reqID := middleware.GetReqID(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(requestIDHeader, reqID)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.log.Warn("backend call failed",
			slog.String("op", op),
			slog.String("method", method),
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %s %s: %w: %w", op, method, path, storage.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read %s %s: %w: %w", op, method, path, storage.ErrNetwork, err)
	}

	t.log.Debug("backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", reqID),
	)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return &storage.APIError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: backendMessage(data),
		}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode %s %s: %w: %w", op, method, path, storage.ErrNetwork, err)
	}

	return nil
}

// backendMessage достаёт текст ошибки из {message}, ProblemDetails или сырого тела.
func backendMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Title   string `json:"title"`
	}

	if err := json.Unmarshal(data, &body); err == nil {
		for _, s := range []string{body.Message, body.Detail, body.Title} {
			if s != "" {
				return s
			}
		}
		return ""
	}

	msg := strings.TrimSpace(string(data))
	if len(msg) > maxMessageLen {
		cut := maxMessageLen
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}
