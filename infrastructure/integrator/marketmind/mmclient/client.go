package mmclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketmind-gateway/internal/config"
	"github.com/vfg2006/marketmind-gateway/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentTypeJSON = "application/json"

	// limite do trecho do corpo copiado para a mensagem de erro
	maxErrorBodyLength = 512
)

// Client faz chamadas JSON sobre HTTP ao backend MarketMind.
// Cada chamada é uma única tentativa; não há retry.
type Client interface {
	Post(ctx context.Context, path string, body, out interface{}) error
	Get(ctx context.Context, path string, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
}

type MarketMindClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MarketMindClient{
		baseURL: strings.TrimRight(cfg.MarketMind.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.MarketMind.Timeout,
		},
	}
}

func (c *MarketMindClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *MarketMindClient) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *MarketMindClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *MarketMindClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"method": method,
		"path":   path,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Method: method, Path: path, Message: "encoding request body", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Method: method, Path: path, Message: "building request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &TransportError{Method: method, Path: path, Message: "request failed", Err: err}
		if transportErr.Timeout() {
			transportErr.Message = "request timed out"
		}
		logger.WithError(err).Warn("marketmind: request failed")
		return transportErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: "reading response body", Err: err}
	}

	logger.WithFields(log.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Debug("marketmind: response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Status, data),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: "decoding response body", Err: err}
	}

	return nil
}

// errorMessage extrai a mensagem de um corpo de erro. O backend usa
// {"detail": ...} para erros de validação e {"error": ...} nos demais.
func errorMessage(status string, data []byte) string {
	var payload struct {
		Detail interface{} `json:"detail"`
		Error  string      `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if detail, ok := payload.Detail.(string); ok && detail != "" {
			return detail
		}
		if payload.Detail != nil {
			if encoded, err := json.Marshal(payload.Detail); err == nil {
				return string(encoded)
			}
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return status
	}
	return truncate(text, maxErrorBodyLength)
}

// truncate corta s em no máximo limit bytes sem partir um caractere UTF-8
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
