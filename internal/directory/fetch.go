package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "foodbridge/internal/errors"
	"foodbridge/internal/logger"
	"foodbridge/internal/version"
)

// maxDirectorySize caps the response body read from a remote source
const maxDirectorySize = 8 << 20

// FetchConfig holds configuration for fetching a remote directory
type FetchConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client
}

// Fetcher downloads a directory document over HTTP with retries
type Fetcher struct {
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
}

// NewFetcher creates a new fetcher with the given configuration
func NewFetcher(config FetchConfig) *Fetcher {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 2 * time.Second
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	return &Fetcher{
		httpClient: client,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}
}

// Fetch downloads and parses the directory at url
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Directory, error) {
	log := logger.With("url", url)
	log.Info("Fetching NGO directory")

	data, err := f.fetchWithRetry(ctx, url)
	if err != nil {
		logger.ErrorContext(ctx, "Directory fetch failed", "url", url, "error", err)
		return nil, fmt.Errorf("failed to fetch directory: %w", err)
	}

	log.Debug("Directory fetched", "bytes", len(data))
	return Parse(data)
}

// fetchWithRetry retries transient failures; a 4xx response is returned immediately
func (f *Fetcher) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		if attempt > 1 {
			logger.Warn("Retrying directory fetch", "attempt", attempt, "max_attempts", f.maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.retryDelay):
			}
		}

		data, err := f.fetch(ctx, url)
		if err == nil {
			return data, nil
		}

		lastErr = err
		logger.Warn("Directory fetch attempt failed", "attempt", attempt, "error", err)

		if apiErr, ok := err.(apperrors.APIError); ok && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			return nil, err
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", f.maxRetries, lastErr)
}

// fetch performs a single request
func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/yaml, application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.APIError{
			Service:    "directory",
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDirectorySize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDirectorySize {
		return nil, fmt.Errorf("directory larger than %d bytes", maxDirectorySize)
	}

	return data, nil
}
