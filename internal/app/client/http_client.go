package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"librarydesk/internal/app/client/config"
	"librarydesk/internal/domain/media"

	"golang.org/x/exp/slog"
)

// ErrUnavailable marks a transport-level failure, as opposed to the
// service answering with an error status. Commands use it to tell the
// user the server is probably not running.
var ErrUnavailable = errors.New("catalog service is not reachable")

// APIError is a non-2xx response from the service with its message
// extracted from the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *HTTPClient {
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log:       log.With("component", "http_client"),
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "LibraryDesk-Client/1.0",
	}
}

// BaseURL returns the resolved service address, for user-facing messages.
func (h *HTTPClient) BaseURL() string {
	return h.baseURL
}

func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	return h.doJSON(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (h *HTTPClient) ListMedia(ctx context.Context) ([]media.Media, error) {
	var items []media.Media
	if err := h.doJSON(ctx, http.MethodGet, "/media", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *HTTPClient) MediaByCategory(ctx context.Context, category string) ([]media.Media, error) {
	var items []media.Media
	if err := h.doJSON(ctx, http.MethodGet, "/media/category/"+url.PathEscape(category), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchMedia returns all exact-name matches. The service reports an
// empty result as 404; that comes back here as an empty slice, not an
// error.
func (h *HTTPClient) SearchMedia(ctx context.Context, name string) ([]media.Media, error) {
	var items []media.Media
	err := h.doJSON(ctx, http.MethodGet, "/media/search?name="+url.QueryEscape(name), nil, &items)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return []media.Media{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (h *HTTPClient) GetMedia(ctx context.Context, id int) (*media.Media, error) {
	var item media.Media
	if err := h.doJSON(ctx, http.MethodGet, "/media/"+strconv.Itoa(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (h *HTTPClient) CreateMedia(ctx context.Context, draft media.Draft) (int, error) {
	var resp struct {
		ID int `json:"id"`
	}
	if err := h.doJSON(ctx, http.MethodPost, "/media", draft, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (h *HTTPClient) UpdateMedia(ctx context.Context, id int, draft media.Draft) error {
	return h.doJSON(ctx, http.MethodPut, "/media/"+strconv.Itoa(id), draft, nil)
}

func (h *HTTPClient) DeleteMedia(ctx context.Context, id int) error {
	return h.doJSON(ctx, http.MethodDelete, "/media/"+strconv.Itoa(id), nil, nil)
}

func (h *HTTPClient) Favorites(ctx context.Context) ([]media.Media, error) {
	var items []media.Media
	if err := h.doJSON(ctx, http.MethodGet, "/favorites", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *HTTPClient) FavoriteIDs(ctx context.Context) ([]int, error) {
	var resp struct {
		FavoriteIDs []int `json:"favorite_ids"`
	}
	if err := h.doJSON(ctx, http.MethodGet, "/favorites/ids", nil, &resp); err != nil {
		return nil, err
	}
	return resp.FavoriteIDs, nil
}

func (h *HTTPClient) AddFavorite(ctx context.Context, id int) error {
	return h.doJSON(ctx, http.MethodPost, "/favorites/add/"+strconv.Itoa(id), nil, nil)
}

func (h *HTTPClient) RemoveFavorite(ctx context.Context, id int) error {
	return h.doJSON(ctx, http.MethodPost, "/favorites/remove/"+strconv.Itoa(id), nil, nil)
}

func (h *HTTPClient) Stats(ctx context.Context) (media.Stats, error) {
	var stats media.Stats
	if err := h.doJSON(ctx, http.MethodGet, "/stats", nil, &stats); err != nil {
		return media.Stats{}, err
	}
	return stats, nil
}

// UploadScreenshot sends a local image file as a multipart upload and
// returns the stored path.
func (h *HTTPClient) UploadScreenshot(ctx context.Context, id int, filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open screenshot file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read screenshot file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.baseURL+"/media/"+strconv.Itoa(id)+"/screenshot", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w at %s: %v", ErrUnavailable, h.baseURL, err)
	}
	defer resp.Body.Close()

	var uploadResp struct {
		ScreenshotPath string `json:"screenshot_path"`
	}
	if err := h.parseResponse(resp, &uploadResp); err != nil {
		return "", err
	}
	return uploadResp.ScreenshotPath, nil
}

func (h *HTTPClient) ScreenshotInfo(ctx context.Context, id int) (bool, string, error) {
	var resp struct {
		HasScreenshot  bool    `json:"has_screenshot"`
		ScreenshotPath *string `json:"screenshot_path"`
	}
	if err := h.doJSON(ctx, http.MethodGet, "/media/"+strconv.Itoa(id)+"/screenshot", nil, &resp); err != nil {
		return false, "", err
	}
	path := ""
	if resp.ScreenshotPath != nil {
		path = *resp.ScreenshotPath
	}
	return resp.HasScreenshot, path, nil
}

func (h *HTTPClient) DeleteScreenshot(ctx context.Context, id int) error {
	return h.doJSON(ctx, http.MethodDelete, "/media/"+strconv.Itoa(id)+"/screenshot", nil, nil)
}

// DownloadScreenshot fetches the raw image bytes for a stored filename.
func (h *HTTPClient) DownloadScreenshot(ctx context.Context, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		h.baseURL+"/screenshot/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrUnavailable, h.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, h.errorFromResponse(resp)
	}
	return io.ReadAll(resp.Body)
}

// doJSON performs one request with a JSON body and decodes a JSON
// response into out (when out is non-nil).
func (h *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w at %s: %v", ErrUnavailable, h.baseURL, err)
	}
	defer resp.Body.Close()

	return h.parseResponse(resp, out)
}

func (h *HTTPClient) parseResponse(resp *http.Response, out any) error {
	if resp.StatusCode >= http.StatusBadRequest {
		return h.errorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse extracts a human-readable message from an error body.
// The service answers both in the original flat {"error": ...} shape and
// in RFC 7807 problem form, so several fields are tried.
func (h *HTTPClient) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var body struct {
		Detail  string `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
		Title   string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		for _, msg := range []string{body.Detail, body.Error, body.Message, body.Title} {
			if msg != "" {
				apiErr.Message = msg
				break
			}
		}
	}

	return apiErr
}
