package leaguedata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/preston-bernstein/phl-league-service/internal/providers"
)

// ErrUploadNotConfigured is returned when no upload endpoint is set.
var ErrUploadNotConfigured = errors.New("upload endpoint not configured")

// UploadImage sends the file as multipart form data and returns the public URL.
func (c *Client) UploadImage(ctx context.Context, password, filename string, file io.Reader) (string, error) {
	if c.uploadURL == "" {
		return "", ErrUploadNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadFieldName, filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(adminPasswordHeader, password)

	resp, err := c.do(req, "upload")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("upload: %w: %v", providers.ErrMalformedUpload, err)
	}
	if strings.TrimSpace(out.URL) == "" {
		return "", fmt.Errorf("upload: %w", providers.ErrMalformedUpload)
	}
	return out.URL, nil
}
