package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

func (c *HTTPClient) UploadAudio(ctx context.Context, file io.Reader, size int64, filename, title string, progress ProgressFunc) (int64, error) {
	return c.upload(ctx, "/api/upload/audio", file, size, filename, title, progress)
}

func (c *HTTPClient) UploadText(ctx context.Context, file io.Reader, size int64, filename, title string, progress ProgressFunc) (int64, error) {
	return c.upload(ctx, "/api/upload/text", file, size, filename, title, progress)
}

// upload performs a one-shot multipart submission with progress reporting.
// The multipart body is assembled in memory first so progress reflects bytes
// actually sent on the wire, not bytes buffered.
func (c *HTTPClient) upload(ctx context.Context, path string, file io.Reader, size int64, filename, title string, progress ProgressFunc) (int64, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return 0, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return 0, fmt.Errorf("copy file: %w", err)
	}
	if err := writer.WriteField("title", title); err != nil {
		return 0, fmt.Errorf("write title field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return 0, fmt.Errorf("finalize form: %w", err)
	}

	reader := &progressReader{
		r:        bytes.NewReader(body.Bytes()),
		total:    int64(body.Len()),
		progress: progress,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.ContentLength = int64(body.Len())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, responseError(resp.StatusCode, data)
	}

	var result struct {
		RecordingID int64 `json:"recording_id"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	return result.RecordingID, nil
}

// progressReader reports cumulative read progress as a percentage.
type progressReader struct {
	r        io.Reader
	total    int64
	loaded   int64
	lastPct  int
	progress ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.total > 0 && p.progress != nil {
		p.loaded += int64(n)
		pct := int(p.loaded * 100 / p.total)
		if pct != p.lastPct {
			p.lastPct = pct
			p.progress(pct)
		}
	}
	return n, err
}
