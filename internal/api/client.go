package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:8000"

const (
	pathProcess   = "/process-document"
	pathQA        = "/qa"
	pathTranslate = "/translate"
	pathExport    = "/export"
)

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// Client talks to the document-analysis service. It holds no per-document state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient builds a client for baseURL. A nil httpClient means a plain
// http.Client with no timeout; requests end only when the caller's context does.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient, logger: log.Default()}
}

// WithLogger replaces the logger used for request lines.
func (c *Client) WithLogger(l *log.Logger) *Client {
	if l != nil {
		c.logger = l
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// ProcessDocument uploads a PDF and returns the service's analysis.
func (c *Client) ProcessDocument(ctx context.Context, doc Document) (DocumentAnalysis, error) {
	var out DocumentAnalysis

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, doc.Name))
	h.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(h)
	if err != nil {
		return out, fmt.Errorf("process-document: %w", err)
	}
	if _, err := part.Write(doc.Data); err != nil {
		return out, fmt.Errorf("process-document: %w", err)
	}
	if err := mw.Close(); err != nil {
		return out, fmt.Errorf("process-document: %w", err)
	}

	raw, err := c.post(ctx, "process-document", pathProcess, mw.FormDataContentType(), &body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("process-document: decode response: %w", err)
	}
	return out, nil
}

// AskQuestion asks a question scoped to req.SessionID.
func (c *Client) AskQuestion(ctx context.Context, req QARequest) (QAResponse, error) {
	var out QAResponse
	if err := c.postJSON(ctx, "qa", pathQA, req, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Translate translates req.Text into req.TargetLanguage.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (TranslateResponse, error) {
	var out TranslateResponse
	if err := c.postJSON(ctx, "translate", pathTranslate, req, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Export asks the service to render the analysis as a PDF report and returns
// the raw bytes.
func (c *Client) Export(ctx context.Context, analysis DocumentAnalysis) ([]byte, error) {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return c.post(ctx, "export", pathExport, "application/json", bytes.NewReader(payload))
}

func (c *Client) postJSON(ctx context.Context, op, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	raw, err := c.post(ctx, op, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("api op=%s request_id=%s err=%q", op, requestID, err.Error())
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: request aborted: %w", op, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", op, err)
	}
	c.logger.Printf("api op=%s request_id=%s status=%d bytes=%d duration=%s",
		op, requestID, resp.StatusCode, len(raw), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}
	return raw, nil
}

// errorDetail pulls the message out of a {"detail": ...} error body.
func errorDetail(raw []byte) string {
	var parsed struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || len(parsed.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}
	var s string
	if err := json.Unmarshal(parsed.Detail, &s); err == nil {
		return s
	}
	return string(parsed.Detail)
}
