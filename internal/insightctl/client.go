package insightctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Client is a thin JSON client for the insightd HTTP API.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient targets an insightd base URL such as http://127.0.0.1:8000.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
	}
}

// Databases lists the databases of the server's data catalog.
func (c *Client) Databases(ctx context.Context) ([]string, error) {
	var out types.DatabaseInfo
	if err := c.get(ctx, "/api/v1/databases", &out); err != nil {
		return nil, err
	}
	return out.Databases, nil
}

// Tables lists the tables of one database.
func (c *Client) Tables(ctx context.Context, database string) ([]string, error) {
	var out types.DatabaseInfo
	if err := c.get(ctx, "/api/v1/databases/"+url.PathEscape(database)+"/tables", &out); err != nil {
		return nil, err
	}
	return out.Tables[database], nil
}

// Patients lists the patient ids of one database.
func (c *Client) Patients(ctx context.Context, database string) ([]string, error) {
	var out types.DatabaseInfo
	if err := c.get(ctx, "/api/v1/databases/"+url.PathEscape(database)+"/patients", &out); err != nil {
		return nil, err
	}
	return out.PatientIDs, nil
}

// Summary requests per-section and consolidated summaries for one patient.
func (c *Client) Summary(ctx context.Context, req types.SummaryRequest) (*types.SummaryResponse, error) {
	var out types.SummaryResponse
	if err := c.post(ctx, "/api/v1/summary", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Chat asks one question against a record context.
func (c *Client) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	var out types.ChatResponse
	if err := c.post(ctx, "/api/v1/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes the server's readiness endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/readyz", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("server not ready: %s", strings.TrimSpace(string(b)))
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// apiError turns a non-2xx response into an error, preferring the server's
// JSON envelope over the raw status line.
func apiError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope types.ErrorResponse
	if err := json.Unmarshal(b, &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("%s (status %d)", envelope.Error, resp.StatusCode)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}
