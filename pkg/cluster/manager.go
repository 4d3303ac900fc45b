package cluster

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dorisops/dorisctl/pkg/config"
	"github.com/dorisops/dorisctl/pkg/doris"
	"github.com/dorisops/dorisctl/pkg/errkind"
)

type (
	// Node is one FE or BE record from the control-plane API. The shape is
	// dictated by the server; unknown fields are ignored and nothing is
	// validated beyond JSON decoding.
	Node struct {
		Host          string `json:"host"`
		HTTPPort      int    `json:"http_port"`
		QueryPort     int    `json:"query_port"`
		HeartbeatPort int    `json:"heartbeat_port"`
		Alive         bool   `json:"alive"`
		Role          string `json:"role"`
		TotalCapacity int64  `json:"total_capacity"`
		UsedCapacity  int64  `json:"used_capacity"`
	}

	// Status is the cluster_status response body.
	Status struct {
		Frontends []Node `json:"frontends"`
		Backends  []Node `json:"backends"`
	}

	// Manager wraps the FE HTTP control-plane API with the SQL credentials
	// as basic auth, and layers a few SQL-driven admin operations on an
	// owned database client.
	Manager struct {
		client   *doris.Client
		cfg      config.Connection
		httpPort int
		http     *http.Client
	}
)

// NewManager creates a manager for the FE at cfg.Host, talking HTTP on
// httpPort and SQL through a client built from cfg.
func NewManager(cfg config.Connection, httpPort int) *Manager {
	return NewManagerWithClient(doris.NewClient(cfg), httpPort)
}

// NewManagerWithClient creates a manager around an existing client.
func NewManagerWithClient(client *doris.Client, httpPort int) *Manager {
	return &Manager{
		client:   client,
		cfg:      client.Config(),
		httpPort: httpPort,
		http:     &http.Client{},
	}
}

// Close closes the owned database client. Idempotent.
func (m *Manager) Close() error { return m.client.Close() }

// GetClusterStatus fetches cluster-wide node state from the FE.
func (m *Manager) GetClusterStatus(ctx context.Context) (*Status, error) {
	var status Status
	if err := m.get(ctx, "/api/cluster_status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetFeNodes returns the frontend nodes, never nil.
func (m *Manager) GetFeNodes(ctx context.Context) ([]Node, error) {
	status, err := m.GetClusterStatus(ctx)
	if err != nil {
		return nil, err
	}
	if status.Frontends == nil {
		return []Node{}, nil
	}
	return status.Frontends, nil
}

// GetBeNodes returns the backend nodes, never nil.
func (m *Manager) GetBeNodes(ctx context.Context) ([]Node, error) {
	status, err := m.GetClusterStatus(ctx)
	if err != nil {
		return nil, err
	}
	if status.Backends == nil {
		return []Node{}, nil
	}
	return status.Backends, nil
}

// GetQueryProgress fetches the profile of a running or finished query.
func (m *Manager) GetQueryProgress(ctx context.Context, queryID string) (map[string]any, error) {
	if err := validQueryID(queryID); err != nil {
		return nil, err
	}

	var profile map[string]any
	if err := m.get(ctx, "/api/query/"+url.PathEscape(queryID)+"/profile", &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetResourceUsage fetches FE resource metrics.
func (m *Manager) GetResourceUsage(ctx context.Context) (map[string]any, error) {
	var metrics map[string]any
	if err := m.get(ctx, "/api/system/metrics", &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

// RestartFeNode asks the FE to restart the named frontend.
func (m *Manager) RestartFeNode(ctx context.Context, host string, port int) (map[string]any, error) {
	return m.post(ctx, "/api/admin/restart", map[string]any{"host": host, "port": port})
}

// AddBeNode registers a backend with the cluster.
func (m *Manager) AddBeNode(ctx context.Context, host string, port int) (map[string]any, error) {
	return m.post(ctx, "/api/admin/add_backend", map[string]any{"host": host, "port": port})
}

// RemoveBeNode drops a backend from the cluster.
func (m *Manager) RemoveBeNode(ctx context.Context, host string, port int) (map[string]any, error) {
	return m.post(ctx, "/api/admin/drop_backend", map[string]any{"host": host, "port": port})
}

func (m *Manager) baseURL() string {
	return "http://" + net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.httpPort))
}

// get performs one authenticated GET and decodes the JSON body into out.
// No retries, no response-shape validation.
func (m *Manager) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL()+path, nil)
	if err != nil {
		return errkind.Wrap(errkind.HTTP, "failed to build request", err)
	}
	return m.do(req, out)
}

// post performs one authenticated POST with a JSON body.
func (m *Manager) post(ctx context.Context, path string, body any) (map[string]any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errkind.Wrap(errkind.HTTP, "failed to encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL()+path, bytes.NewReader(payload))
	if err != nil {
		return nil, errkind.Wrap(errkind.HTTP, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out map[string]any
	if err := m.do(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Manager) do(req *http.Request, out any) error {
	req.SetBasicAuth(m.cfg.User, m.cfg.Password)

	resp, err := m.http.Do(req)
	if err != nil {
		slog.Error("control-plane request failed", "url", req.URL.String(), "err", err)
		return errkind.Wrap(errkind.HTTP, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errkind.Newf(errkind.HTTP, "%s %s returned %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errkind.Wrap(errkind.HTTP, "failed to decode response", err)
	}
	return nil
}
