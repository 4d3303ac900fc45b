package doris

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/dorisops/dorisctl/pkg/errkind"
)

// GetClusterStatus fetches the FE cluster-status endpoint without
// authentication and passes the JSON body through undecorated. The cluster
// manager exposes the same endpoint with basic auth and a typed shape.
func (c *Client) GetClusterStatus(ctx context.Context, feHost string, fePort int) (map[string]any, error) {
	url := fmt.Sprintf("http://%s/api/cluster_status", net.JoinHostPort(feHost, strconv.Itoa(fePort)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errkind.Wrap(errkind.HTTP, "failed to build request", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Error("cluster status request failed", "url", url, "err", err)
		return nil, errkind.Wrap(errkind.HTTP, "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errkind.Newf(errkind.HTTP, "GET %s returned %d: %s", url, resp.StatusCode, string(body))
	}

	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, errkind.Wrap(errkind.HTTP, "failed to decode response", err)
	}
	return status, nil
}
