package daemon

import (
	"context"
	"time"

	daemonv1 "github.com/bytes00000111/nativelink/api/daemon/v1"
	"github.com/bytes00000111/nativelink/internal/core/domain"
	"github.com/bytes00000111/nativelink/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client implements ports.DaemonClient over the workspace Unix socket.
type Client struct {
	conn   *grpc.ClientConn
	client daemonv1.DaemonClient
}

// Dial connects to the daemon of the given workspace root.
// Note: grpc.NewClient returns immediately; the connection is established
// lazily on the first RPC.
func Dial(root string) (*Client, error) {
	target := "unix://" + domain.DefaultDaemonSocketPath(root)

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.Wrap(err, "daemon client creation failed")
	}

	return &Client{
		conn:   conn,
		client: daemonv1.NewDaemonClient(conn),
	}, nil
}

// Ping implements ports.DaemonClient.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &daemonv1.PingRequest{})
	return err
}

// Status implements ports.DaemonClient.
func (c *Client) Status(ctx context.Context) (*ports.DaemonStatus, error) {
	resp, err := c.client.Status(ctx, &daemonv1.StatusRequest{})
	if err != nil {
		return nil, err
	}
	return &ports.DaemonStatus{
		Running:       true,
		PID:           int(resp.GetPid()),
		Uptime:        time.Duration(resp.GetUptimeSeconds()) * time.Second,
		IdleRemaining: time.Duration(resp.GetIdleRemainingSeconds()) * time.Second,
		Cache: ports.StoreStats{
			Items:        resp.GetItems(),
			TotalBytes:   resp.GetTotalBytes(),
			EvictedItems: resp.GetEvictedItems(),
			EvictedBytes: resp.GetEvictedBytes(),
		},
	}, nil
}

// Shutdown implements ports.DaemonClient.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.client.Shutdown(ctx, &daemonv1.ShutdownRequest{})
	return err
}

// Put implements ports.DaemonClient.
func (c *Client) Put(ctx context.Context, data []byte) (domain.Digest, error) {
	resp, err := c.client.Put(ctx, &daemonv1.PutRequest{Data: data})
	if err != nil {
		return domain.Digest{}, err
	}
	return domain.ParseDigest(resp.GetDigest())
}

// Get implements ports.DaemonClient. A miss returns ErrBlobNotFound.
func (c *Client) Get(ctx context.Context, digest domain.Digest) ([]byte, error) {
	resp, err := c.client.Get(ctx, &daemonv1.GetRequest{Digest: digest.String()})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, zerr.With(domain.ErrBlobNotFound, "digest", digest.String())
		}
		return nil, err
	}
	return resp.GetData(), nil
}

// Sizes implements ports.DaemonClient.
func (c *Client) Sizes(ctx context.Context, digests []domain.Digest) ([]int64, error) {
	raw := make([]string, len(digests))
	for i, digest := range digests {
		raw[i] = digest.String()
	}
	resp, err := c.client.Contains(ctx, &daemonv1.ContainsRequest{Digests: raw})
	if err != nil {
		return nil, err
	}
	return resp.GetSizes(), nil
}

// Close implements ports.DaemonClient.
func (c *Client) Close() error {
	return c.conn.Close()
}
