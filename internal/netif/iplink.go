package netif

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Querier returns the textual description of a network interface.
type Querier interface {
	Query(ctx context.Context, name string) (string, error)
}

// IPLink queries interfaces through iproute2's `ip link show`.
type IPLink struct {
	// Path to the ip binary. Defaults to "ip" looked up in PATH.
	Path string
}

// Query runs `ip link show <name>` and returns its stdout.
func (q IPLink) Query(ctx context.Context, name string) (string, error) {
	path := q.Path
	if path == "" {
		path = "ip"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "link", "show", name)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s link show %s: %w (%s)", path, name, err, msg)
		}
		return "", fmt.Errorf("%s link show %s: %w", path, name, err)
	}
	return stdout.String(), nil
}
