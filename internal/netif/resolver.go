// Package netif resolves hardware addresses of named network interfaces.
package netif

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

var etherRe = regexp.MustCompile(`(?i)link/ether ([0-9a-f:]+)`)

// Resolver maps interface names to their hardware addresses.
type Resolver struct {
	Querier Querier
}

// NewResolver returns a Resolver backed by `ip link show`.
func NewResolver() *Resolver {
	return &Resolver{Querier: IPLink{}}
}

// HardwareAddr returns the MAC address of the named interface as lowercase,
// colon-separated hex.
func (r *Resolver) HardwareAddr(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", &InterfaceQueryError{Name: name, Err: errors.New("empty interface name")}
	}

	out, err := r.Querier.Query(ctx, name)
	if err != nil {
		return "", &InterfaceQueryError{Name: name, Err: err}
	}
	return ParseHardwareAddr(name, out)
}

// ParseHardwareAddr extracts the first link/ether address from the output
// of `ip link show`.
func ParseHardwareAddr(name, output string) (string, error) {
	m := etherRe.FindStringSubmatch(output)
	if m == nil {
		return "", &AddressNotFoundError{Name: name}
	}
	return strings.ToLower(m[1]), nil
}
