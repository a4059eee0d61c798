package netif

import (
	"context"
	"errors"
	"testing"
)

const ethOutput = `2: eth0: <BROADCAST,MULTICAST,UP,LOWER_UP> mtu 1500 qdisc mq state UP mode DEFAULT group default qlen 1000
    link/ether AA:BB:CC:DD:EE:FF brd ff:ff:ff:ff:ff:ff
`

const loOutput = `1: lo: <LOOPBACK,UP,LOWER_UP> mtu 65536 qdisc noqueue state UNKNOWN mode DEFAULT group default qlen 1000
    link/loopback 00:00:00:00:00:00 brd 00:00:00:00:00:00
`

type fakeQuerier struct {
	out   map[string]string
	err   error
	calls []string
}

func (f *fakeQuerier) Query(_ context.Context, name string) (string, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return "", f.err
	}
	out, ok := f.out[name]
	if !ok {
		return "", errors.New(`Device "` + name + `" does not exist.`)
	}
	return out, nil
}

func TestParseHardwareAddr(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"upper case", ethOutput, "aa:bb:cc:dd:ee:ff"},
		{"lower case", "    link/ether 11:22:33:44:55:66 brd ff:ff:ff:ff:ff:ff", "11:22:33:44:55:66"},
		{"mixed token case", "noise LINK/ETHER 0A:1b:2C:3d:4E:5f noise", "0a:1b:2c:3d:4e:5f"},
		{"veth with alias", "5: veth0@if4: <BROADCAST> mtu 1500\n    link/ether 3a:f2:00:10:ab:cd brd ff:ff:ff:ff:ff:ff link-netnsid 0\n    alias lab", "3a:f2:00:10:ab:cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHardwareAddr("eth0", tt.output)
			if err != nil {
				t.Fatalf("ParseHardwareAddr() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseHardwareAddr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHardwareAddr(t *testing.T) {
	q := &fakeQuerier{out: map[string]string{"eth0": ethOutput}}
	r := &Resolver{Querier: q}

	mac, err := r.HardwareAddr(context.Background(), "eth0")
	if err != nil {
		t.Fatalf("HardwareAddr() error = %v", err)
	}
	if mac != "aa:bb:cc:dd:ee:ff" {
		t.Errorf("HardwareAddr() = %q", mac)
	}
	if len(q.calls) != 1 || q.calls[0] != "eth0" {
		t.Errorf("unexpected queries: %v", q.calls)
	}
}

func TestHardwareAddrNoEther(t *testing.T) {
	r := &Resolver{Querier: &fakeQuerier{out: map[string]string{"lo": loOutput}}}

	_, err := r.HardwareAddr(context.Background(), "lo")
	var notFound *AddressNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected AddressNotFoundError, got %v", err)
	}
	if notFound.Name != "lo" {
		t.Errorf("error names %q, want lo", notFound.Name)
	}
}

func TestHardwareAddrMissingInterface(t *testing.T) {
	r := &Resolver{Querier: &fakeQuerier{}}

	_, err := r.HardwareAddr(context.Background(), "nosuch0")
	var qerr *InterfaceQueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected InterfaceQueryError, got %v", err)
	}
	if qerr.Name != "nosuch0" {
		t.Errorf("error names %q, want nosuch0", qerr.Name)
	}
	if qerr.Unwrap() == nil {
		t.Error("InterfaceQueryError should carry the underlying cause")
	}
}

func TestHardwareAddrEmptyName(t *testing.T) {
	q := &fakeQuerier{}
	r := &Resolver{Querier: q}

	_, err := r.HardwareAddr(context.Background(), "")
	var qerr *InterfaceQueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected InterfaceQueryError, got %v", err)
	}
	if len(q.calls) != 0 {
		t.Errorf("querier should not run for an empty name, got %v", q.calls)
	}
}

func TestIPLinkCommandFailure(t *testing.T) {
	r := &Resolver{Querier: IPLink{Path: "/nonexistent/ip"}}

	_, err := r.HardwareAddr(context.Background(), "eth0")
	var qerr *InterfaceQueryError
	if !errors.As(err, &qerr) {
		t.Fatalf("expected InterfaceQueryError, got %v", err)
	}
}
