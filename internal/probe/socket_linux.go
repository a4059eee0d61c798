//go:build linux

package probe

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

type packetSocket struct {
	fd int
}

// OpenPacket opens an AF_PACKET raw socket with protocol 0, so the kernel
// delivers nothing to it and only transmission is exercised.
func OpenPacket() (Socket, error) {
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, 0)
	if err != nil {
		return nil, err
	}
	return &packetSocket{fd: fd}, nil
}

func (s *packetSocket) Bind(iface string) error {
	ifi, err := net.InterfaceByName(iface)
	if err != nil {
		return err
	}
	if err := unix.Bind(s.fd, &unix.SockaddrLinklayer{Protocol: 0, Ifindex: ifi.Index}); err != nil {
		return fmt.Errorf("bind %s: %w", iface, err)
	}
	return nil
}

func (s *packetSocket) Send(b []byte) error {
	n, err := unix.Write(s.fd, b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(b))
	}
	return nil
}

func (s *packetSocket) Close() error {
	return unix.Close(s.fd)
}
