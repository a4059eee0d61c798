//go:build !linux

package probe

import (
	"fmt"
	"runtime"
)

// OpenPacket reports that AF_PACKET sockets are unavailable.
func OpenPacket() (Socket, error) {
	return nil, fmt.Errorf("AF_PACKET sockets not supported on %s", runtime.GOOS)
}
