// Package probe checks whether the current process may send raw link-layer
// frames.
package probe

import (
	"fmt"
	"io"
)

// DefaultFrameSize is the length of the zero-filled probe frame.
const DefaultFrameSize = 64

// Socket is a raw link-layer socket.
type Socket interface {
	Bind(iface string) error
	Send(b []byte) error
	Close() error
}

// Opener creates an unbound Socket.
type Opener func() (Socket, error)

// ProbeError records which step of the probe failed.
type ProbeError struct {
	Op  string
	Err error
}

func (e *ProbeError) Error() string { return e.Err.Error() }

func (e *ProbeError) Unwrap() error { return e.Err }

// Check opens a socket, binds it to iface and sends size zero bytes.
func Check(open Opener, iface string, size int) error {
	sock, err := open()
	if err != nil {
		return &ProbeError{Op: "socket", Err: err}
	}
	defer sock.Close()

	if err := sock.Bind(iface); err != nil {
		return &ProbeError{Op: "bind", Err: err}
	}
	if err := sock.Send(make([]byte, size)); err != nil {
		return &ProbeError{Op: "send", Err: err}
	}
	return nil
}

// Run performs Check and reports the outcome on w. It never fails; the
// return value only tells the caller whether the send went through.
func Run(w io.Writer, open Opener, iface string, size int) bool {
	if err := Check(open, iface, size); err != nil {
		fmt.Fprintf(w, "Raw socket error: %v\n", err)
		return false
	}
	fmt.Fprintln(w, "Raw socket send succeeded")
	return true
}
