// Package spoofer builds and transmits unsolicited ARP replies.
//
// The sender asserts an IP-to-MAC binding without waiting for a request and
// without checking that the binding is topologically correct. It is a lab
// tool for exercising a user-space network stack, not an ARP responder.
package spoofer

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// MACResolver looks up the hardware address of a named interface.
type MACResolver interface {
	HardwareAddr(ctx context.Context, name string) (string, error)
}

// Options selects the interfaces, addresses and pacing of one run.
type Options struct {
	// Iface is the interface the reply is sent from. Its MAC is the
	// Ethernet source and the ARP sender hardware address.
	Iface string
	// Peer is the interface whose MAC becomes the Ethernet destination
	// and the ARP target hardware address.
	Peer string

	SenderIP net.IP
	TargetIP net.IP

	Count    int
	Interval time.Duration
}

// Result describes a completed run.
type Result struct {
	IfaceMAC net.HardwareAddr
	PeerMAC  net.HardwareAddr
	Frame    []byte
	Sent     int
}

// TransmissionError reports a failure to open or write to the interface.
type TransmissionError struct {
	Iface string
	Err   error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmit on %s: %v", e.Iface, e.Err)
}

func (e *TransmissionError) Unwrap() error { return e.Err }

// Sender resolves the two interfaces, builds the reply once and sends it
// Count times.
type Sender struct {
	Resolver MACResolver
	Open     Opener
	// Out receives status lines. Nil discards them.
	Out io.Writer
	// Sleep pauses between sends. Defaults to a context-aware time.Sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Run performs one announcement. Resolver errors are returned unmodified and
// nothing is transmitted in that case.
func (s *Sender) Run(ctx context.Context, opts Options) (*Result, error) {
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	sleep := s.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	ifaceMAC, err := s.resolve(ctx, opts.Iface)
	if err != nil {
		return nil, err
	}
	peerMAC, err := s.resolve(ctx, opts.Peer)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "%s MAC address: %s\n", opts.Iface, ifaceMAC)
	fmt.Fprintf(out, "%s MAC address: %s\n", opts.Peer, peerMAC)

	frame, err := BuildReply(Reply{
		SrcMAC:    ifaceMAC,
		DstMAC:    peerMAC,
		SenderMAC: ifaceMAC,
		SenderIP:  opts.SenderIP,
		TargetMAC: peerMAC,
		TargetIP:  opts.TargetIP,
	})
	if err != nil {
		return nil, err
	}
	if line, err := Summary(frame); err == nil {
		fmt.Fprintln(out, line)
	}

	tx, err := s.Open(opts.Iface)
	if err != nil {
		return nil, &TransmissionError{Iface: opts.Iface, Err: err}
	}
	defer tx.Close()

	res := &Result{IfaceMAC: ifaceMAC, PeerMAC: peerMAC, Frame: frame}
	for i := 0; i < opts.Count; i++ {
		if i > 0 {
			if err := sleep(ctx, opts.Interval); err != nil {
				return res, err
			}
		}
		if err := tx.Transmit(frame); err != nil {
			return res, &TransmissionError{Iface: opts.Iface, Err: err}
		}
		res.Sent++
	}

	fmt.Fprintf(out, "Sent %d packets.\n", res.Sent)
	return res, nil
}

func (s *Sender) resolve(ctx context.Context, name string) (net.HardwareAddr, error) {
	text, err := s.Resolver.HardwareAddr(ctx, name)
	if err != nil {
		return nil, err
	}
	mac, err := net.ParseMAC(text)
	if err != nil {
		return nil, fmt.Errorf("interface %s reported unusable address %q: %w", name, text, err)
	}
	return mac, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
