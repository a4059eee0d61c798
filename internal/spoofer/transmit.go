package spoofer

import (
	"fmt"
	"net"

	"github.com/google/gopacket/pcap"
	"github.com/mdlayher/ethernet"
	"github.com/mdlayher/packet"
)

// Transmitter writes complete link-layer frames to an interface.
type Transmitter interface {
	Transmit(frame []byte) error
	Close() error
}

// Opener returns a Transmitter bound to the named interface.
type Opener func(iface string) (Transmitter, error)

// Backends accepted by OpenerFor.
const (
	BackendPcap   = "pcap"
	BackendPacket = "packet"
)

// OpenerFor returns the Opener for a transmit backend name.
func OpenerFor(backend string) (Opener, error) {
	switch backend {
	case "", BackendPcap:
		return OpenPcap, nil
	case BackendPacket:
		return OpenPacket, nil
	default:
		return nil, fmt.Errorf("unknown transmit backend %q", backend)
	}
}

// PcapTransmitter sends frames through a libpcap handle.
type PcapTransmitter struct {
	handle *pcap.Handle
}

// OpenPcap opens a live pcap handle on iface.
func OpenPcap(iface string) (Transmitter, error) {
	handle, err := pcap.OpenLive(iface, 65536, false, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("failed to open pcap handle: %w", err)
	}
	return &PcapTransmitter{handle: handle}, nil
}

func (t *PcapTransmitter) Transmit(frame []byte) error {
	return t.handle.WritePacketData(frame)
}

func (t *PcapTransmitter) Close() error {
	t.handle.Close()
	return nil
}

// PacketTransmitter sends frames over an AF_PACKET socket without libpcap.
type PacketTransmitter struct {
	conn *packet.Conn
}

// OpenPacket binds a raw packet socket to iface.
func OpenPacket(iface string) (Transmitter, error) {
	ifi, err := net.InterfaceByName(iface)
	if err != nil {
		return nil, fmt.Errorf("failed to get interface: %w", err)
	}
	conn, err := packet.Listen(ifi, packet.Raw, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", iface, err)
	}
	return &PacketTransmitter{conn: conn}, nil
}

// Transmit addresses the socket write to the frame's own Ethernet
// destination.
func (t *PacketTransmitter) Transmit(frame []byte) error {
	var f ethernet.Frame
	if err := f.UnmarshalBinary(frame); err != nil {
		return fmt.Errorf("malformed frame: %w", err)
	}
	_, err := t.conn.WriteTo(frame, &packet.Addr{HardwareAddr: f.Destination})
	return err
}

func (t *PacketTransmitter) Close() error {
	return t.conn.Close()
}
