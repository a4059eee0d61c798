package spoofer

import (
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Reply describes an Ethernet-framed ARP reply asserting that SenderIP is
// reachable at SenderMAC.
type Reply struct {
	SrcMAC net.HardwareAddr
	DstMAC net.HardwareAddr

	SenderMAC net.HardwareAddr
	SenderIP  net.IP
	TargetMAC net.HardwareAddr
	TargetIP  net.IP
}

// BuildReply serializes r into a wire-ready frame. The addresses are not
// checked against any interface configuration.
func BuildReply(r Reply) ([]byte, error) {
	for _, mac := range []net.HardwareAddr{r.SrcMAC, r.DstMAC, r.SenderMAC, r.TargetMAC} {
		if len(mac) != 6 {
			return nil, fmt.Errorf("invalid ethernet address %q", mac.String())
		}
	}
	senderIP, targetIP := r.SenderIP.To4(), r.TargetIP.To4()
	if senderIP == nil || targetIP == nil {
		return nil, fmt.Errorf("sender and target must be IPv4 (got %v, %v)", r.SenderIP, r.TargetIP)
	}

	eth := layers.Ethernet{
		SrcMAC:       r.SrcMAC,
		DstMAC:       r.DstMAC,
		EthernetType: layers.EthernetTypeARP,
	}
	arp := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPReply,
		SourceHwAddress:   []byte(r.SenderMAC),
		SourceProtAddress: []byte(senderIP),
		DstHwAddress:      []byte(r.TargetMAC),
		DstProtAddress:    []byte(targetIP),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true}
	if err := gopacket.SerializeLayers(buf, opts, &eth, &arp); err != nil {
		return nil, fmt.Errorf("serialize arp reply: %w", err)
	}
	return buf.Bytes(), nil
}
