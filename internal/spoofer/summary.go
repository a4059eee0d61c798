package spoofer

import (
	"fmt"

	"github.com/mdlayher/arp"
	"github.com/mdlayher/ethernet"
)

// Summary decodes a serialized ARP frame and renders it in one line, e.g.
// "Ether 11:22:33:44:55:66 < aa:bb:cc:dd:ee:ff / ARP reply 172.20.32.132 is at aa:bb:cc:dd:ee:ff".
func Summary(frame []byte) (string, error) {
	var f ethernet.Frame
	if err := f.UnmarshalBinary(frame); err != nil {
		return "", fmt.Errorf("decode ethernet: %w", err)
	}
	if f.EtherType != ethernet.EtherTypeARP {
		return "", fmt.Errorf("not an ARP frame (ethertype %#04x)", uint16(f.EtherType))
	}

	var p arp.Packet
	if err := p.UnmarshalBinary(f.Payload); err != nil {
		return "", fmt.Errorf("decode arp: %w", err)
	}

	var what string
	switch p.Operation {
	case arp.OperationReply:
		what = fmt.Sprintf("reply %s is at %s", p.SenderIP, p.SenderHardwareAddr)
	case arp.OperationRequest:
		what = fmt.Sprintf("who-has %s says %s", p.TargetIP, p.SenderIP)
	default:
		what = fmt.Sprintf("op %d", p.Operation)
	}
	return fmt.Sprintf("Ether %s < %s / ARP %s", f.Destination, f.Source, what), nil
}
