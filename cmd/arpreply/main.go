// arpreply announces an IP-to-MAC binding by sending unsolicited ARP replies
// from one interface to the MAC address of another.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"arplab/internal/config"
	"arplab/internal/console"
	"arplab/internal/netif"
	"arplab/internal/spoofer"
)

func main() {
	cfg, err := config.ParseReply("arpreply", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	rc := cfg.Reply

	open, err := spoofer.OpenerFor(rc.Backend)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := console.New(os.Stdout)
	s := &spoofer.Sender{
		Resolver: netif.NewResolver(),
		Open:     open,
		Out:      out,
	}

	_, err = s.Run(ctx, spoofer.Options{
		Iface:    rc.Iface,
		Peer:     rc.Peer,
		SenderIP: net.ParseIP(rc.SenderIP),
		TargetIP: net.ParseIP(rc.TargetIP),
		Count:    rc.Count,
		Interval: rc.Interval,
	})
	if err != nil {
		log.Fatalf("arp reply: %v", err)
	}
	out.Successf("Send complete!")
}
