// rawprobe checks that a raw AF_PACKET socket can be opened, bound to an
// interface and used to send a frame. It always exits with status 0 and
// reports the outcome on stdout.
package main

import (
	"errors"
	"flag"
	"os"

	"arplab/internal/config"
	"arplab/internal/console"
	"arplab/internal/probe"
)

func main() {
	out := console.New(os.Stdout)

	cfg, err := config.ParseProbe("rawprobe", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		out.Failf("config: %v", err)
		return
	}

	probe.Run(out, probe.OpenPacket, cfg.Probe.Iface, cfg.Probe.Size)
}
