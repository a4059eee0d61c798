// Package config holds the settings of the arpreply and rawprobe tools.
//
// Every field has a default matching the reference lab setup, so both tools
// run without arguments. A YAML file and command-line flags may override
// them; flags win over the file.
package config

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Reply configures arpreply.
type Reply struct {
	Iface    string        `yaml:"iface"`
	Peer     string        `yaml:"peer"`
	SenderIP string        `yaml:"sender_ip"`
	TargetIP string        `yaml:"target_ip"`
	Count    int           `yaml:"count"`
	Interval time.Duration `yaml:"interval"`
	Backend  string        `yaml:"backend"`
}

// Probe configures rawprobe.
type Probe struct {
	Iface string `yaml:"iface"`
	Size  int    `yaml:"size"`
}

type Config struct {
	Reply Reply `yaml:"reply"`
	Probe Probe `yaml:"probe"`
}

// Default returns the reference lab configuration.
func Default() *Config {
	return &Config{
		Reply: Reply{
			Iface:    "eth0",
			Peer:     "veth0",
			SenderIP: "172.20.32.132",
			TargetIP: "192.168.200.1",
			Count:    3,
			Interval: 500 * time.Millisecond,
			Backend:  "pcap",
		},
		Probe: Probe{
			Iface: "eth0",
			Size:  64,
		},
	}
}

// Load reads a YAML file. Fields the file leaves empty keep their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field syntax. It does not check that the IP addresses
// belong to the interfaces.
func (c *Config) Validate() error {
	r := c.Reply
	if r.Iface == "" || r.Peer == "" {
		return fmt.Errorf("reply.iface and reply.peer are required")
	}
	if ip := net.ParseIP(r.SenderIP); ip == nil || ip.To4() == nil {
		return fmt.Errorf("reply.sender_ip must be IPv4, got %q", r.SenderIP)
	}
	if ip := net.ParseIP(r.TargetIP); ip == nil || ip.To4() == nil {
		return fmt.Errorf("reply.target_ip must be IPv4, got %q", r.TargetIP)
	}
	if r.Count <= 0 {
		return fmt.Errorf("reply.count must be positive, got %d", r.Count)
	}
	if r.Interval < 0 {
		return fmt.Errorf("reply.interval must not be negative")
	}
	if c.Probe.Iface == "" {
		return fmt.Errorf("probe.iface is required")
	}
	if c.Probe.Size <= 0 {
		return fmt.Errorf("probe.size must be positive, got %d", c.Probe.Size)
	}
	return nil
}

// ParseReply builds the arpreply configuration from command-line args.
func ParseReply(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "Path to YAML config file")
	set := Default()
	fs.StringVar(&set.Reply.Iface, "iface", set.Reply.Iface, "Interface to send from (its MAC is the announced address)")
	fs.StringVar(&set.Reply.Peer, "peer", set.Reply.Peer, "Interface whose MAC is the frame destination")
	fs.StringVar(&set.Reply.SenderIP, "src-ip", set.Reply.SenderIP, "IP address announced by the reply")
	fs.StringVar(&set.Reply.TargetIP, "dst-ip", set.Reply.TargetIP, "ARP target protocol address")
	fs.IntVar(&set.Reply.Count, "count", set.Reply.Count, "Number of times the reply is sent")
	fs.DurationVar(&set.Reply.Interval, "interval", set.Reply.Interval, "Delay between sends")
	fs.StringVar(&set.Reply.Backend, "backend", set.Reply.Backend, "Transmit backend: pcap or packet")
	return parse(fs, args, path, set, replyOverrides)
}

// ParseProbe builds the rawprobe configuration from command-line args.
func ParseProbe(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "Path to YAML config file")
	set := Default()
	fs.StringVar(&set.Probe.Iface, "iface", set.Probe.Iface, "Interface to bind the raw socket to")
	fs.IntVar(&set.Probe.Size, "size", set.Probe.Size, "Length of the zero-filled probe frame")
	return parse(fs, args, path, set, probeOverrides)
}

func parse(fs *flag.FlagSet, args []string, path *string, set *Config, overrides map[string]func(dst, src *Config)) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		if err := set.Validate(); err != nil {
			return nil, err
		}
		return set, nil
	}

	c, err := Load(*path)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply(c, set)
		}
	})
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Overrides copy an explicitly set flag from src onto dst.
var replyOverrides = map[string]func(dst, src *Config){
	"iface":    func(dst, src *Config) { dst.Reply.Iface = src.Reply.Iface },
	"peer":     func(dst, src *Config) { dst.Reply.Peer = src.Reply.Peer },
	"src-ip":   func(dst, src *Config) { dst.Reply.SenderIP = src.Reply.SenderIP },
	"dst-ip":   func(dst, src *Config) { dst.Reply.TargetIP = src.Reply.TargetIP },
	"count":    func(dst, src *Config) { dst.Reply.Count = src.Reply.Count },
	"interval": func(dst, src *Config) { dst.Reply.Interval = src.Reply.Interval },
	"backend":  func(dst, src *Config) { dst.Reply.Backend = src.Reply.Backend },
}

var probeOverrides = map[string]func(dst, src *Config){
	"iface": func(dst, src *Config) { dst.Probe.Iface = src.Probe.Iface },
	"size":  func(dst, src *Config) { dst.Probe.Size = src.Probe.Size },
}
