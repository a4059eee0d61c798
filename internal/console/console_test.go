package console

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Infof("eth0 MAC address: %s", "aa:bb:cc:dd:ee:ff")
	p.Successf("Send complete!")
	p.Failf("Raw socket error: %v", "operation not permitted")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"eth0 MAC address: aa:bb:cc:dd:ee:ff",
		"Send complete!",
		"Raw socket error: operation not permitted",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i := range want {
		if !strings.Contains(lines[i], want[i]) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPrinterWrite(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	fmt.Fprintf(p, "first\nsecond\n")
	fmt.Fprint(p, "partial")

	lines := strings.Split(buf.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %q, want two complete lines and a partial one", buf.String())
	}
	for i, want := range []string{"first", "second", "partial"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}
