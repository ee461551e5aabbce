package serve

import (
	"fmt"
	"net"
)

// PortScanAttempts is how many successive ports are tried when the
// requested one is busy, the requested port included.
const PortScanAttempts = 100

// ListenWithScan binds the requested TCP port on all interfaces, walking
// forward through successive ports when it is taken. The caller reads the
// actually bound port off the listener address.
func ListenWithScan(port, attempts int) (net.Listener, error) {
	var lastErr error
	for p := port; p < port+attempts; p++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", p))
		if err == nil {
			return ln, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no available port in %d-%d: %w", port, port+attempts-1, lastErr)
}

// listenerPort extracts the bound port, which matters when the scan moved
// forward or port 0 asked the kernel to choose.
func listenerPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
