package serve

import "net"

// LocalIP discovers the LAN-reachable address of this machine by opening
// a UDP socket toward a public resolver. Nothing is sent; connecting a
// datagram socket only makes the kernel pick the outbound interface.
func LocalIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return addr.IP.String()
}
