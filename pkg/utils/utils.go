package utils

import (
	"fmt"
	"math/rand"
	"net"
	"os"
	"path/filepath"
)

// GetHostname returns the hostname for the current machine
func GetHostname() string {
	hn, err := os.Hostname()
	if err != nil {
		return ""
	}

	return hn
}

// GetLocalIPAndHostname returns the first non loopback IPv4 address of the
// machine, used to show the address the panel can be reached on from other devices
func GetLocalIPAndHostname() (string, string) {
	netInterfaceAddresses, err := net.InterfaceAddrs()
	if err != nil {
		return "", ""
	}

	for _, netInterfaceAddress := range netInterfaceAddresses {
		networkIP, ok := netInterfaceAddress.(*net.IPNet)
		if ok && !networkIP.IP.IsLoopback() && networkIP.IP.To4() != nil {
			ip := networkIP.IP.String()
			return ip, GetHostname()
		}
	}

	return "127.0.0.1", "localhost"
}

// EnsureAbsolute returns the absolute form of the given path
func EnsureAbsolute(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}

	return abs
}

// RandomAvailablePort returns a random free port in the given range
func RandomAvailablePort(from, to int) (int, error) {

	// checks 10 times for a free port
	for i := 0; i < 10; i++ {
		port := rand.Intn(to-from) + from

		// check if the port is available
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()

			return port, nil
		}
	}

	return 0, fmt.Errorf("unable to find a free port in the range %d-%d", from, to)
}
