// okc-mock impersonates the OpenKeychain side of the proxy protocol
// against a running okc-gpg listener.  It is a development tool:
// point OKGPG_LAUNCHER at it, or run it by hand against a known port,
// to exercise the relay without an Android device.
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/okc-agents/okgpg/internal/launch"
	"github.com/okc-agents/okgpg/internal/protocol"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "okc-mock: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		port    int
		status  int
		warns   []string
		pulls   []string
		push    string
		discard bool
	)
	fs := flag.NewFlagSet("okc-mock", flag.ContinueOnError)
	fs.IntVarP(&port, "port", "p", 0, "Proxy port to dial (default: $OKGPG_PROXY_PORT)")
	fs.IntVarP(&status, "status", "s", 0, "Status code to report on the control connection")
	fs.StringArrayVarP(&warns, "warn", "w", nil, "Warning to send before the status (repeatable)")
	fs.StringArrayVar(&pulls, "pull", nil, "Source the proxy should stream to us, path or - (repeatable)")
	fs.StringVar(&push, "push", "", "Sink for our stdin on the proxy side, path or -")
	fs.BoolVar(&discard, "discard", false, "Discard pulled bytes instead of copying them to stdout")
	fs.Usage = func() { printUsage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	if port == 0 {
		if v := os.Getenv(launch.EnvProxyPort); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s=%q: %w", launch.EnvProxyPort, v, err)
			}
			port = n
		}
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("a proxy port is required (--port or $%s)", launch.EnvProxyPort)
	}
	if status < 0 || status > 255 {
		return fmt.Errorf("status %d out of range 0-255", status)
	}

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	for _, path := range pulls {
		if err := pull(addr, path, discard); err != nil {
			return fmt.Errorf("pull %s: %w", path, err)
		}
	}
	if push != "" {
		if err := pushStdin(addr, push); err != nil {
			return fmt.Errorf("push %s: %w", push, err)
		}
	}
	return control(addr, warns, byte(status))
}

// dial opens a tagged connection to the proxy.
func dial(addr string, t protocol.ConnType) (net.Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	if err := protocol.WriteConnType(conn, t); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// pull asks the proxy to stream the named source to us and copies the
// bytes to stdout.
func pull(addr, path string, discard bool) error {
	conn, err := dial(addr, protocol.ConnInput)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := protocol.WriteFrame(conn, path); err != nil {
		return err
	}
	dst := io.Writer(os.Stdout)
	if discard {
		dst = io.Discard
	}
	_, err = io.Copy(dst, conn)
	return err
}

// pushStdin streams our stdin into the proxy, to be written to the
// named sink on its side.
func pushStdin(addr, path string) error {
	conn, err := dial(addr, protocol.ConnOutput)
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := protocol.WriteFrame(conn, path); err != nil {
		return err
	}
	_, err = io.Copy(conn, os.Stdin)
	return err
}

// control sends the warning sequence, the empty terminator, and the
// status byte, deciding the proxy's exit status.
func control(addr string, warns []string, status byte) error {
	conn, err := dial(addr, protocol.ConnControl)
	if err != nil {
		return err
	}
	defer conn.Close()
	for _, w := range warns {
		if err := protocol.WriteFrame(conn, w); err != nil {
			return err
		}
	}
	if err := protocol.WriteFrame(conn, ""); err != nil {
		return err
	}
	_, err = conn.Write([]byte{status})
	return err
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `okc-mock – stand-in for the OpenKeychain app

Dials a running okc-gpg listener and speaks the proxy protocol:
optional input/output relays, then a control session that decides
okc-gpg's exit status.

Usage:
  okc-mock --port <port> [options]
  OKGPG_LAUNCHER='okc-mock --status 0' okc-gpg --version

Options:
`)
	fs.PrintDefaults()
}
