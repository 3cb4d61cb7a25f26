// Package testutils provides in-memory fasthttp servers for package tests.
package testutils

import (
	"net"
	"testing"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// Server is a fasthttp server bound to an in-memory listener.
type Server struct {
	// URL is the base URL clients should use, e.g. "http://upstream.test".
	URL    string
	Client *fasthttp.HostClient

	ln  *fasthttputil.InmemoryListener
	srv *fasthttp.Server
}

// NewServer starts handler on an in-memory listener reachable as host.
// The server is shut down when the test finishes.
func NewServer(t *testing.T, host string, handler fasthttp.RequestHandler) *Server {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	s := &Server{
		URL: "http://" + host,
		ln:  ln,
		srv: &fasthttp.Server{Handler: handler},
	}
	s.Client = &fasthttp.HostClient{
		Addr: host,
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}

	go func() {
		_ = s.srv.Serve(ln)
	}()
	t.Cleanup(s.Close)
	return s
}

// Dial connects to the server, ignoring addr.
func (s *Server) Dial(string) (net.Conn, error) {
	return s.ln.Dial()
}

func (s *Server) Close() {
	_ = s.ln.Close()
}
