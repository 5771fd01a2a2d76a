package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// fingerprintTransport speaks HTTPS with a Chrome ClientHello. It tries HTTP/2
// first and falls back to HTTP/1.1 when the server does not negotiate h2.
type fingerprintTransport struct {
	h2    *http2.Transport
	h1    *http.Transport
	plain *http.Transport
}

func newFingerprintTransport(opts Options) *fingerprintTransport {
	t := &fingerprintTransport{plain: newTransport(opts)}

	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialChrome(ctx, opts, network, addr, nil)
		},
		ReadIdleTimeout: opts.ReadTimeout,
	}

	t.h1 = newTransport(opts)
	t.h1.ForceAttemptHTTP2 = false
	t.h1.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialChrome(ctx, opts, network, addr, []string{"http/1.1"})
	}

	return t
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if req.Context().Err() != nil {
		return nil, err
	}

	return t.h1.RoundTrip(req.Clone(req.Context()))
}

// dialChrome opens a TLS connection that mimics Chrome 120.
// nextProtos narrows ALPN, nil keeps Chrome's own list.
func dialChrome(ctx context.Context, opts Options, network, addr string, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := opts.dialer().DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
