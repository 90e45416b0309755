package middleware

import (
	"net/http/httptest"
	"net/netip"
	"testing"
)

func TestParseTrustedProxies(t *testing.T) {
	prefixes, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.5 ", "", "::1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prefixes) != 3 {
		t.Fatalf("expected 3 prefixes, got %v", prefixes)
	}
	if !prefixes[1].Contains(netip.MustParseAddr("192.168.1.5")) || prefixes[1].Bits() != 32 {
		t.Errorf("expected single-host prefix, got %v", prefixes[1])
	}

	if _, err := ParseTrustedProxies([]string{"not-an-ip"}); err == nil {
		t.Error("expected error for invalid entry")
	}
	if _, err := ParseTrustedProxies([]string{"10.0.0.0/40"}); err == nil {
		t.Error("expected error for invalid prefix")
	}
}

func TestClientIP(t *testing.T) {
	trusted := []netip.Prefix{netip.MustParsePrefix("10.0.0.0/8")}

	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{name: "Untrusted peer ignores header", remoteAddr: "203.0.113.7:5000", xff: "198.51.100.1", want: "203.0.113.7"},
		{name: "Trusted peer uses client", remoteAddr: "10.1.2.3:5000", xff: "198.51.100.1", want: "198.51.100.1"},
		{name: "Spoofed left entries are skipped", remoteAddr: "10.1.2.3:5000", xff: "1.1.1.1, 198.51.100.1, 10.0.0.9", want: "198.51.100.1"},
		{name: "Trusted peer without header", remoteAddr: "10.1.2.3:5000", xff: "", want: "10.1.2.3"},
		{name: "Garbage header falls back to peer", remoteAddr: "10.1.2.3:5000", xff: "bogus", want: "10.1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/products", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := clientIP(r, trusted); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
