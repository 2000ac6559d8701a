package observability

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
)

func TestServe_ExposesRegistry(t *testing.T) {
	reg := InitRegistry()
	ObserveSessionEvent("slide.next", "ok")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := serveOn(ln, reg)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	res, err := http.Get("http://" + ln.Addr().String() + "/metrics")
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if !strings.Contains(string(body), "homestay_view_session_events_total") {
		t.Fatalf("listener does not expose homestay metrics:\n%s", body)
	}
}

func TestServe_EmptyAddrDisabled(t *testing.T) {
	if err := Serve("", InitRegistry()); err != nil {
		t.Fatalf("disabled listener returned %v", err)
	}
}
