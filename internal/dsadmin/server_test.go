package dsadmin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ridgeline-robotics/dsproto/internal/auth"
	"github.com/ridgeline-robotics/dsproto/internal/dsprotocol"
	"github.com/ridgeline-robotics/dsproto/internal/dsstate"
)

func newTestServer(t *testing.T, validator auth.Validator) *Server {
	t.Helper()
	state := dsstate.New()
	state.SetTeamNumber(4499)
	descriptor := dsprotocol.New(state)
	return New("ds-test", descriptor, validator, nil)
}

func TestHealthRoute(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestStatusRouteReflectsState(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if uint16(body["team_number"].(float64)) != 4499 {
		t.Fatalf("unexpected team_number in status body: %#v", body["team_number"])
	}
}

func TestRebootRouteWithoutValidatorIsOpen(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/reboot", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("expected status 202, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !s.descriptor.Runtime().RebootLatch() {
		t.Fatalf("expected reboot latch set")
	}
}

func TestRebootRouteRequiresToken(t *testing.T) {
	s := newTestServer(t, auth.StaticToken{Token: "secret"})

	unauthorized := httptest.NewRequest(http.MethodPost, "/reboot", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, unauthorized)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
	if s.descriptor.Runtime().RebootLatch() {
		t.Fatalf("unauthenticated request must not set the reboot latch")
	}

	authorized := httptest.NewRequest(http.MethodPost, "/restart-code", nil)
	authorized.Header.Set("Authorization", "secret")
	rr2 := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr2, authorized)
	if rr2.Code != http.StatusAccepted {
		t.Fatalf("expected 202 with correct token, got %d body=%s", rr2.Code, rr2.Body.String())
	}
	if !s.descriptor.Runtime().RestartCodeLatch() {
		t.Fatalf("expected restart-code latch set")
	}
}

func TestMetricsRouteReturnsOK(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
}
