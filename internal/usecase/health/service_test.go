package health

import (
	"context"
	"errors"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(context.Context) error { return m.err }

func TestCheck_Healthy(t *testing.T) {
	svc := New(&mockPinger{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %q", report.Status)
	}
	if report.Checks["search_engine"] != CheckOK {
		t.Errorf("search_engine = %q", report.Checks["search_engine"])
	}
}

func TestCheck_Degraded(t *testing.T) {
	svc := New(&mockPinger{err: errors.New("connection refused")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %q", report.Status)
	}
	if report.Checks["search_engine"] != CheckError {
		t.Errorf("search_engine = %q", report.Checks["search_engine"])
	}
}
