package clock

import (
	"context"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/checkout/internal/config"
)

func TestNewSystemDefaultsToUTC(t *testing.T) {
	c, err := NewSystem("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc := c.Now().Location(); loc != time.UTC {
		t.Fatalf("expected UTC, got %v", loc)
	}
}

func TestNewSystemLoadsLocation(t *testing.T) {
	c, err := NewSystem("Asia/Singapore")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	if name := c.Now().Location().String(); name != "Asia/Singapore" {
		t.Fatalf("unexpected location %q", name)
	}
}

func TestNewSystemRejectsUnknownLocation(t *testing.T) {
	if _, err := NewSystem("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown location")
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	if got := Fixed(at).Now(); !got.Equal(at) {
		t.Fatalf("expected %v, got %v", at, got)
	}
}

func TestModuleProvidesClock(t *testing.T) {
	var resolved Clock
	app := fx.New(
		fx.NopLogger,
		fx.Supply(&config.Config{}),
		Module,
		fx.Populate(&resolved),
	)
	t.Cleanup(func() { _ = app.Stop(context.Background()) })
	if err := app.Err(); err != nil {
		t.Fatalf("fx app failed: %v", err)
	}
	if resolved == nil {
		t.Fatal("expected clock to be populated")
	}
}
