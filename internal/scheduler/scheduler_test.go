package scheduler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
)

func TestScheduler_Add(t *testing.T) {
	t.Run("accepts descriptors and standard specs", func(t *testing.T) {
		s := New(time.UTC, logger.Nop())
		noop := func(context.Context) error { return nil }

		if err := s.Add("hourly", "@hourly", noop); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if err := s.Add("monday", "0 6 * * 1", noop); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if s.Entries() != 2 {
			t.Errorf("Expected 2 entries, got %d", s.Entries())
		}
	})

	t.Run("rejects an invalid spec", func(t *testing.T) {
		s := New(time.UTC, logger.Nop())

		err := s.Add("broken", "every tuesday", func(context.Context) error { return nil })
		if err == nil {
			t.Error("Expected error for invalid spec")
		}
		if s.Entries() != 0 {
			t.Errorf("Expected 0 entries, got %d", s.Entries())
		}
	})
}

func TestScheduler_Run(t *testing.T) {
	t.Run("logs success", func(t *testing.T) {
		buf := &bytes.Buffer{}
		s := New(time.UTC, logger.NewWithWriter(buf, zerolog.InfoLevel))

		called := false
		s.run("snapshot", func(ctx context.Context) error {
			called = true
			if _, ok := ctx.Deadline(); !ok {
				t.Error("Expected job context to carry a deadline")
			}
			return nil
		})

		if !called {
			t.Error("Expected job to run")
		}
		if !strings.Contains(buf.String(), "scheduled job finished") {
			t.Errorf("Expected success log, got: %s", buf.String())
		}
	})

	t.Run("logs failure", func(t *testing.T) {
		buf := &bytes.Buffer{}
		s := New(time.UTC, logger.NewWithWriter(buf, zerolog.InfoLevel))

		s.run("snapshot", func(context.Context) error { return errors.New("database locked") })

		out := buf.String()
		if !strings.Contains(out, "scheduled job failed") || !strings.Contains(out, "database locked") {
			t.Errorf("Expected failure log with error, got: %s", out)
		}
	})
}

func TestScheduler_StartStop(t *testing.T) {
	s := New(time.UTC, logger.Nop())
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
