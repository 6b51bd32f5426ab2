package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	log := New(zerolog.DebugLevel)
	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected level debug, got %s", log.GetLevel())
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Run("writes messages at or above the level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := NewWithWriter(buf, zerolog.InfoLevel)

		log.Info().Str("week", "1").Msg("snapshot refreshed")

		output := buf.String()
		if !strings.Contains(output, "snapshot refreshed") {
			t.Errorf("Expected output to contain 'snapshot refreshed', got: %s", output)
		}
		if !strings.Contains(output, `"week":"1"`) {
			t.Errorf("Expected output to contain week field, got: %s", output)
		}
	})

	t.Run("drops messages below the level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := NewWithWriter(buf, zerolog.WarnLevel)

		log.Info().Msg("ignored")

		if buf.Len() != 0 {
			t.Errorf("Expected no output, got: %s", buf.String())
		}
	})
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	testLog := NewWithWriter(buf, zerolog.InfoLevel)
	ctx := WithContext(context.Background(), testLog)

	retrievedLog := FromContext(ctx)
	retrievedLog.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())

	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected default logger at info, got %s", log.GetLevel())
	}
}
