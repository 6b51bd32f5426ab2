package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/fieldcrypt"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/logger"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/repository"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/service"
)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// NewTestAspiranteService builds an AspiranteService over db with plaintext
// storage, UTC calendar and the given clock.
func NewTestAspiranteService(t *testing.T, db *sql.DB, now func() time.Time) *service.AspiranteService {
	t.Helper()

	aspiranteRepo := repository.NewAspiranteRepository(db, nil)

	return service.NewAspiranteService(db, aspiranteRepo, time.UTC).WithClock(now)
}

// NewTestAspiranteServiceWithCipher is NewTestAspiranteService with personal
// data encrypted under a fresh key.
func NewTestAspiranteServiceWithCipher(t *testing.T, db *sql.DB, now func() time.Time) *service.AspiranteService {
	t.Helper()

	aspiranteRepo := repository.NewAspiranteRepository(db, NewTestCipher(t))

	return service.NewAspiranteService(db, aspiranteRepo, time.UTC).WithClock(now)
}

func NewTestDashboardService(t *testing.T, db *sql.DB, now func() time.Time) *service.DashboardService {
	t.Helper()

	aspiranteRepo := repository.NewAspiranteRepository(db, nil)

	return service.NewDashboardService(aspiranteRepo, time.UTC).WithClock(now)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB, now func() time.Time) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewAspiranteRepository(db, nil),
		repository.NewSnapshotRepository(db),
		time.UTC,
		logger.Nop(),
	).WithClock(now)
}

func NewTestExportService(t *testing.T, db *sql.DB, now func() time.Time) *service.ExportService {
	t.Helper()

	return service.NewExportService(NewTestAspiranteService(t, db, now), time.UTC)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, map[string]bool{})
}

// NewTestCipher returns a field cipher with a freshly generated key.
func NewTestCipher(t *testing.T) *fieldcrypt.Cipher {
	t.Helper()

	key, err := fieldcrypt.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	c, err := fieldcrypt.New(key)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}
	return c
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique party name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Finca")
//	// Returns: "Finca ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Aspirante"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeIdentification generates a ten-digit identification number.
func MakeIdentification() string {
	const digits = "0123456789"
	result := make([]byte, 10)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = digits[rand.Intn(len(digits))]
	}
	return string(result)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
