package cli

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/apperrors"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FIELD_ENCRYPTION_KEY", "")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LOG_LEVEL", "warn")

	app := NewApp()
	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetErr(&out)
	app.rootCmd.SetArgs(args)
	err := app.rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

const legacyPayload = `[
  {"_id": "65f0c1", "nombre": "Ana", "identificacion": "123", "telefono": "300", "estado": "compra",
   "tipo_cafe": "Caturra", "peso": "1000", "precio": "50000", "date_create": "2024-03-03T10:00:00Z", "__v": 0},
  {"_id": "65f0c2", "nombre": "Luis", "identificacion": "456", "telefono": "301", "estado": "venta",
   "tipo_cafe": "Caturra", "peso": "200", "precio": "15000", "date_create": "2024-03-04T10:00:00Z"}
]`

func TestImportAndExport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")
	legacy := filepath.Join(dir, "legacy.json")
	if err := os.WriteFile(legacy, []byte(legacyPayload), 0o600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	if _, err := runCLI(t, "--db", dbPath, "import", "--file", legacy); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	csvPath := filepath.Join(dir, "out.csv")
	if _, err := runCLI(t, "--db", dbPath, "export", "csv",
		"--out", csvPath, "--period", "week", "--year", "2024", "--month", "3", "--week", "1"); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatalf("Failed to open export: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("Expected header and 2 rows, got %d rows", len(rows))
	}
}

func TestImportRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy.json")
	if err := os.WriteFile(legacy, []byte(`{"not": "an array"}`), 0o600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}

	_, err := runCLI(t, "--db", filepath.Join(dir, "cli.db"), "import", "--file", legacy)
	if err == nil || !strings.Contains(err.Error(), "not a JSON array") {
		t.Errorf("Expected malformed file error, got %v", err)
	}
}

func TestExportRejectsInvalidPeriod(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "--db", filepath.Join(dir, "cli.db"), "export", "csv",
		"--period", "week", "--year", "2024", "--month", "3", "--week", "6")
	if err == nil {
		t.Error("Expected error for week 6")
	}
}

func TestSummaryWeekCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")
	legacy := filepath.Join(dir, "legacy.json")
	if err := os.WriteFile(legacy, []byte(legacyPayload), 0o600); err != nil {
		t.Fatalf("Failed to write legacy file: %v", err)
	}
	if _, err := runCLI(t, "--db", dbPath, "import", "--file", legacy); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	out, err := runCLI(t, "--db", dbPath, "summary", "week", "--year", "2024", "--month", "3", "--week", "1")
	if err != nil {
		t.Fatalf("summary week failed: %v", err)
	}

	for _, want := range []string{"2024-03 week 1", "50000", "15000", "800"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMonthFlagRange(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "cli.db")

	tests := []struct {
		name string
		args []string
	}{
		{"summary week month 13", []string{"summary", "week", "--year", "2024", "--month", "13", "--week", "1"}},
		{"summary month negative", []string{"summary", "month", "--year", "2024", "--month=-1"}},
		{"export week without month", []string{"export", "csv", "--period", "week", "--year", "2024", "--week", "1"}},
		{"export month 13", []string{"export", "csv", "--period", "month", "--year", "2024", "--month", "13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, append([]string{"--db", dbPath}, tt.args...)...)
			if !errors.Is(err, apperrors.ErrInvalidPeriod) {
				t.Fatalf("Expected ErrInvalidPeriod, got %v", err)
			}
			if !strings.Contains(err.Error(), "between 1 and 12") {
				t.Errorf("Expected 1-12 range in error, got %q", err.Error())
			}
		})
	}
}

func TestMonthIndex(t *testing.T) {
	got, err := monthIndex(3)
	if err != nil || got != "2" {
		t.Errorf("Expected \"2\", got %q (%v)", got, err)
	}
	if _, err := monthIndex(0); err == nil {
		t.Error("Expected error for month 0")
	}
}

func TestDefaultBucket(t *testing.T) {
	// 2024-03-08T02:00Z is still 2024-03-07 in Bogota, the last day of week 1.
	now := time.Date(2024, time.March, 8, 2, 0, 0, 0, time.UTC)
	bogota := time.FixedZone("COT", -5*60*60)

	t.Run("fills unset flags in the configured location", func(t *testing.T) {
		var year, month, week int
		defaultBucket(now, bogota, &year, &month, &week)

		if year != 2024 || month != 3 || week != 1 {
			t.Errorf("Expected 2024-03 week 1, got %d-%d week %d", year, month, week)
		}
	})

	t.Run("keeps explicit flags", func(t *testing.T) {
		year, month, week := 2023, 12, 5
		defaultBucket(now, bogota, &year, &month, &week)

		if year != 2023 || month != 12 || week != 5 {
			t.Errorf("Expected 2023-12 week 5, got %d-%d week %d", year, month, week)
		}
	})

	t.Run("month commands have no week", func(t *testing.T) {
		var year, month int
		defaultBucket(now, time.UTC, &year, &month, nil)

		if year != 2024 || month != 3 {
			t.Errorf("Expected 2024-03, got %d-%d", year, month)
		}
	})
}
