package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

func sample() model.Aspirante {
	return model.Aspirante{
		ID:             "550e8400-e29b-41d4-a716-446655440000",
		Name:           "María Gómez",
		Identification: "1098765432",
		Phone:          "3001234567",
		CoffeeType:     model.CoffeeCaturra,
		Weight:         "1000",
		Price:          "50000",
		TotalPrice:     "50000000",
		Kind:           model.KindPurchase,
		PaymentStatus:  model.PaymentPaid,
		CreatedAt:      "2024-03-03T15:00:00Z",
	}
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes header and one row per record", func(t *testing.T) {
		var buf bytes.Buffer
		second := sample()
		second.Name = "Pedro, el de la finca"

		if err := WriteCSV(&buf, []model.Aspirante{sample(), second}); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		rows, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("Failed to read CSV back: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("Expected 3 rows, got %d", len(rows))
		}
		for i, col := range CSVHeader {
			if rows[0][i] != col {
				t.Errorf("Expected header %q at %d, got %q", col, i, rows[0][i])
			}
		}
		if rows[1][0] != "María Gómez" || rows[1][2] != "Caturra" || rows[1][9] != "2024-03-03T15:00:00Z" {
			t.Errorf("Unexpected first row: %v", rows[1])
		}
		if rows[2][0] != "Pedro, el de la finca" {
			t.Errorf("Expected quoted name to round trip, got %q", rows[2][0])
		}
	})

	t.Run("empty input writes only the header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteCSV(&buf, nil); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		rows, _ := csv.NewReader(&buf).ReadAll()
		if len(rows) != 1 {
			t.Errorf("Expected header only, got %d rows", len(rows))
		}
	})
}

func TestWriteReceipt(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteReceipt(&buf, sample(), time.UTC); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("Expected PDF output, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestReceiptDate(t *testing.T) {
	bogota := time.FixedZone("COT", -5*60*60)

	if got := receiptDate("2024-03-03T15:00:00Z", bogota); got != "03/03/2024 10:00" {
		t.Errorf("Expected '03/03/2024 10:00', got '%s'", got)
	}
	if got := receiptDate("ayer", bogota); got != "ayer" {
		t.Errorf("Expected raw value for unparseable date, got '%s'", got)
	}
}
