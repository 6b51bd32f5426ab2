// Package export renders aspirantes as a CSV download and as a single-record
// PDF receipt.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// CSVHeader is the column row of the records download. Column names and
// order match the spreadsheet the business already uses.
var CSVHeader = []string{
	"Nombre",
	"Identificación",
	"Tipo_Cafe",
	"Peso",
	"Precio",
	"Precio_total",
	"Teléfono",
	"Estado",
	"Estado_monetario",
	"Fecha",
}

// WriteCSV writes records to w, header first, in the order given.
func WriteCSV(w io.Writer, records []model.Aspirante) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, a := range records {
		row := []string{
			a.Name,
			a.Identification,
			string(a.CoffeeType),
			a.Weight,
			a.Price,
			a.TotalPrice,
			a.Phone,
			string(a.Kind),
			string(a.PaymentStatus),
			a.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
