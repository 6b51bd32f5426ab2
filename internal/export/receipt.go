package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/period"
)

var (
	headerColor     = []int{111, 78, 55}
	headerTextColor = []int{255, 255, 255}
	labelTextColor  = []int{90, 90, 90}
	bodyTextColor   = []int{33, 33, 33}
	lineColor       = []int{200, 200, 200}
)

var kindTitles = map[model.Kind]string{
	model.KindPurchase: "Comprobante de compra",
	model.KindSale:     "Comprobante de venta",
}

// WriteReceipt renders a one-page PDF receipt for a and writes it to w.
// Dates are printed in loc.
func WriteReceipt(w io.Writer, a model.Aspirante, loc *time.Location) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(fmt.Sprintf("Comprobante %s", a.ID)), false)
	pdf.AddPage()

	title, ok := kindTitles[a.Kind]
	if !ok {
		title = "Comprobante"
	}

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 14, tr("  "+title), "", 1, "L", true, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Nombre", a.Name},
		{"Teléfono", a.Phone},
		{"Tipo de café", string(a.CoffeeType)},
		{"Peso (g)", a.Weight},
		{"Precio (COP)", a.Price},
		{"Estado", string(a.Kind)},
		{"Estado monetario", string(a.PaymentStatus)},
		{"Fecha", receiptDate(a.CreatedAt, loc)},
	}
	if a.TotalPrice != "" {
		rows = append(rows, [2]string{"Precio total (COP)", a.TotalPrice})
	}

	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(labelTextColor[0], labelTextColor[1], labelTextColor[2])
		pdf.CellFormat(60, 9, tr(row[0]), "B", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 9, tr(row[1]), "B", 1, "L", false, 0, "")
	}

	pdf.SetY(-20)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Registro %s", a.ID)), "", 0, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}
	return nil
}

// receiptDate formats a stored timestamp for display, falling back to the
// raw value when it cannot be parsed.
func receiptDate(raw string, loc *time.Location) string {
	t, ok := period.ParseTimestamp(raw, loc)
	if !ok {
		return raw
	}
	return t.In(loc).Format("02/01/2006 15:04")
}
