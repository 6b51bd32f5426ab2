package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// AspiranteBuilder provides a fluent interface for creating test aspirantes.
// Rows are inserted directly, bypassing the field cipher, so builders always
// store plaintext personal data.
//
// Example usage:
//
//	// Simple creation with defaults
//	a := testutil.NewAspirante().Build(t, db)
//
//	// Customized aspirante
//	a := testutil.NewAspirante().
//	    Sale().
//	    WithCoffeeType(model.CoffeeTabi).
//	    WithWeight("250").
//	    CreatedOn(time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)).
//	    Build(t, db)
type AspiranteBuilder struct {
	ID             string
	LegacyID       string
	Name           string
	Identification string
	Phone          string
	CoffeeType     model.CoffeeType
	Weight         string
	Price          string
	TotalPrice     string
	Kind           model.Kind
	PaymentStatus  model.PaymentStatus
	CreatedAt      string
}

// NewAspirante creates an AspiranteBuilder with sensible defaults: a paid
// purchase of 1000 g of Caturra created now.
func NewAspirante() *AspiranteBuilder {
	return &AspiranteBuilder{
		ID:             MakeID(),
		Name:           MakeName("Caficultor"),
		Identification: MakeIdentification(),
		Phone:          "3001234567",
		CoffeeType:     model.CoffeeCaturra,
		Weight:         "1000",
		Price:          "50000",
		TotalPrice:     "",
		Kind:           model.KindPurchase,
		PaymentStatus:  model.PaymentPaid,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// WithID sets a custom ID.
func (b *AspiranteBuilder) WithID(id string) *AspiranteBuilder {
	b.ID = id
	return b
}

// WithLegacyID marks the aspirante as imported from the legacy API.
func (b *AspiranteBuilder) WithLegacyID(id string) *AspiranteBuilder {
	b.LegacyID = id
	return b
}

// WithName sets a custom name.
func (b *AspiranteBuilder) WithName(name string) *AspiranteBuilder {
	b.Name = name
	return b
}

// WithIdentification sets a custom identification.
func (b *AspiranteBuilder) WithIdentification(id string) *AspiranteBuilder {
	b.Identification = id
	return b
}

// WithCoffeeType sets the coffee type.
func (b *AspiranteBuilder) WithCoffeeType(ct model.CoffeeType) *AspiranteBuilder {
	b.CoffeeType = ct
	return b
}

// WithWeight sets the raw weight.
func (b *AspiranteBuilder) WithWeight(w string) *AspiranteBuilder {
	b.Weight = w
	return b
}

// WithPrice sets the raw price.
func (b *AspiranteBuilder) WithPrice(p string) *AspiranteBuilder {
	b.Price = p
	return b
}

// WithKind sets the transaction kind.
func (b *AspiranteBuilder) WithKind(k model.Kind) *AspiranteBuilder {
	b.Kind = k
	return b
}

// Sale marks the aspirante as a sale.
func (b *AspiranteBuilder) Sale() *AspiranteBuilder {
	b.Kind = model.KindSale
	return b
}

// Pending marks the aspirante as unpaid.
func (b *AspiranteBuilder) Pending() *AspiranteBuilder {
	b.PaymentStatus = model.PaymentPending
	return b
}

// CreatedOn sets the creation timestamp, stored as RFC3339 UTC.
func (b *AspiranteBuilder) CreatedOn(t time.Time) *AspiranteBuilder {
	b.CreatedAt = t.UTC().Format(time.RFC3339)
	return b
}

// WithRawCreatedAt stores the creation timestamp verbatim.
func (b *AspiranteBuilder) WithRawCreatedAt(raw string) *AspiranteBuilder {
	b.CreatedAt = raw
	return b
}

// Build creates the aspirante in the database and returns it.
func (b *AspiranteBuilder) Build(t *testing.T, db *sql.DB) model.Aspirante {
	t.Helper()

	query := `
		INSERT INTO aspirante (
			id, legacy_id, nombre, identificacion, telefono, tipo_cafe,
			peso, precio, precio_total, estado, estado_monetario, date_create
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var legacyID any
	if b.LegacyID != "" {
		legacyID = b.LegacyID
	}

	_, err := db.Exec(query,
		b.ID, legacyID, b.Name, b.Identification, b.Phone, string(b.CoffeeType),
		b.Weight, b.Price, b.TotalPrice, string(b.Kind), string(b.PaymentStatus), b.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test aspirante: %v", err)
	}

	return model.Aspirante{
		ID:             b.ID,
		LegacyID:       b.LegacyID,
		Name:           b.Name,
		Identification: b.Identification,
		Phone:          b.Phone,
		CoffeeType:     b.CoffeeType,
		Weight:         b.Weight,
		Price:          b.Price,
		TotalPrice:     b.TotalPrice,
		Kind:           b.Kind,
		PaymentStatus:  b.PaymentStatus,
		CreatedAt:      b.CreatedAt,
	}
}

// Convenience functions

// CreatePurchase creates a paid purchase with the given coffee type, weight
// and price on the given day.
func CreatePurchase(t *testing.T, db *sql.DB, ct model.CoffeeType, weight, price string, at time.Time) model.Aspirante {
	t.Helper()
	return NewAspirante().WithCoffeeType(ct).WithWeight(weight).WithPrice(price).CreatedOn(at).Build(t, db)
}

// CreateSale creates a paid sale with the given coffee type, weight and
// price on the given day.
func CreateSale(t *testing.T, db *sql.DB, ct model.CoffeeType, weight, price string, at time.Time) model.Aspirante {
	t.Helper()
	return NewAspirante().Sale().WithCoffeeType(ct).WithWeight(weight).WithPrice(price).CreatedOn(at).Build(t, db)
}

// CreateAspirantes creates count default aspirantes.
func CreateAspirantes(t *testing.T, db *sql.DB, count int) []model.Aspirante {
	t.Helper()

	aspirantes := make([]model.Aspirante, count)
	for i := 0; i < count; i++ {
		aspirantes[i] = NewAspirante().Build(t, db)
	}
	return aspirantes
}
