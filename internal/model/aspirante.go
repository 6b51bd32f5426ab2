package model

// CoffeeType is the variety or process of a traded coffee lot.
type CoffeeType string

// Enumerated coffee types, in the order the records form offers them.
const (
	CoffeeSeco             CoffeeType = "seco"
	CoffeeCaturra          CoffeeType = "Caturra"
	CoffeeVariedadColombia CoffeeType = "Variedad Colombia"
	CoffeeF6               CoffeeType = "F6"
	CoffeeBorbounRosado    CoffeeType = "Borboun Rosado"
	CoffeeGeishar          CoffeeType = "Geishar"
	CoffeeTabi             CoffeeType = "Tabi"
	CoffeeVariedadCastillo CoffeeType = "Variedad Castillo"
)

// CoffeeTypes lists every enumerated coffee type.
var CoffeeTypes = []CoffeeType{
	CoffeeSeco,
	CoffeeCaturra,
	CoffeeVariedadColombia,
	CoffeeF6,
	CoffeeBorbounRosado,
	CoffeeGeishar,
	CoffeeTabi,
	CoffeeVariedadCastillo,
}

// ValidCoffeeTypes contains the allowed coffee type values.
var ValidCoffeeTypes = map[CoffeeType]bool{
	CoffeeSeco:             true,
	CoffeeCaturra:          true,
	CoffeeVariedadColombia: true,
	CoffeeF6:               true,
	CoffeeBorbounRosado:    true,
	CoffeeGeishar:          true,
	CoffeeTabi:             true,
	CoffeeVariedadCastillo: true,
}

// Kind is the direction of a transaction.
type Kind string

const (
	KindPurchase Kind = "compra"
	KindSale     Kind = "venta"
)

// ValidKinds contains the allowed transaction kind values.
var ValidKinds = map[Kind]bool{
	KindPurchase: true,
	KindSale:     true,
}

// PaymentStatus tells whether a transaction has been settled. Display-only.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "pagado"
	PaymentPending PaymentStatus = "pendiente"
)

// ValidPaymentStatuses contains the allowed payment status values.
var ValidPaymentStatuses = map[PaymentStatus]bool{
	PaymentPaid:    true,
	PaymentPending: true,
}

// Aspirante is a single purchase or sale of a coffee lot.
//
// Weight, Price, TotalPrice and CreatedAt hold the raw values as stored.
// Records imported from the legacy API may carry malformed values, so
// numeric and timestamp interpretation happens in the period package.
type Aspirante struct {
	ID             string        `json:"id"`
	LegacyID       string        `json:"legacyId,omitempty"`
	Name           string        `json:"nombre"`
	Identification string        `json:"identificacion"`
	Phone          string        `json:"telefono"`
	CoffeeType     CoffeeType    `json:"tipo_cafe"`
	Weight         string        `json:"peso"`
	Price          string        `json:"precio"`
	TotalPrice     string        `json:"precio_total"`
	Kind           Kind          `json:"estado"`
	PaymentStatus  PaymentStatus `json:"estado_monetario"`
	CreatedAt      string        `json:"date_create"`
}
