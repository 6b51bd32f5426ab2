package request

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString accepts a JSON string, number or null and keeps its text.
// The legacy API and the original form send peso, precio and telefono as
// either.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// CreateAspiranteRequest is the body of POST /api/aspirante.
// Numeric fields arrive as strings or numbers and are checked by
// validation.ValidateCreateAspirante before anything is stored.
type CreateAspiranteRequest struct {
	Name           string     `json:"nombre"`
	Identification FlexString `json:"identificacion"`
	Phone          FlexString `json:"telefono"`
	CoffeeType     string     `json:"tipo_cafe"`
	Weight         FlexString `json:"peso"`
	Price          FlexString `json:"precio"`
	TotalPrice     FlexString `json:"precio_total"`
	Kind           string     `json:"estado"`
	PaymentStatus  string     `json:"estado_monetario"`
}

// UpdateAspiranteRequest is the body of PUT /api/aspirante/{uuid}.
// Nil fields are left unchanged; date_create cannot be updated.
type UpdateAspiranteRequest struct {
	Name           *string     `json:"nombre,omitempty"`
	Identification *FlexString `json:"identificacion,omitempty"`
	Phone          *FlexString `json:"telefono,omitempty"`
	CoffeeType     *string     `json:"tipo_cafe,omitempty"`
	Weight         *FlexString `json:"peso,omitempty"`
	Price          *FlexString `json:"precio,omitempty"`
	TotalPrice     *FlexString `json:"precio_total,omitempty"`
	Kind           *string     `json:"estado,omitempty"`
	PaymentStatus  *string     `json:"estado_monetario,omitempty"`
}

// LegacyAspirante is one record as exported by the legacy records API.
// Nothing is validated on import; malformed values are stored as received.
type LegacyAspirante struct {
	ID             string     `json:"_id"`
	Name           FlexString `json:"nombre"`
	Identification FlexString `json:"identificacion"`
	Phone          FlexString `json:"telefono"`
	CoffeeType     FlexString `json:"tipo_cafe"`
	Weight         FlexString `json:"peso"`
	Price          FlexString `json:"precio"`
	TotalPrice     FlexString `json:"precio_total"`
	Kind           FlexString `json:"estado"`
	PaymentStatus  FlexString `json:"estado_monetario"`
	CreatedAt      FlexString `json:"date_create"`
}
