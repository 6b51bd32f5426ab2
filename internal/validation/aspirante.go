package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/api/request"
	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// ValidateCreateAspirante validates an aspirante creation request.
//
// Required fields:
//   - nombre, identificacion: non-blank
//   - tipo_cafe: one of the enumerated coffee types
//   - peso: non-negative decimal (grams)
//   - precio: must contain digits; separators are stripped on save
//   - estado: compra or venta
//   - estado_monetario: pagado or pendiente
//
// Optional fields:
//   - precio_total: non-negative decimal if provided
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAspirante(req request.CreateAspiranteRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["nombre"] = "nombre is required"
	}
	if strings.TrimSpace(req.Identification.String()) == "" {
		errors["identificacion"] = "identificacion is required"
	}
	validateCoffeeType(errors, req.CoffeeType)
	validateWeight(errors, req.Weight.String())
	validatePrice(errors, req.Price.String())
	validateTotalPrice(errors, req.TotalPrice.String())
	validateKind(errors, req.Kind)
	validatePaymentStatus(errors, req.PaymentStatus)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateAspirante validates an aspirante update request.
// All fields are optional, but if provided, they must meet the same constraints as create.
func ValidateUpdateAspirante(req request.UpdateAspiranteRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["nombre"] = "nombre cannot be empty"
	}
	if req.Identification != nil && strings.TrimSpace(req.Identification.String()) == "" {
		errors["identificacion"] = "identificacion cannot be empty"
	}
	if req.CoffeeType != nil {
		validateCoffeeType(errors, *req.CoffeeType)
	}
	if req.Weight != nil {
		validateWeight(errors, req.Weight.String())
	}
	if req.Price != nil {
		validatePrice(errors, req.Price.String())
	}
	if req.TotalPrice != nil {
		validateTotalPrice(errors, req.TotalPrice.String())
	}
	if req.Kind != nil {
		validateKind(errors, *req.Kind)
	}
	if req.PaymentStatus != nil {
		validatePaymentStatus(errors, *req.PaymentStatus)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

func validateCoffeeType(errors map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		errors["tipo_cafe"] = "tipo_cafe is required"
	} else if !model.ValidCoffeeTypes[model.CoffeeType(v)] {
		errors["tipo_cafe"] = fmt.Sprintf("invalid tipo_cafe: %s", v)
	}
}

func validateWeight(errors map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		errors["peso"] = "peso is required"
		return
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		errors["peso"] = "peso must be a number"
	} else if d.IsNegative() {
		errors["peso"] = "peso must not be negative"
	}
}

func validatePrice(errors map[string]string, v string) {
	if !strings.ContainsAny(v, "0123456789") {
		errors["precio"] = "precio must contain digits"
	}
}

func validateTotalPrice(errors map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		return
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		errors["precio_total"] = "precio_total must be a number"
	} else if d.IsNegative() {
		errors["precio_total"] = "precio_total must not be negative"
	}
}

func validateKind(errors map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		errors["estado"] = "estado is required"
	} else if !model.ValidKinds[model.Kind(v)] {
		errors["estado"] = fmt.Sprintf("invalid estado: %s", v)
	}
}

func validatePaymentStatus(errors map[string]string, v string) {
	if strings.TrimSpace(v) == "" {
		errors["estado_monetario"] = "estado_monetario is required"
	} else if !model.ValidPaymentStatuses[model.PaymentStatus(v)] {
		errors["estado_monetario"] = fmt.Sprintf("invalid estado_monetario: %s", v)
	}
}
