package period

import (
	"github.com/google/uuid"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

func aspirante(kind, coffeeType, weight, price, created string) model.Aspirante {
	return model.Aspirante{
		ID:            uuid.New().String(),
		Name:          "Productor",
		CoffeeType:    model.CoffeeType(coffeeType),
		Weight:        weight,
		Price:         price,
		Kind:          model.Kind(kind),
		PaymentStatus: model.PaymentPaid,
		CreatedAt:     created,
	}
}

func ids(records []model.Aspirante) []string {
	out := make([]string, len(records))
	for i, a := range records {
		out[i] = a.ID
	}
	return out
}
