package period

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/model"
)

// Summarize aggregates records into a model.Summary.
//
// Purchases add their price to TotalPurchased and their weight to NetWeight
// and to their coffee type's bucket. Sales add their price to TotalSold and
// subtract their weight from NetWeight. Records of an unknown kind are
// skipped. Records of an unknown coffee type still count towards the totals
// and the net weight; they only miss a per-type bucket.
func Summarize(records []model.Aspirante) model.Summary {
	summary := model.Summary{
		TotalPurchased: decimal.Zero,
		TotalSold:      decimal.Zero,
		NetWeight:      decimal.Zero,
		ByCoffeeType:   make(map[model.CoffeeType]decimal.Decimal, len(model.CoffeeTypes)),
	}
	for _, t := range model.CoffeeTypes {
		summary.ByCoffeeType[t] = decimal.Zero
	}

	for _, a := range records {
		weight := ParseDecimal(a.Weight)
		amount := ParseDecimal(a.Price)

		switch a.Kind {
		case model.KindPurchase:
			summary.TotalPurchased = summary.TotalPurchased.Add(amount)
			summary.NetWeight = summary.NetWeight.Add(weight)
			if model.ValidCoffeeTypes[a.CoffeeType] {
				summary.ByCoffeeType[a.CoffeeType] = summary.ByCoffeeType[a.CoffeeType].Add(weight)
			}
		case model.KindSale:
			summary.TotalSold = summary.TotalSold.Add(amount)
			summary.NetWeight = summary.NetWeight.Sub(weight)
		}
	}

	return summary
}
