package simulation

import (
	"fmt"

	"ia-service/internal/domain/entity"
)

const tagSales = "predicao_venda"

// Accepted input ranges for sales predictions.
const (
	MinYear = 1900
	MaxYear = 3000
)

// ValidateSalesInput checks the month and year ranges.
func ValidateSalesInput(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", entity.ErrInvalidRequest)
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d", entity.ErrInvalidRequest, MinYear, MaxYear)
	}
	return nil
}

// PredictSales expects a validated month and year.
func PredictSales(month, year int) entity.SalePrediction {
	seed := DeriveSeed(tagSales, month, year)
	base := int64(year%100)*1000 + int64(month)*200 + int64(seed%500)

	return entity.SalePrediction{
		Model:          entity.ModelSales,
		Month:          month,
		Year:           year,
		PredictedSales: int64(float64(base) * seasonality(month)),
		Confidence:     Confidence(seed),
	}
}

// December +20%, January -10%, July +10%.
func seasonality(month int) float64 {
	switch month {
	case 12:
		return 1.20
	case 1:
		return 0.90
	case 7:
		return 1.10
	default:
		return 1.0
	}
}
