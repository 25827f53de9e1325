package simulation

import (
	"fmt"
	"strconv"
	"strings"

	"ia-service/internal/domain/entity"
)

const tagDemand = "predicao_demanda"

// MaxForecastMonths caps the length of a period range.
const MaxForecastMonths = 1200

// ForecastDemand parses period ("YYYY-MM" or "YYYY-MM:YYYY-MM") and returns
// one estimate per month. Malformed or inverted periods wrap ErrInvalidPeriod.
func ForecastDemand(productID, period string) (entity.DemandForecast, error) {
	start, end, err := splitPeriod(period)
	if err != nil {
		return entity.DemandForecast{}, err
	}
	months, err := monthsBetween(start, end)
	if err != nil {
		return entity.DemandForecast{}, err
	}

	seed := DeriveSeed(tagDemand, productID, start, end)
	baseUnit := float64(50 + seed%200)

	out := entity.DemandForecast{
		Model:           entity.ModelDemand,
		ProductID:       productID,
		Period:          period,
		Months:          months,
		MonthlyEstimate: make([]int64, months),
		Confidence:      Confidence(seed),
	}
	for i := 0; i < months; i++ {
		// reduce before adding so seed + i*97 cannot wrap
		s := (seed%1000 + uint64(i)*97%1000) % 1000
		qty := int64(baseUnit * (0.8 + float64(s%41)/100.0))
		out.MonthlyEstimate[i] = qty
		out.TotalEstimate += qty
	}
	return out, nil
}

func splitPeriod(period string) (start, end string, err error) {
	parts := strings.Split(period, ":")
	switch len(parts) {
	case 1:
		return period, period, nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: got %q", entity.ErrInvalidPeriod, period)
	}
}

func monthsBetween(start, end string) (int, error) {
	y1, m1, err := parseYearMonth(start)
	if err != nil {
		return 0, err
	}
	y2, m2, err := parseYearMonth(end)
	if err != nil {
		return 0, err
	}
	months := (y2-y1)*12 + (m2 - m1) + 1
	if months < 1 {
		return 0, fmt.Errorf("%w: end must be after or equal to start", entity.ErrInvalidPeriod)
	}
	if months > MaxForecastMonths {
		return 0, fmt.Errorf("%w: range exceeds %d months", entity.ErrInvalidPeriod, MaxForecastMonths)
	}
	return months, nil
}

// parseYearMonth accepts a four digit year and a one or two digit month,
// ASCII digits only: no sign, no surrounding whitespace.
func parseYearMonth(tok string) (year, month int, err error) {
	ys, ms, ok := strings.Cut(tok, "-")
	if !ok || len(ys) != 4 || len(ms) < 1 || len(ms) > 2 || !allDigits(ys) || !allDigits(ms) {
		return 0, 0, fmt.Errorf("%w: got %q", entity.ErrInvalidPeriod, tok)
	}
	year, _ = strconv.Atoi(ys)
	month, _ = strconv.Atoi(ms)
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: got %q", entity.ErrInvalidPeriod, tok)
	}
	return year, month, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
