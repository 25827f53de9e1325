package api

import (
	"encoding/json"
	"fmt"

	"ia-service/internal/domain/entity"
)

// salesRequest accepts month/year and the older mes/ano keys.
type salesRequest struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
	Mes   *int `json:"mes"`
	Ano   *int `json:"ano"`
}

func (r salesRequest) values() (month, year int, err error) {
	m, y := r.Month, r.Year
	if m == nil {
		m = r.Mes
	}
	if y == nil {
		y = r.Ano
	}
	if m == nil || y == nil {
		return 0, 0, fmt.Errorf("%w: month and year are required", entity.ErrInvalidRequest)
	}
	return *m, *y, nil
}

type clientRequest struct {
	CPF *string `json:"cpf"`
}

type demandRequest struct {
	ProductID  *flexString `json:"productId"`
	ProductID2 *flexString `json:"product_id"`
	Period     *string     `json:"period"`
}

func (r demandRequest) values() (productID, period string, err error) {
	id := r.ProductID
	if id == nil {
		id = r.ProductID2
	}
	if id == nil || r.Period == nil {
		return "", "", fmt.Errorf("%w: productId and period are required", entity.ErrInvalidRequest)
	}
	return string(*id), *r.Period, nil
}

type sentimentRequest struct {
	Text *string `json:"text"`
}

// flexString accepts a JSON string or number; numbers keep their literal form.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}
