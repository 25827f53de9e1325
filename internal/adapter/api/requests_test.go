package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ia-service/internal/domain/entity"
)

func TestFlexString(t *testing.T) {
	var v struct {
		ID *flexString `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":"SKU-1"}`), &v))
	assert.Equal(t, flexString("SKU-1"), *v.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":123}`), &v))
	assert.Equal(t, flexString("123"), *v.ID)

	v.ID = nil
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &v))
	assert.Nil(t, v.ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id":[1]}`), &v))
}

func TestSalesRequestValues(t *testing.T) {
	one, twelve, year := 1, 12, 2025

	m, y, err := salesRequest{Month: &twelve, Year: &year, Mes: &one}.values()
	require.NoError(t, err)
	assert.Equal(t, 12, m)
	assert.Equal(t, 2025, y)

	_, _, err = salesRequest{Mes: &one}.values()
	assert.ErrorIs(t, err, entity.ErrInvalidRequest)
}
