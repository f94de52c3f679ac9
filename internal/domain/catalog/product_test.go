package catalog

import (
	"testing"

	"github.com/gaolamthuy/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("st25", "Gạo ST25", "kg")
	require.NoError(t, err)

	assert.Equal(t, "ST25", p.Code)
	assert.Equal(t, "Gạo ST25", p.Name)
	assert.Equal(t, "kg", p.Unit)
	assert.Equal(t, ProductStatusActive, p.Status)
	assert.True(t, p.SellingPrice.IsZero())
	assert.Nil(t, p.PreviousPrice)
}

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		code string
		pn   string
		unit string
	}{
		{"empty code", "", "Gạo ST25", "kg"},
		{"empty name", "ST25", "", "kg"},
		{"empty unit", "ST25", "Gạo ST25", " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.code, tt.pn, tt.unit)
			assert.Error(t, err)
		})
	}
}

func TestProduct_SetPrice(t *testing.T) {
	p, err := NewProduct("ST25", "Gạo ST25", "kg")
	require.NoError(t, err)

	require.NoError(t, p.SetPrice(valueobject.NewMoneyFromInt(25000)))
	assert.Equal(t, "25000", p.SellingPrice.String())
	// first price set keeps no comparison value
	assert.Nil(t, p.PreviousPrice)

	require.NoError(t, p.SetPrice(valueobject.NewMoneyFromInt(27000)))
	assert.Equal(t, "27000", p.SellingPrice.String())
	require.NotNil(t, p.PreviousPrice)
	assert.Equal(t, "25000", p.PreviousPrice.String())

	err = p.SetPrice(valueobject.NewMoneyFromInt(-1))
	assert.Error(t, err)
}

func TestProduct_StatusTransitions(t *testing.T) {
	p, err := NewProduct("ST25", "Gạo ST25", "kg")
	require.NoError(t, err)

	assert.True(t, p.IsActive())

	p.Deactivate()
	assert.False(t, p.IsActive())
	assert.Equal(t, ProductStatusInactive, p.Status)

	p.Activate()
	assert.True(t, p.IsActive())

	p.Discontinue()
	assert.Equal(t, ProductStatusDiscontinued, p.Status)
}
