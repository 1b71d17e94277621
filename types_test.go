package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TomaszKulowski/models"
)

func TestTransactionType_String(t *testing.T) {
	assert.Equal(t, "Buy", models.Buy.String())
	assert.Equal(t, "Sell", models.Sell.String())
	assert.Equal(t, "TransactionType(42)", models.TransactionType(42).String())
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "Add", models.Add.String())
	assert.Equal(t, "Remove", models.Remove.String())
	assert.Equal(t, "OrderType(-1)", models.OrderType(-1).String())
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, models.Buy.Valid())
	assert.True(t, models.Sell.Valid())
	assert.False(t, models.TransactionType(2).Valid())
	assert.False(t, models.TransactionType(-1).Valid())
}

func TestOrderType_Valid(t *testing.T) {
	assert.True(t, models.Add.Valid())
	assert.True(t, models.Remove.Valid())
	assert.False(t, models.OrderType(2).Valid())
	assert.False(t, models.OrderType(-1).Valid())
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		label   string
		want    models.TransactionType
		wantErr error
	}{
		{label: "Buy", want: models.Buy},
		{label: "Sell", want: models.Sell},
		{label: "buy", want: models.Buy},
		{label: "SELL", want: models.Sell},
		{label: "Hold", wantErr: models.ErrInvalidTransactionType},
		{label: "", wantErr: models.ErrInvalidTransactionType},
	}

	for _, tt := range tests {
		got, err := models.ParseTransactionType(tt.label)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "label %q", tt.label)
			continue
		}
		assert.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestParseOrderType(t *testing.T) {
	tests := []struct {
		label   string
		want    models.OrderType
		wantErr error
	}{
		{label: "Add", want: models.Add},
		{label: "Remove", want: models.Remove},
		{label: "add", want: models.Add},
		{label: "REMOVE", want: models.Remove},
		{label: "Cancel", wantErr: models.ErrInvalidOrderType},
		{label: "", wantErr: models.ErrInvalidOrderType},
	}

	for _, tt := range tests {
		got, err := models.ParseOrderType(tt.label)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "label %q", tt.label)
			continue
		}
		assert.NoError(t, err, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}
