package model_test

import (
	"testing"
	"time"

	"ecoparking/internal/domains/citation/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	rate := decimal.RequireFromString("1.50")

	tests := []struct {
		name      string
		reserved  int
		paid      int
		triggered bool
		excess    int
		penalty   string
	}{
		{name: "paid in full", reserved: 180, paid: 180, penalty: "0"},
		{name: "paid more than reserved", reserved: 60, paid: 120, penalty: "0"},
		{name: "one hour short of three", reserved: 180, paid: 120, triggered: true, excess: 60, penalty: "1.8"},
		{name: "nothing paid", reserved: 60, paid: 0, triggered: true, excess: 60, penalty: "0.6"},
		{name: "odd minutes", reserved: 100, paid: 30, triggered: true, excess: 70, penalty: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Evaluate(tt.reserved, tt.paid, rate)

			assert.Equal(t, tt.triggered, got.Triggered)
			assert.Equal(t, tt.excess, got.ExcessMinutes)
			assert.True(t, decimal.RequireFromString(tt.penalty).Equal(got.Penalty), "penalty %s", got.Penalty)
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, "Parking time exceeded: 45 minutes", model.Reason(45))
	assert.Equal(t, "MULTA-0007", model.InvoiceNumber(7))
	assert.Equal(t, "MULTA-12345", model.InvoiceNumber(12345))
	assert.Equal(t, "TRANS-20250314093005", model.TransactionID(time.Date(2025, time.March, 14, 9, 30, 5, 0, time.UTC)))
}
