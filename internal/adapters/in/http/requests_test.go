package http

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToBoxProposals_Valid(t *testing.T) {
	// Arrange
	itemID := kernel.NewUUID()
	boxes := []BoxRequest{
		{Items: []BoxItemRequest{
			{InvoiceItemID: itemID.String(), Quantity: decimal.NewFromInt(6)},
		}},
		{Items: []BoxItemRequest{
			{InvoiceItemID: itemID.String(), Quantity: decimal.NewFromInt(4)},
		}},
	}

	// Act
	proposals, err := toBoxProposals(boxes)

	// Assert
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	require.Len(t, proposals[0].Items, 1)
	assert.True(t, proposals[0].Items[0].InvoiceItemID.IsEqual(itemID))
	assert.True(t, proposals[0].Items[0].Quantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, proposals[1].Items[0].Quantity.Equal(decimal.NewFromInt(4)))
}

func Test_ToBoxProposals_InvalidItemID(t *testing.T) {
	// Arrange
	boxes := []BoxRequest{
		{Items: []BoxItemRequest{
			{InvoiceItemID: "not-a-uuid", Quantity: decimal.NewFromInt(1)},
		}},
	}

	// Act
	proposals, err := toBoxProposals(boxes)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, proposals)
}

func Test_CorrectionsRequest_ToCommandCorrections(t *testing.T) {
	t.Run("nil request maps to nil", func(t *testing.T) {
		var request *CorrectionsRequest
		assert.Nil(t, request.toCommandCorrections())
	})

	t.Run("fields carry over", func(t *testing.T) {
		customerName := "Lanka Traders"
		priority := "High"
		total := decimal.NewFromFloat(1250.50)

		request := &CorrectionsRequest{
			CustomerName: &customerName,
			Priority:     &priority,
			TotalAmount:  &total,
			Items: []InvoiceItemRequest{
				{Name: "Paracetamol 500mg", ItemCode: "ITM-1", Quantity: 10, UnitPrice: decimal.NewFromInt(125)},
			},
			ReplaceItems: true,
		}

		corrections := request.toCommandCorrections()

		require.NotNil(t, corrections)
		assert.Equal(t, "Lanka Traders", *corrections.CustomerName)
		assert.Equal(t, "High", *corrections.Priority)
		assert.True(t, corrections.TotalAmount.Equal(total))
		assert.True(t, corrections.ReplaceItems)
		require.Len(t, corrections.Items, 1)
		assert.Equal(t, "ITM-1", corrections.Items[0].ItemCode)
	})
}
