package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuoteRequestValidate(t *testing.T) {
	req := &CreateQuoteRequest{
		LeadID: "lead1",
		Items: []QuoteItemInput{
			{Description: "mowing", Qty: 2, Price: 10},
			{Description: "edging", Qty: 1, Price: 5},
		},
	}

	total, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, 25.0, total)
}

func TestCreateQuoteRequestValidateRejectsNegativeQty(t *testing.T) {
	req := &CreateQuoteRequest{
		LeadID: "lead1",
		Items:  []QuoteItemInput{{Qty: -2, Price: 10}},
	}

	_, err := req.Validate()
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
}

func TestCreateQuoteRequestValidateRejectsNegativePrice(t *testing.T) {
	req := &CreateQuoteRequest{
		LeadID: "lead1",
		Items:  []QuoteItemInput{{Qty: 1, Price: -5}},
	}

	_, err := req.Validate()
	require.Error(t, err)
}

func TestCreateQuoteRequestValidateRequiresItems(t *testing.T) {
	req := &CreateQuoteRequest{LeadID: "lead1"}
	_, err := req.Validate()
	require.Error(t, err)

	req = &CreateQuoteRequest{Items: []QuoteItemInput{{Qty: 1, Price: 1}}}
	_, err = req.Validate()
	require.Error(t, err)
}

func TestQuoteStatusIsValid(t *testing.T) {
	assert.True(t, QuoteStatusDraft.IsValid())
	assert.True(t, QuoteStatusAccepted.IsValid())
	assert.False(t, QuoteStatus("OPEN").IsValid())
}
