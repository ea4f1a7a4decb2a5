package entity_test

import (
	"testing"

	"github.com/highlandco/docgen/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInvoice_Total(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		Items: []entity.LineItem{
			{Quantity: decimal.RequireFromString("100"), UnitPrice: decimal.RequireFromString("2.50")},
			{Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("50")},
		},
	}

	require.True(t, inv.Total().Equal(decimal.RequireFromString("300")))
	require.True(t, inv.TotalQuantity().Equal(decimal.RequireFromString("101")))
}

func TestInvoice_TotalExactDecimals(t *testing.T) {
	t.Parallel()

	// 0.1 + 0.2 style values stay exact in decimal arithmetic.
	inv := entity.Invoice{
		Items: []entity.LineItem{
			{Quantity: decimal.RequireFromString("3"), UnitPrice: decimal.RequireFromString("0.10")},
			{Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("0.20")},
		},
	}

	require.True(t, inv.Total().Equal(decimal.RequireFromString("0.50")))
}

func TestInvoice_TotalEmpty(t *testing.T) {
	t.Parallel()

	require.True(t, entity.Invoice{}.Total().Equal(decimal.Zero))
}

func TestLineItem_Total(t *testing.T) {
	t.Parallel()

	item := entity.LineItem{
		Quantity:  decimal.RequireFromString("2.5"),
		UnitPrice: decimal.RequireFromString("4"),
	}

	require.True(t, item.Total().Equal(decimal.RequireFromString("10")))
}

func TestInvoicesSortBy_IsValid(t *testing.T) {
	t.Parallel()

	require.True(t, entity.SortByIssueDate.IsValid())
	require.True(t, entity.SortByInvoiceNumber.IsValid())
	require.True(t, entity.SortByClientName.IsValid())
	require.False(t, entity.InvoicesSortBy("id").IsValid())
	require.False(t, entity.InvoicesSortBy("").IsValid())
}

func TestOrderBy_IsValid(t *testing.T) {
	t.Parallel()

	require.True(t, entity.ASC.IsValid())
	require.True(t, entity.DESC.IsValid())
	require.False(t, entity.OrderBy("ASC").IsValid())
}
