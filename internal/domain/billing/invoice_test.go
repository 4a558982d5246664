//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hotel-front-desk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paidAt = time.Date(2025, 7, 3, 11, 30, 0, 0, time.UTC)

func TestServiceSelection(t *testing.T) {
	sel := billing.NewServiceSelection()
	laundry := billing.ServiceItem{ServiceID: 5, Name: "Laundry", Price: 2500}

	assert.True(t, sel.Toggle(laundry))
	assert.True(t, sel.Contains(5))

	// Toggling twice removes the item; duplicates can never accumulate.
	assert.False(t, sel.Toggle(laundry))
	assert.False(t, sel.Contains(5))
	assert.Zero(t, sel.Total())

	sel.Toggle(billing.ServiceItem{ServiceID: 9, Name: "Breakfast", Price: 1200})
	sel.Toggle(laundry)
	assert.Equal(t, 2, sel.Len())
	assert.InDelta(t, 3700.0, sel.Total(), 1e-9)

	items := sel.Items()
	assert.Equal(t, int64(5), items[0].ServiceID)
	assert.Equal(t, int64(9), items[1].ServiceID)
}

func TestInvoiceTotals(t *testing.T) {
	services := billing.NewServiceSelection()
	services.Toggle(billing.ServiceItem{ServiceID: 5, Name: "Laundry", Price: 2500})

	// Two nights at 14,720 plus one 2,500 extra.
	inv := billing.NewInvoice(77, 14720, 2, services)

	assert.InDelta(t, 29440.0, inv.RoomTotal(), 1e-9)
	assert.InDelta(t, 2500.0, inv.ServicesTotal(), 1e-9)
	assert.InDelta(t, 31940.0, inv.GrandTotal(), 1e-9)
}

func TestInvoiceChangeFor(t *testing.T) {
	inv := billing.NewInvoice(77, 14720, 2, billing.NewServiceSelection())

	assert.InDelta(t, 560.0, inv.ChangeFor(billing.PaymentCash, 30000), 1e-9)
	assert.Zero(t, inv.ChangeFor(billing.PaymentCash, 29440))
	assert.Zero(t, inv.ChangeFor(billing.PaymentCash, 20000))
	// Transfer overpayment never produces change.
	assert.Zero(t, inv.ChangeFor(billing.PaymentTransfer, 50000))
}

func TestInvoiceSettleCash(t *testing.T) {
	services := billing.NewServiceSelection()
	services.Toggle(billing.ServiceItem{ServiceID: 5, Name: "Laundry", Price: 2500})
	inv := billing.NewInvoice(77, 14720, 2, services)

	receipt, err := inv.Settle(billing.PaymentCash, 35000, paidAt)
	require.NoError(t, err)

	assert.Equal(t, int64(77), receipt.ReservationID)
	assert.Equal(t, billing.PaymentCash, receipt.Method)
	assert.InDelta(t, 29440.0, receipt.RoomTotal, 1e-9)
	assert.InDelta(t, 2500.0, receipt.ServicesTotal, 1e-9)
	assert.InDelta(t, 31940.0, receipt.GrandTotal, 1e-9)
	assert.InDelta(t, 35000.0, receipt.Received, 1e-9)
	assert.InDelta(t, 3060.0, receipt.Change, 1e-9)
	assert.Equal(t, paidAt, receipt.PaidAt)
	assert.True(t, inv.IsPaid())
}

func TestInvoiceSettleTransfer(t *testing.T) {
	inv := billing.NewInvoice(77, 14720, 2, billing.NewServiceSelection())

	// Transfers settle for the exact total regardless of the entered amount.
	receipt, err := inv.Settle(billing.PaymentTransfer, 0, paidAt)
	require.NoError(t, err)

	assert.InDelta(t, 29440.0, receipt.Received, 1e-9)
	assert.Zero(t, receipt.Change)
}

func TestInvoiceSettleRejections(t *testing.T) {
	t.Run("insufficient cash", func(t *testing.T) {
		inv := billing.NewInvoice(77, 14720, 2, billing.NewServiceSelection())
		_, err := inv.Settle(billing.PaymentCash, 29439.99, paidAt)
		require.ErrorIs(t, err, billing.ErrInsufficientCash)
		assert.False(t, inv.IsPaid())
	})

	t.Run("unknown method", func(t *testing.T) {
		inv := billing.NewInvoice(77, 14720, 2, billing.NewServiceSelection())
		_, err := inv.Settle(billing.PaymentMethod("card"), 50000, paidAt)
		require.ErrorIs(t, err, billing.ErrInvalidPaymentMethod)
	})

	t.Run("already settled", func(t *testing.T) {
		inv := billing.NewInvoice(77, 14720, 2, billing.NewServiceSelection())
		_, err := inv.Settle(billing.PaymentTransfer, 0, paidAt)
		require.NoError(t, err)

		_, err = inv.Settle(billing.PaymentCash, 50000, paidAt)
		require.ErrorIs(t, err, billing.ErrAlreadyPaid)
	})
}

func TestNewPaymentMethod(t *testing.T) {
	for _, s := range []string{"cash", "transfer"} {
		m, err := billing.NewPaymentMethod(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	_, err := billing.NewPaymentMethod("credit-card")
	require.ErrorIs(t, err, billing.ErrInvalidPaymentMethod)
}
