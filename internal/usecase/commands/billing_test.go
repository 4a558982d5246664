//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	"hotel-front-desk/internal/infra"
	"hotel-front-desk/internal/infra/hotelapi"
	"hotel-front-desk/internal/pkg/clock"
	"hotel-front-desk/internal/usecase/commands"
	sharedmock "hotel-front-desk/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Two nights at 14,720/night; totals mirror the front desk's worked example.
func billableReservation() *hotelapi.Reservation {
	return &hotelapi.Reservation{
		ReservationID: 77,
		Guest:         hotelapi.Guest{GuestID: 42},
		ArrivalDate:   "2025-07-01T14:00:00.000Z",
		DepartureDate: "2025-07-03T12:00:00.000Z",
		NumGuests:     2,
		Status:        "checked-in",
		ReservationRooms: []hotelapi.ReservationRoom{
			{Room: hotelapi.RoomRef{RoomID: 1}, RoomType: hotelapi.RoomTypeRef{RoomTypeID: 3}, PricePerNight: 14720},
		},
	}
}

func laundryLine() reqdto.ServiceLine {
	return reqdto.ServiceLine{ServiceID: 5, Name: "Laundry", Price: 2500}
}

func newBillingFixture(t *testing.T) (*sharedmock.MockHotelGateway, commands.BillingCommands) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := sharedmock.NewMockHotelGateway(ctrl)
	gateway.EXPECT().Location().Return(time.UTC).AnyTimes()
	return gateway, commands.NewBillingUseCase(gateway, clock.NewMockClock(fixedNow))
}

func TestPreviewInvoice(t *testing.T) {
	t.Run("prices room nights plus services", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil)

		view, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{
			ReservationID: 77,
			Services:      []reqdto.ServiceLine{laundryLine()},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, view.Nights)
		assert.InDelta(t, 29440.0, view.RoomTotal, 1e-9)
		assert.InDelta(t, 2500.0, view.ServicesTotal, 1e-9)
		assert.InDelta(t, 31940.0, view.GrandTotal, 1e-9)
		assert.False(t, view.Paid)
	})

	t.Run("duplicate service lines charge once", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil)

		view, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{
			ReservationID: 77,
			Services:      []reqdto.ServiceLine{laundryLine(), laundryLine(), laundryLine()},
		})
		require.NoError(t, err)

		require.Len(t, view.Services, 1)
		assert.InDelta(t, 2500.0, view.ServicesTotal, 1e-9)
	})

	t.Run("missing reservation maps to the desync sentinel", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).
			Return(nil, remoteErr(infra.KindNotFound, http.StatusNotFound, "reservation not found"))

		_, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{ReservationID: 77})
		require.ErrorIs(t, err, commands.ErrReservationDesynced)
	})

	t.Run("unreachable upstream maps to the unavailable sentinel", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).
			Return(nil, remoteErr(infra.KindUnavailable, 0, "cannot reach hotel api"))

		_, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{ReservationID: 77})
		require.ErrorIs(t, err, commands.ErrHotelAPIUnavailable)
	})

	t.Run("malformed upstream dates map to the desync sentinel", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		broken := billableReservation()
		broken.ArrivalDate = "not-a-date"
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(broken, nil)

		_, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{ReservationID: 77})
		require.ErrorIs(t, err, commands.ErrReservationDesynced)
	})
}

func TestConfirmPayment(t *testing.T) {
	t.Run("cash settlement returns change", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil)

		receipt, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Services:      []reqdto.ServiceLine{laundryLine()},
			Method:        "cash",
			Received:      35000,
		})
		require.NoError(t, err)

		assert.Equal(t, "cash", receipt.Method)
		assert.InDelta(t, 31940.0, receipt.GrandTotal, 1e-9)
		assert.InDelta(t, 3060.0, receipt.Change, 1e-9)
		assert.Equal(t, fixedNow, receipt.PaidAt)
	})

	t.Run("transfer settles for the exact total", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil)

		receipt, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "transfer",
		})
		require.NoError(t, err)

		assert.InDelta(t, 29440.0, receipt.Received, 1e-9)
		assert.Zero(t, receipt.Change)
	})

	t.Run("insufficient cash is rejected", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil)

		_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "cash",
			Received:      20000,
		})
		require.ErrorIs(t, err, commands.ErrPaymentRejected)
	})

	t.Run("unknown method is rejected before any upstream call", func(t *testing.T) {
		_, uc := newBillingFixture(t)

		_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "credit-card",
			Received:      50000,
		})
		require.ErrorIs(t, err, commands.ErrPaymentRejected)
	})

	t.Run("settling twice is rejected and the preview shows paid", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil).Times(2)

		_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "transfer",
		})
		require.NoError(t, err)

		_, err = uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "cash",
			Received:      50000,
		})
		require.ErrorIs(t, err, commands.ErrAlreadySettled)

		view, err := uc.PreviewInvoice(context.Background(), reqdto.PreviewInvoiceRequest{ReservationID: 77})
		require.NoError(t, err)
		assert.True(t, view.Paid)
	})

	t.Run("concurrent confirms settle exactly once", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)

		entered := make(chan struct{})
		release := make(chan struct{})
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).
			DoAndReturn(func(context.Context, int64) (*hotelapi.Reservation, error) {
				close(entered)
				<-release
				return billableReservation(), nil
			})

		firstDone := make(chan error, 1)
		go func() {
			_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
				ReservationID: 77,
				Method:        "transfer",
			})
			firstDone <- err
		}()

		<-entered
		_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "cash",
			Received:      50000,
		})
		require.ErrorIs(t, err, commands.ErrAlreadySettled)

		close(release)
		require.NoError(t, <-firstDone)
	})

	t.Run("a rejected confirm releases the settlement slot", func(t *testing.T) {
		gateway, uc := newBillingFixture(t)
		gateway.EXPECT().GetReservation(gomock.Any(), int64(77)).Return(billableReservation(), nil).Times(2)

		_, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "cash",
			Received:      20000,
		})
		require.ErrorIs(t, err, commands.ErrPaymentRejected)

		receipt, err := uc.ConfirmPayment(context.Background(), reqdto.ConfirmPaymentRequest{
			ReservationID: 77,
			Method:        "cash",
			Received:      30000,
		})
		require.NoError(t, err)
		assert.InDelta(t, 560.0, receipt.Change, 1e-9)
	})
}
