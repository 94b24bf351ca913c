package controllers

import (
	"reflect"
	"testing"
	"time"

	"github.com/jcastellanos/salon-reservas/models"
)

func uintPtr(v uint) *uint        { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestApplyReservationPatchLeavesAbsentFieldsAlone(t *testing.T) {
	original := models.Reservation{
		ClientID:   1,
		CreatorID:  2,
		EmployeeID: 3,
		ServiceID:  4,
		LocationID: 5,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		Total:      20,
		Deposit:    10,
		Balance:    10,
	}

	res := original
	field, err := applyReservationPatch(&res, &reservationPatch{})
	if err != nil {
		t.Fatalf("applyReservationPatch returned error on empty patch: %v (%s)", err, field)
	}
	if !reflect.DeepEqual(res, original) {
		t.Errorf("empty patch mutated the reservation: %+v != %+v", res, original)
	}
}

func TestApplyReservationPatchAppliesSuppliedFields(t *testing.T) {
	res := models.Reservation{
		ClientID:  1,
		ServiceID: 4,
		Total:     20,
		Balance:   10,
	}

	patch := &reservationPatch{
		EmployeeID: uintPtr(9),
		Date:       strPtr("2024-07-15"),
		StartTime:  strPtr("2024-07-15T10:00"),
		Total:      floatPtr(35),
		Balance:    floatPtr(0),
	}

	field, err := applyReservationPatch(&res, patch)
	if err != nil {
		t.Fatalf("applyReservationPatch returned error: %v (%s)", err, field)
	}

	if res.EmployeeID != 9 {
		t.Errorf("EmployeeID = %d, want 9", res.EmployeeID)
	}
	if res.ClientID != 1 || res.ServiceID != 4 {
		t.Errorf("untouched references changed: client=%d service=%d", res.ClientID, res.ServiceID)
	}
	if want := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC); !res.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", res.Date, want)
	}
	if want := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC); !res.StartTime.Equal(want) {
		t.Errorf("StartTime = %v, want %v", res.StartTime, want)
	}
	if res.Total != 35 {
		t.Errorf("Total = %v, want 35", res.Total)
	}
	if res.Balance != 0 {
		t.Errorf("Balance = %v, want 0", res.Balance)
	}
}

func TestDepositPayment(t *testing.T) {
	cases := []struct {
		name        string
		reservation models.Reservation
		want        *models.Payment
	}{
		{
			name:        "no deposit means no payment",
			reservation: models.Reservation{CreatorID: 2, Total: 20},
			want:        nil,
		},
		{
			name:        "negative deposit means no payment",
			reservation: models.Reservation{CreatorID: 2, Total: 20, Deposit: -5},
			want:        nil,
		},
		{
			name: "deposit recorded by creator against the reservation",
			reservation: func() models.Reservation {
				r := models.Reservation{CreatorID: 2, Total: 20, Deposit: 10}
				r.ID = 8
				return r
			}(),
			want: &models.Payment{
				UserID:        2,
				ReservationID: 8,
				Amount:        10,
				Status:        models.PaymentRecorded,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := depositPayment(&tc.reservation)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("depositPayment = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("depositPayment = nil, want a payment")
			}
			if got.UserID != tc.want.UserID {
				t.Errorf("UserID = %d, want %d", got.UserID, tc.want.UserID)
			}
			if got.ReservationID != tc.want.ReservationID {
				t.Errorf("ReservationID = %d, want %d", got.ReservationID, tc.want.ReservationID)
			}
			if got.Amount != tc.want.Amount {
				t.Errorf("Amount = %v, want %v", got.Amount, tc.want.Amount)
			}
			if got.Status != tc.want.Status {
				t.Errorf("Status = %q, want %q", got.Status, tc.want.Status)
			}
		})
	}
}

func TestApplyReservationPatchNamesBadDateField(t *testing.T) {
	cases := []struct {
		name  string
		patch reservationPatch
		field string
	}{
		{"bad date", reservationPatch{Date: strPtr("June 1st")}, "date"},
		{"bad start", reservationPatch{StartTime: strPtr("9am")}, "start_time"},
		{"bad end", reservationPatch{EndTime: strPtr("")}, "end_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var res models.Reservation
			field, err := applyReservationPatch(&res, &tc.patch)
			if err == nil {
				t.Fatal("expected a parse error")
			}
			if field != tc.field {
				t.Errorf("field = %q, want %q", field, tc.field)
			}
		})
	}
}
