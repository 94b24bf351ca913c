package models

import "testing"

func TestReservationBeforeCreateDerivesBalance(t *testing.T) {
	cases := []struct {
		name        string
		reservation Reservation
		wantBalance float64
	}{
		{
			name:        "balance derived from total and deposit",
			reservation: Reservation{Total: 20, Deposit: 10},
			wantBalance: 10,
		},
		{
			name:        "explicit balance kept",
			reservation: Reservation{Total: 20, Deposit: 10, Balance: 5},
			wantBalance: 5,
		},
		{
			name:        "fully paid stays zero",
			reservation: Reservation{Total: 20, Deposit: 20},
			wantBalance: 0,
		},
		{
			name:        "no deposit owes the total",
			reservation: Reservation{Total: 20},
			wantBalance: 20,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.reservation.BeforeCreate(nil); err != nil {
				t.Fatalf("BeforeCreate returned error: %v", err)
			}
			if tc.reservation.Balance != tc.wantBalance {
				t.Errorf("Balance = %v, want %v", tc.reservation.Balance, tc.wantBalance)
			}
		})
	}
}
