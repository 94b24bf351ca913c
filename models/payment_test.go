package models

import "testing"

func TestPaymentBeforeCreateDefaultsStatus(t *testing.T) {
	p := Payment{UserID: 1, ReservationID: 1, Amount: 10}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if p.Status != PaymentPending {
		t.Errorf("Status = %q, want %q", p.Status, PaymentPending)
	}

	p = Payment{Status: PaymentRecorded}
	if err := p.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if p.Status != PaymentRecorded {
		t.Errorf("Status = %q, want %q", p.Status, PaymentRecorded)
	}
}

func TestValidPaymentStatus(t *testing.T) {
	for _, s := range []PaymentStatus{PaymentPending, PaymentRecorded, PaymentCanceled} {
		if !ValidPaymentStatus(s) {
			t.Errorf("ValidPaymentStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []PaymentStatus{"", "PAID", "CANCELADO"} {
		if ValidPaymentStatus(s) {
			t.Errorf("ValidPaymentStatus(%q) = true, want false", s)
		}
	}
}
