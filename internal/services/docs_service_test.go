package services

import (
	"bytes"
	"testing"
	"time"

	"shuttle/internal/domain/models"
)

func TestGenerateETicketPDF(t *testing.T) {
	svc := DocsService{
		RequestID: "test-req",
		Loader: func(id int64) (models.Booking, error) {
			return models.Booking{
				ID:             12,
				PassengerID:    4,
				PassengerName:  "Asha Rao",
				Zone:           "North",
				PickupLocation: "Gate A",
				DropLocation:   "Campus",
				Seats:          2,
				PaymentMethod:  "UPI",
				Status:         models.StatusConfirmed,
				CreatedAt:      time.Date(2026, 8, 30, 9, 15, 0, 0, time.Local),
			}, nil
		},
	}

	data, filename, err := svc.GenerateETicket(12)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:min(len(data), 8)])
	}
	if filename != "ETICKET_12_Asha_Rao.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestGenerateETicketEmptyFields(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.Booking, error) {
			return models.Booking{ID: 3, Seats: 1}, nil
		},
	}

	data, filename, err := svc.GenerateETicket(3)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected PDF bytes")
	}
	if filename != "ETICKET_3_ticket.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}
