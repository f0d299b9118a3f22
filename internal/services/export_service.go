package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"tobugo/internal/planner"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

type ExportServiceInterface interface {
	ExportTripPDF(ctx context.Context, userID, tripID string) ([]byte, string, error)
}

type ExportService struct {
	tripRepo        repositories.TripRepository
	transactionRepo repositories.TransactionRepository
}

func NewExportService(tripRepo repositories.TripRepository, transactionRepo repositories.TransactionRepository) ExportServiceInterface {
	return &ExportService{
		tripRepo:        tripRepo,
		transactionRepo: transactionRepo,
	}
}

// ExportTripPDF renders the trip itinerary as a PDF. Export is gated on a
// completed purchase for the trip.
func (e *ExportService) ExportTripPDF(ctx context.Context, userID, tripID string) ([]byte, string, error) {
	trip, err := e.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, "", utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, "", utils.ErrForbidden
	}
	if len(trip.Itinerary) == 0 {
		return nil, "", utils.ErrTripNotGenerated
	}

	paid, err := e.transactionRepo.HasPaidForTrip(ctx, userID, tripID)
	if err != nil {
		return nil, "", utils.ErrDatabaseError
	}
	if !paid {
		return nil, "", utils.ErrExportNotPurchased
	}

	var itinerary planner.Itinerary
	if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
		return nil, "", utils.ErrTripNotGenerated
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(trip.Title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, trip.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	subtitle := trip.Destination
	if !trip.StartDate.IsZero() && !trip.EndDate.IsZero() {
		subtitle = fmt.Sprintf("%s, %s to %s",
			trip.Destination,
			trip.StartDate.Format("Jan 2, 2006"),
			trip.EndDate.Format("Jan 2, 2006"))
	}
	pdf.CellFormat(0, 7, subtitle, "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)

	for i, day := range itinerary.Days {
		pdf.SetFont("Helvetica", "B", 13)
		label := fmt.Sprintf("Day %d", i+1)
		if day.Date != "" {
			if parsed, err := time.Parse("2006-01-02", day.Date); err == nil {
				label = fmt.Sprintf("Day %d - %s", i+1, parsed.Format("Monday, Jan 2"))
			}
		}
		pdf.CellFormat(0, 9, label, "B", 1, "L", false, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Helvetica", "", 10)
		for _, activity := range day.Activities {
			line := fmt.Sprintf("%s  %s", activity.Time, activity.Title)
			if activity.Location != "" {
				line += " @ " + activity.Location
			}
			pdf.CellFormat(150, 6, line, "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, fmt.Sprintf("$%.2f", activity.Cost), "", 1, "R", false, 0, "")
			if activity.Description != "" {
				pdf.SetTextColor(110, 110, 110)
				pdf.SetFont("Helvetica", "", 9)
				pdf.MultiCell(0, 4.5, activity.Description, "", "L", false)
				pdf.SetFont("Helvetica", "", 10)
				pdf.SetTextColor(0, 0, 0)
			}
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Day total: $%.2f", day.TotalCost), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 9, fmt.Sprintf("Trip total: $%.2f", itinerary.TotalCost), "T", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	breakdown := itinerary.CostBreakdown
	for _, row := range []struct {
		label string
		value float64
	}{
		{"Flights", breakdown.Flights},
		{"Accommodation", breakdown.Accommodation},
		{"Activities", breakdown.Activities},
		{"Meals", breakdown.Meals},
		{"Transport", breakdown.Transport},
	} {
		pdf.CellFormat(150, 5.5, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5.5, fmt.Sprintf("$%.2f", row.value), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("%s-itinerary.pdf", trip.ID)
	return buf.Bytes(), filename, nil
}
