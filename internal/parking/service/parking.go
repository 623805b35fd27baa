package service

import (
	"context"
	"errors"
	"time"

	parkingerrors "parkgate/internal/parking/errors"
	"parkgate/internal/parking/ledger"
	"parkgate/internal/parking/validator"
	"parkgate/pkg/config"
	apperrors "parkgate/pkg/errors"
	"parkgate/pkg/kafka"
	"parkgate/pkg/model"
	"parkgate/pkg/sanitizer"
)

const eventSource = "parking"

const (
	EventCheckedIn         = "ticket.checked_in"
	EventCheckedOut        = "ticket.checked_out"
	EventOccupancyAdjusted = "occupancy.adjusted"

	// occupancyEventKey partitions counter adjustments onto one key so
	// consumers see them in order.
	occupancyEventKey = "occupancy"
)

// EventPublisher is the slice of the Kafka producer the service needs.
// A nil publisher disables event emission.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type ParkingService interface {
	Status(ctx context.Context) model.LotStatus
	CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.CheckInResult, error)
	CheckOut(ctx context.Context, req *model.CheckOutRequest) (*model.CheckOutReceipt, error)
	ListActive(ctx context.Context) []model.TicketSnapshot
	AdjustOccupancy(ctx context.Context, delta int) model.OccupancyAdjustment
}

type parkingService struct {
	ledger    *ledger.Ledger
	validator *validator.RequestValidator
	events    EventPublisher
	cfg       *config.Config
}

func NewParkingService(
	ldg *ledger.Ledger,
	val *validator.RequestValidator,
	events EventPublisher,
	cfg *config.Config,
) ParkingService {
	return &parkingService{
		ledger:    ldg,
		validator: val,
		events:    events,
		cfg:       cfg,
	}
}

func (s *parkingService) Status(_ context.Context) model.LotStatus {
	return s.ledger.Status()
}

func (s *parkingService) CheckIn(ctx context.Context, req *model.CheckInRequest) (*model.CheckInResult, error) {
	req.PlateNumber = sanitizer.NormalizePlate(req.PlateNumber)

	if err := s.validator.ValidateCheckIn(req); err != nil {
		s.cfg.Log.Warn("Check-in validation failed", "error", err)
		return nil, s.toValidationError(err)
	}

	result, err := s.ledger.CheckIn(req.PlateNumber)
	if err != nil {
		s.cfg.Log.Warn("Check-in rejected", "plate_number", req.PlateNumber, "error", err)
		return nil, s.toAppError(err)
	}

	s.cfg.Log.Info("Vehicle checked in",
		"ticket_id", result.TicketID,
		"plate_number", result.PlateNumber,
		"slot_number", result.SlotNumber,
		"available_slots", result.AvailableSlots,
	)

	s.emit(ctx, EventCheckedIn, result.TicketID, checkedInEvent{
		TicketID:    result.TicketID,
		PlateNumber: result.PlateNumber,
		SlotNumber:  result.SlotNumber,
		EntryTime:   result.EntryTime,
	})

	return result, nil
}

func (s *parkingService) CheckOut(ctx context.Context, req *model.CheckOutRequest) (*model.CheckOutReceipt, error) {
	req.TicketID = sanitizer.NormalizeTicketID(req.TicketID)

	if err := s.validator.ValidateCheckOut(req); err != nil {
		s.cfg.Log.Warn("Check-out validation failed", "error", err)
		return nil, s.toValidationError(err)
	}

	receipt, err := s.ledger.CheckOut(req.TicketID)
	if err != nil {
		s.cfg.Log.Warn("Check-out rejected", "ticket_id", req.TicketID, "error", err)
		return nil, s.toAppError(err)
	}

	s.cfg.Log.Info("Vehicle checked out",
		"ticket_id", receipt.TicketID,
		"plate_number", receipt.PlateNumber,
		"duration_hours", receipt.DurationHours,
		"cost", receipt.Cost,
	)

	s.emit(ctx, EventCheckedOut, receipt.TicketID, checkedOutEvent{
		TicketID:      receipt.TicketID,
		PlateNumber:   receipt.PlateNumber,
		DurationHours: receipt.DurationHours,
		Cost:          receipt.Cost,
		EntryTime:     receipt.EntryTime,
		ExitTime:      receipt.ExitTime,
	})

	return receipt, nil
}

func (s *parkingService) ListActive(_ context.Context) []model.TicketSnapshot {
	return s.ledger.ListActive()
}

func (s *parkingService) AdjustOccupancy(ctx context.Context, delta int) model.OccupancyAdjustment {
	occupied := s.ledger.AdjustOccupancy(delta)

	s.cfg.Log.Info("Occupancy adjusted", "delta", delta, "occupied_slots", occupied)

	s.emit(ctx, EventOccupancyAdjusted, occupancyEventKey, occupancyEvent{
		Delta:         delta,
		OccupiedSlots: occupied,
	})

	return model.OccupancyAdjustment{
		Message:          "OK",
		NewOccupiedSlots: occupied,
	}
}

// SeedDemoData checks in a small set of demo vehicles with backdated
// entry times, as the original lot controller did at boot.
func SeedDemoData(ldg *ledger.Ledger, cfg *config.Config) {
	loc := cfg.Location()
	seeds := []struct {
		plate string
		entry time.Time
	}{
		{"B1234AA", time.Date(2025, 10, 17, 8, 0, 0, 0, loc)},
		{"D4567BB", time.Date(2025, 10, 17, 9, 15, 0, 0, loc)},
		{"F7890CC", time.Date(2025, 10, 17, 10, 30, 0, 0, loc)},
	}

	for _, seed := range seeds {
		result, err := ldg.CheckInAt(seed.plate, seed.entry)
		if err != nil {
			cfg.Log.Warn("Failed to seed demo ticket", "plate_number", seed.plate, "error", err)
			continue
		}
		cfg.Log.Info("Seeded demo ticket",
			"ticket_id", result.TicketID,
			"plate_number", result.PlateNumber,
			"slot_number", result.SlotNumber,
		)
	}
}

// --- Helpers ---

func (s *parkingService) toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.InvalidInput(verrs[0].Message)
	}
	return apperrors.InvalidInput(err.Error())
}

func (s *parkingService) toAppError(err error) error {
	switch {
	case errors.Is(err, parkingerrors.ErrLotDesync):
		return apperrors.InvalidInput("Parking lot is full (state desync detected)")
	case errors.Is(err, parkingerrors.ErrLotFull):
		return apperrors.InvalidInput("Parking lot is full")
	case errors.Is(err, parkingerrors.ErrTicketNotFound):
		return apperrors.New(apperrors.CodeNotFound, "Ticket not found", 404)
	case errors.Is(err, parkingerrors.ErrEmptyPlate):
		return apperrors.InvalidInput("plate_number is required")
	default:
		return apperrors.Internal("Ledger operation failed", err)
	}
}

type checkedInEvent struct {
	TicketID    string    `json:"ticket_id"`
	PlateNumber string    `json:"plate_number"`
	SlotNumber  int       `json:"slot_number"`
	EntryTime   time.Time `json:"entry_time"`
}

type checkedOutEvent struct {
	TicketID      string    `json:"ticket_id"`
	PlateNumber   string    `json:"plate_number"`
	DurationHours int       `json:"duration_hours"`
	Cost          int       `json:"cost"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
}

type occupancyEvent struct {
	Delta         int `json:"delta"`
	OccupiedSlots int `json:"occupied_slots"`
}

// emit publishes best-effort: a broker failure is logged and never
// surfaced to the HTTP caller.
func (s *parkingService) emit(ctx context.Context, eventType, key string, payload any) {
	if s.events == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSource(eventSource).
		Build()

	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish ticket event",
			"event_type", eventType,
			"key", key,
			"error", err,
		)
	}
}
