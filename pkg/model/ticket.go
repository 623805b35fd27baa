package model

import "time"

// Ticket identifies one active parking session. All fields are set at
// check-in and never updated; check-out removes the ticket permanently.
type Ticket struct {
	TicketID    string    `json:"ticket_id"`
	PlateNumber string    `json:"plate_number"`
	SlotNumber  int       `json:"slot_number"`
	EntryTime   time.Time `json:"entry_time"`
}

type CheckInRequest struct {
	PlateNumber string `json:"plate_number" validate:"required,max=16"`
}

type CheckOutRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
}

// LotStatus reports occupancy from the counter, not the ticket set; the
// two are reconciled but may diverge after webhook adjustments.
type LotStatus struct {
	TotalSlots     int `json:"total_slots"`
	OccupiedSlots  int `json:"occupied_slots"`
	AvailableSlots int `json:"available_slots"`
}

type CheckInResult struct {
	TicketID       string    `json:"ticket_id"`
	PlateNumber    string    `json:"plate_number"`
	SlotNumber     int       `json:"slot_number"`
	EntryTime      time.Time `json:"entry_time"`
	AvailableSlots int       `json:"available_slots"`
}

// CheckOutReceipt fixes the billed duration and cost at the moment of
// check-out.
type CheckOutReceipt struct {
	TicketID      string    `json:"ticket_id"`
	PlateNumber   string    `json:"plate_number"`
	DurationHours int       `json:"duration_hours"`
	Cost          int       `json:"cost"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
}

// TicketSnapshot is an active ticket augmented with duration and cost
// computed against the listing time. The cost here is informational; the
// binding amount is computed at check-out.
type TicketSnapshot struct {
	TicketID             string `json:"ticket_id"`
	PlateNumber          string `json:"plate_number"`
	SlotNumber           int    `json:"slot_number"`
	EntryTimeStr         string `json:"entry_time_str"`
	CurrentDurationHours int    `json:"current_duration_hours"`
	CurrentCost          int    `json:"current_cost"`
}

type OccupancyAdjustment struct {
	Message          string `json:"message"`
	NewOccupiedSlots int    `json:"new_occupied_slots"`
}
