// Package ledger owns the in-memory collection of active parking
// tickets, the ticket-id sequence, and the occupancy counter.
//
// The counter and the ticket set are two independent sources of truth
// for occupancy: webhook adjustments move the counter without touching
// tickets, so the two can legitimately diverge. Check-in consults the
// counter first and the physical slot scan second, resynchronizing the
// counter when the scan disagrees. This mirrors the observed behavior of
// the lot controller and must not be "fixed" by deriving occupancy from
// the ticket set alone.
package ledger

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	parkingerrors "parkgate/internal/parking/errors"
	"parkgate/pkg/clock"
	"parkgate/pkg/model"
	"parkgate/pkg/sanitizer"
)

const snapshotTimeLayout = "2006-01-02 15:04:05"

type Ledger struct {
	mu sync.Mutex

	totalSlots int
	hourlyRate int
	clock      clock.Clock

	tickets  map[string]*model.Ticket
	nextSeq  int
	occupied int
}

func New(totalSlots, hourlyRate int, clk clock.Clock) *Ledger {
	if clk == nil {
		clk = clock.System(time.UTC)
	}
	return &Ledger{
		totalSlots: totalSlots,
		hourlyRate: hourlyRate,
		clock:      clk,
		tickets:    make(map[string]*model.Ticket),
		nextSeq:    1,
	}
}

// CheckIn creates a ticket for plate on the lowest free slot, stamped
// with the current clock time.
func (l *Ledger) CheckIn(plate string) (*model.CheckInResult, error) {
	return l.checkInAt(plate, time.Time{})
}

// CheckInAt creates a ticket with an explicit entry time. Used to seed
// demo data; regular traffic goes through CheckIn.
func (l *Ledger) CheckInAt(plate string, entry time.Time) (*model.CheckInResult, error) {
	return l.checkInAt(plate, entry)
}

func (l *Ledger) checkInAt(plate string, entry time.Time) (*model.CheckInResult, error) {
	plate = sanitizer.NormalizePlate(plate)
	if plate == "" {
		return nil, parkingerrors.ErrEmptyPlate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Capacity check consults the counter, not the ticket set.
	if l.occupied >= l.totalSlots {
		return nil, parkingerrors.ErrLotFull
	}

	slot, ok := l.assignSlotLocked()
	if !ok {
		// Counter said there was space but every physical slot is held:
		// the counter drifted below the truth. Resynchronize and reject.
		l.occupied = len(l.tickets)
		return nil, parkingerrors.ErrLotDesync
	}

	if entry.IsZero() {
		entry = l.clock.Now()
	}

	id := fmt.Sprintf("T%04d", l.nextSeq)
	l.nextSeq++

	l.tickets[id] = &model.Ticket{
		TicketID:    id,
		PlateNumber: plate,
		SlotNumber:  slot,
		EntryTime:   entry,
	}
	l.occupied++

	return &model.CheckInResult{
		TicketID:       id,
		PlateNumber:    plate,
		SlotNumber:     slot,
		EntryTime:      entry,
		AvailableSlots: l.availableLocked(),
	}, nil
}

// CheckOut removes the ticket and fixes its duration and cost against
// the current clock time. A failed lookup leaves the ledger untouched.
func (l *Ledger) CheckOut(ticketID string) (*model.CheckOutReceipt, error) {
	ticketID = sanitizer.NormalizeTicketID(ticketID)

	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok {
		return nil, parkingerrors.ErrTicketNotFound
	}

	exit := l.clock.Now()
	hours, cost := Cost(ticket.EntryTime, exit, l.hourlyRate)

	delete(l.tickets, ticketID)
	if l.occupied > 0 {
		l.occupied--
	}

	return &model.CheckOutReceipt{
		TicketID:      ticket.TicketID,
		PlateNumber:   ticket.PlateNumber,
		DurationHours: hours,
		Cost:          cost,
		EntryTime:     ticket.EntryTime,
		ExitTime:      exit,
	}, nil
}

// Status reports occupancy from the counter. Available never goes
// negative even when the counter exceeds the slot count.
func (l *Ledger) Status() model.LotStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	return model.LotStatus{
		TotalSlots:     l.totalSlots,
		OccupiedSlots:  l.occupied,
		AvailableSlots: l.availableLocked(),
	}
}

// ListActive returns every active ticket with duration and cost computed
// against the current clock time, ordered by ascending slot number. The
// ledger is not mutated.
func (l *Ledger) ListActive() []model.TicketSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	snapshots := make([]model.TicketSnapshot, 0, len(l.tickets))
	for _, ticket := range l.tickets {
		hours, cost := Cost(ticket.EntryTime, now, l.hourlyRate)
		snapshots = append(snapshots, model.TicketSnapshot{
			TicketID:             ticket.TicketID,
			PlateNumber:          ticket.PlateNumber,
			SlotNumber:           ticket.SlotNumber,
			EntryTimeStr:         ticket.EntryTime.Format(snapshotTimeLayout),
			CurrentDurationHours: hours,
			CurrentCost:          cost,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SlotNumber < snapshots[j].SlotNumber
	})

	return snapshots
}

// AdjustOccupancy moves the counter by delta without touching tickets,
// clamped to [0, totalSlots]. Returns the new counter value.
func (l *Ledger) AdjustOccupancy(delta int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.occupied + delta
	if next < 0 {
		next = 0
	}
	if next > l.totalSlots {
		next = l.totalSlots
	}
	l.occupied = next

	return l.occupied
}

// assignSlotLocked scans slots 1..totalSlots in ascending order and
// returns the first one not held by an active ticket. Lowest-numbered
// first keeps slot reuse after check-out predictable.
func (l *Ledger) assignSlotLocked() (int, bool) {
	held := make(map[int]bool, len(l.tickets))
	for _, ticket := range l.tickets {
		held[ticket.SlotNumber] = true
	}
	for slot := 1; slot <= l.totalSlots; slot++ {
		if !held[slot] {
			return slot, true
		}
	}
	return 0, false
}

func (l *Ledger) availableLocked() int {
	available := l.totalSlots - l.occupied
	if available < 0 {
		return 0
	}
	return available
}

// Cost computes the billed duration and amount for a stay. Duration is
// the elapsed time rounded up to whole hours with a minimum of one hour;
// near-zero and negative (clock skew) stays bill as one full hour.
func Cost(entry, exit time.Time, hourlyRate int) (durationHours, cost int) {
	seconds := exit.Sub(entry).Seconds()
	durationHours = int(math.Ceil(seconds / 3600))
	if durationHours < 1 {
		durationHours = 1
	}
	return durationHours, durationHours * hourlyRate
}
