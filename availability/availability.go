// Package availability computes the bookable time slots of a barbershop
// for one service and one date, from the shop's recurring weekly working
// hours, one-off blocked times and already booked appointments.
package availability

import (
	"time"

	"github.com/barbercloud/barbercloud-api/models"
)

const (
	// DefaultStep is the slot grid in minutes.
	DefaultStep = 15
	// fallback when an appointment's service has no duration on record
	defaultDurationMinutes = 30
)

// Store supplies the read-only snapshots the engine works on. GetService
// returns (nil, nil) when the service does not exist for the shop.
// GetBlockedTimes returns the rows whose date range covers the given date,
// and GetAppointments only the non-canceled appointments of that date.
type Store interface {
	GetService(barbershopID, serviceID uint) (*models.Service, error)
	GetWorkingHours(barbershopID uint, weekday int) ([]models.WorkingHour, error)
	GetBlockedTimes(barbershopID uint, date string) ([]models.BlockedTime, error)
	GetAppointments(barbershopID uint, date string) ([]models.Appointment, error)
}

// Engine is a pure function of its inputs: fixed store contents and a fixed
// "now" always yield the same slot list.
type Engine struct {
	store Store
	// Now is the clock used for the same-day clamp. Overridable in tests.
	Now func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, Now: time.Now}
}

// Result is the service snapshot plus the ordered open slots.
type Result struct {
	Service *models.Service `json:"service"`
	Slots   []string        `json:"slots"`
}

type interval struct {
	start, end int // minutes since midnight, half-open [start, end)
}

// overlaps uses half-open semantics: touching endpoints do not conflict.
func (a interval) overlaps(b interval) bool {
	return a.start < b.end && a.end > b.start
}

func overlapsAny(c interval, set []interval) bool {
	for _, iv := range set {
		if c.overlaps(iv) {
			return true
		}
	}
	return false
}

// ComputeSlots returns the open slot start times for a service on a date,
// in ascending order. A closed weekday or a full-day block yields an empty
// list, not an error. step <= 0 falls back to DefaultStep.
func (e *Engine) ComputeSlots(barbershopID, serviceID uint, date string, step int) (*Result, error) {
	if !IsValidDate(date) {
		return nil, ErrInvalidDate
	}
	if step <= 0 {
		step = DefaultStep
	}

	service, err := e.store.GetService(barbershopID, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	weekday, err := WeekdayOf(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	ranges, err := e.store.GetWorkingHours(barbershopID, weekday)
	if err != nil {
		return nil, err
	}
	// Closed that weekday.
	if len(ranges) == 0 {
		return &Result{Service: service, Slots: []string{}}, nil
	}

	blocks, err := e.store.GetBlockedTimes(barbershopID, date)
	if err != nil {
		return nil, err
	}
	var blocked []interval
	for _, b := range blocks {
		if b.CoversFullDay() {
			return &Result{Service: service, Slots: []string{}}, nil
		}
		if b.StartTime != nil && b.EndTime != nil {
			blocked = append(blocked, interval{ToMinutes(*b.StartTime), ToMinutes(*b.EndTime)})
		}
	}

	appointments, err := e.store.GetAppointments(barbershopID, date)
	if err != nil {
		return nil, err
	}
	var occupied []interval
	for _, a := range appointments {
		if !IsValidTime(a.Time) {
			continue
		}
		start := ToMinutes(a.Time)
		dur := a.Service.DurationMinutes
		if dur <= 0 {
			dur = defaultDurationMinutes
		}
		occupied = append(occupied, interval{start, start + dur})
	}

	duration := service.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}

	now := e.Now()
	isToday := date == DateOf(now)
	minNow := now.Hour()*60 + now.Minute()

	slots := []string{}
	for _, r := range ranges {
		if !IsValidTime(r.StartTime) || !IsValidTime(r.EndTime) {
			continue
		}
		start := ToMinutes(r.StartTime)
		end := ToMinutes(r.EndTime)

		// last start that still fits the whole service
		lastStart := end - duration
		if lastStart < start {
			continue
		}

		// never offer a start in the past; round up to the step grid
		if isToday && start < minNow {
			start = ((minNow + step - 1) / step) * step
		}

		for t := start; t <= lastStart; t += step {
			cand := interval{t, t + duration}
			if overlapsAny(cand, occupied) || overlapsAny(cand, blocked) {
				continue
			}
			slots = append(slots, ToClock(t))
		}
	}

	return &Result{Service: service, Slots: slots}, nil
}

// CheckSlot recomputes availability and verifies that clock is still an
// open slot. It is the booking-time re-validation: display and booking run
// the same computation, and a store-level uniqueness violation after a
// successful check must be treated by the caller as the same
// ErrSlotUnavailable conflict.
func (e *Engine) CheckSlot(barbershopID, serviceID uint, date, clock string, step int) (*Result, error) {
	if !IsValidTime(clock) {
		return nil, ErrInvalidTime
	}
	res, err := e.ComputeSlots(barbershopID, serviceID, date, step)
	if err != nil {
		return nil, err
	}
	for _, s := range res.Slots {
		if s == clock {
			return res, nil
		}
	}
	return nil, ErrSlotUnavailable
}
