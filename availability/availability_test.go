package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbercloud/barbercloud-api/models"
)

// fakeStore holds one shop's rows in memory and filters them the same way
// the relational store does.
type fakeStore struct {
	services     []models.Service
	workingHours []models.WorkingHour
	blocked      []models.BlockedTime
	appointments []models.Appointment
}

func (s *fakeStore) GetService(barbershopID, serviceID uint) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].ID == serviceID && s.services[i].BarbershopID == barbershopID {
			svc := s.services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetWorkingHours(barbershopID uint, weekday int) ([]models.WorkingHour, error) {
	var out []models.WorkingHour
	for _, wh := range s.workingHours {
		if wh.BarbershopID == barbershopID && wh.Weekday == weekday {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (s *fakeStore) GetBlockedTimes(barbershopID uint, date string) ([]models.BlockedTime, error) {
	var out []models.BlockedTime
	for _, b := range s.blocked {
		if b.BarbershopID != barbershopID || b.DateFrom > date {
			continue
		}
		to := b.DateFrom
		if b.DateTo != nil {
			to = *b.DateTo
		}
		if to >= date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *fakeStore) GetAppointments(barbershopID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.BarbershopID == barbershopID && a.Date == date && a.Status != models.StatusCanceled {
			out = append(out, a)
		}
	}
	return out, nil
}

func str(s string) *string { return &s }

func service(id, shopID uint, duration int) models.Service {
	svc := models.Service{BarbershopID: shopID, DurationMinutes: duration}
	svc.ID = id
	return svc
}

func appointment(shopID uint, date, clock string, duration int, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{
		BarbershopID: shopID,
		Date:         date,
		Time:         clock,
		Status:       status,
		Service:      models.Service{DurationMinutes: duration},
	}
}

// fixedEngine pins the clock so the same-day clamp never fires unless a
// test wants it to.
func fixedEngine(store Store, now time.Time) *Engine {
	e := NewEngine(store)
	e.Now = func() time.Time { return now }
	return e
}

// 2025-06-18 is a Wednesday (weekday 3); the fixed clock sits on another day.
const (
	wednesday = "2025-06-18"
)

var quietNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local)

func TestComputeSlotsServiceNotFound(t *testing.T) {
	store := &fakeStore{services: []models.Service{service(1, 1, 30)}}
	e := fixedEngine(store, quietNow)

	_, err := e.ComputeSlots(1, 99, wednesday, 15)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// service exists but belongs to another shop
	_, err = e.ComputeSlots(2, 1, wednesday, 15)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestComputeSlotsInvalidDate(t *testing.T) {
	store := &fakeStore{services: []models.Service{service(1, 1, 30)}}
	e := fixedEngine(store, quietNow)

	for _, d := range []string{"18-06-2025", "2025/06/18", "2025-13-01", "2025-02-30", ""} {
		_, err := e.ComputeSlots(1, 1, d, 15)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", d)
	}
}

func TestComputeSlotsClosedWeekday(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		// open Mondays only
		workingHours: []models.WorkingHour{{BarbershopID: 1, Weekday: 1, StartTime: "09:00", EndTime: "18:00"}},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
	assert.NotNil(t, res.Service)
}

func TestComputeSlotsFullScenario(t *testing.T) {
	// Shop open 09:00-12:00 on Wednesday, 30-minute service, step 15,
	// one confirmed appointment at 10:00 and a block 11:00-11:30.
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "12:00"},
		},
		blocked: []models.BlockedTime{
			{BarbershopID: 1, DateFrom: wednesday, StartTime: str("11:00"), EndTime: str("11:30")},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10:00", 30, models.StatusConfirmed),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)

	// 09:45 would run into the 10:00 appointment, 10:45 into the block.
	// 10:30 touches the appointment's end and 11:30 the block's end;
	// half-open intervals make both bookable, and 11:30 is exactly the
	// last start that still fits (12:00 - 30).
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "10:30", "11:30"}, res.Slots)
}

func TestComputeSlotsFullDayBlock(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
		blocked: []models.BlockedTime{
			// vacation spanning the date, no time fields
			{BarbershopID: 1, DateFrom: "2025-06-16", DateTo: str("2025-06-20")},
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestComputeSlotsServiceDoesNotFit(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 90)},
		workingHours: []models.WorkingHour{
			// only an hour open: a 90-minute service never fits
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "10:00"},
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestComputeSlotsBackToBack(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "10:00", EndTime: "11:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10:00", 30, models.StatusConfirmed),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	// the 10:00 appointment ends exactly where 10:30 starts
	assert.Equal(t, []string{"10:30"}, res.Slots)
}

func TestComputeSlotsCanceledAppointmentsFree(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "10:00", EndTime: "11:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10:00", 30, models.StatusCanceled),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Contains(t, res.Slots, "10:00")
}

func TestComputeSlotsPendingOccupies(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "10:00", EndTime: "11:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10:00", 30, models.StatusPending),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.NotContains(t, res.Slots, "10:00")
}

func TestComputeSlotsSkipsMalformedAppointmentTime(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "10:00", EndTime: "11:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10h00", 30, models.StatusConfirmed),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "10:15", "10:30"}, res.Slots)
}

func TestComputeSlotsDurationFallback(t *testing.T) {
	// appointment whose service has no duration on record occupies 30min
	store := &fakeStore{
		services: []models.Service{service(1, 1, 15)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "10:00", EndTime: "11:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "10:00", 0, models.StatusConfirmed),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "10:45"}, res.Slots)
}

func TestComputeSlotsMultipleRanges(t *testing.T) {
	// split morning/afternoon shift
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "10:00"},
			{BarbershopID: 1, Weekday: 3, StartTime: "14:00", EndTime: "15:00"},
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "14:00", "14:15", "14:30"}, res.Slots)
}

func TestComputeSlotsTodayClamp(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "18:00"},
		},
	}
	// clock says 14:32 on the requested Wednesday itself
	now := time.Date(2025, 6, 18, 14, 32, 0, 0, time.Local)
	e := fixedEngine(store, now)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)
	assert.Equal(t, "14:45", res.Slots[0])
	for _, s := range res.Slots {
		assert.GreaterOrEqual(t, ToMinutes(s), 14*60+45, "slot %s starts in the past", s)
	}
}

func TestComputeSlotsClampSkipsEarlierRanges(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "12:00"},
			{BarbershopID: 1, Weekday: 3, StartTime: "16:00", EndTime: "17:00"},
		},
	}
	// late enough that the whole morning range is gone
	now := time.Date(2025, 6, 18, 13, 5, 0, 0, time.Local)
	e := fixedEngine(store, now)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	// the afternoon range starts after "now" and stays on its own grid
	assert.Equal(t, []string{"16:00", "16:15", "16:30"}, res.Slots)
}

func TestComputeSlotsIdempotent(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "12:00"},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "09:30", 30, models.StatusConfirmed),
		},
	}
	e := fixedEngine(store, quietNow)

	first, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	second, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
}

// Every returned slot must lie inside some working-hour range and clear of
// blocks and appointments.
func TestComputeSlotsWithinRanges(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 45)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "08:30", EndTime: "12:00"},
			{BarbershopID: 1, Weekday: 3, StartTime: "13:00", EndTime: "19:30"},
		},
		blocked: []models.BlockedTime{
			{BarbershopID: 1, DateFrom: wednesday, StartTime: str("15:00"), EndTime: str("16:00")},
		},
		appointments: []models.Appointment{
			appointment(1, wednesday, "09:00", 60, models.StatusConfirmed),
			appointment(1, wednesday, "17:30", 30, models.StatusPending),
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.ComputeSlots(1, 1, wednesday, 15)
	require.NoError(t, err)
	require.NotEmpty(t, res.Slots)

	conflicts := []interval{
		{15 * 60, 16 * 60},    // block
		{9 * 60, 10 * 60},     // 09:00 appointment
		{17*60 + 30, 18 * 60}, // 17:30 appointment
	}
	ranges := []interval{
		{8*60 + 30, 12 * 60},
		{13 * 60, 19*60 + 30},
	}

	prev := -1
	for _, s := range res.Slots {
		start := ToMinutes(s)
		cand := interval{start, start + 45}

		assert.Greater(t, start, prev, "slots must be ascending")
		prev = start

		inRange := false
		for _, r := range ranges {
			if cand.start >= r.start && cand.end <= r.end {
				inRange = true
			}
		}
		assert.True(t, inRange, "slot %s escapes the working hours", s)
		assert.False(t, overlapsAny(cand, conflicts), "slot %s conflicts", s)
	}
}

func TestCheckSlot(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	e := fixedEngine(store, quietNow)

	res, err := e.CheckSlot(1, 1, wednesday, "09:30", 15)
	require.NoError(t, err)
	assert.Contains(t, res.Slots, "09:30")

	_, err = e.CheckSlot(1, 1, wednesday, "12:00", 15)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = e.CheckSlot(1, 1, wednesday, "9:30", 15)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestCheckSlotLosesRace(t *testing.T) {
	store := &fakeStore{
		services: []models.Service{service(1, 1, 30)},
		workingHours: []models.WorkingHour{
			{BarbershopID: 1, Weekday: 3, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	e := fixedEngine(store, quietNow)

	// the slot is free on first read
	_, err := e.CheckSlot(1, 1, wednesday, "10:00", 15)
	require.NoError(t, err)

	// a concurrent booking fills it before we write
	store.appointments = append(store.appointments,
		appointment(1, wednesday, "10:00", 30, models.StatusPending))

	_, err = e.CheckSlot(1, 1, wednesday, "10:00", 15)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}
