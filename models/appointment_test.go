package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to AppointmentStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCanceled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCanceled},
	}
	for _, tr := range allowed {
		assert.True(t, tr.from.CanTransitionTo(tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct {
		from, to AppointmentStatus
	}{
		{StatusPending, StatusCompleted},
		{StatusCompleted, StatusCanceled},
		{StatusCompleted, StatusConfirmed},
		{StatusCanceled, StatusPending},
		{StatusCanceled, StatusConfirmed},
		{StatusConfirmed, StatusPending},
	}
	for _, tr := range denied {
		assert.False(t, tr.from.CanTransitionTo(tr.to), "%s -> %s", tr.from, tr.to)
	}
}
