package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled,
		StatusRefundPending, StatusRefunded, StatusNoShow,
	} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Status("WAITLISTED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:       {StatusConfirmed, StatusCancelled},
		StatusConfirmed:     {StatusCompleted, StatusRefundPending},
		StatusRefundPending: {StatusRefunded},
	}

	all := []Status{
		StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled,
		StatusRefundPending, StatusRefunded, StatusNoShow,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusNoShowIsNeverATransitionTarget(t *testing.T) {
	for _, from := range []Status{
		StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled,
		StatusRefundPending, StatusRefunded,
	} {
		assert.False(t, from.CanTransitionTo(StatusNoShow), "NO_SHOW is written administratively, from %s", from)
	}
}

func TestStatusTerminalAndActive(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusRefundPending.IsTerminal())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusRefundPending.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
