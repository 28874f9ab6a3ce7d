package reservations

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFindOverdue(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.Local)

	overduePending := Reservation{ID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-25 * time.Hour)}
	freshPending := Reservation{ID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-23 * time.Hour)}
	overdueConfirmed := Reservation{ID: uuid.New(), Status: StatusConfirmed, CreatedAt: now.Add(-48 * time.Hour)}
	exactlyAtDeadline := Reservation{ID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-24 * time.Hour)}

	got := FindOverdue(
		[]Reservation{overduePending, freshPending, overdueConfirmed, exactlyAtDeadline},
		now, DefaultPaymentDeadline,
	)

	assert.Equal(t, []uuid.UUID{overduePending.ID}, got,
		"only PENDING rows strictly past the deadline are selected")
}

func TestFindOverdueEmptyInput(t *testing.T) {
	now := time.Now()
	assert.Empty(t, FindOverdue(nil, now, DefaultPaymentDeadline))
	assert.Empty(t, FindOverdue([]Reservation{}, now, DefaultPaymentDeadline))
}

func TestFindOverdueCustomDeadline(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.Local)
	r := Reservation{ID: uuid.New(), Status: StatusPending, CreatedAt: now.Add(-2 * time.Hour)}

	assert.Empty(t, FindOverdue([]Reservation{r}, now, DefaultPaymentDeadline))
	assert.Len(t, FindOverdue([]Reservation{r}, now, time.Hour), 1)
}
