package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/InstitutRosalie/salon-scheduler/internal/httperr"
)

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusCompleted, StatusRejected, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, Status("confirmed").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusAccepted.Blocks())

	assert.False(t, StatusCompleted.Blocks())
	assert.False(t, StatusRejected.Blocks())
	assert.False(t, StatusCancelled.Blocks())
}

func TestBlockingStatuses_MatchesBlocks(t *testing.T) {
	got := BlockingStatuses()

	assert.ElementsMatch(t, []string{"pending", "accepted"}, got)
	for _, s := range got {
		assert.True(t, Status(s).Blocks(), s)
	}
}

func TestCanTransition_AllowedPaths(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusAccepted))
	assert.NoError(t, CanTransition(StatusPending, StatusRejected))
	assert.NoError(t, CanTransition(StatusPending, StatusCancelled))
	assert.NoError(t, CanTransition(StatusAccepted, StatusCompleted))
	assert.NoError(t, CanTransition(StatusAccepted, StatusCancelled))
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusRejected, StatusCancelled}
	targets := []Status{StatusPending, StatusAccepted, StatusCompleted, StatusRejected, StatusCancelled}

	for _, from := range terminal {
		for _, to := range targets {
			err := CanTransition(from, to)
			assert.Error(t, err, "%s -> %s", from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		}
	}
}

func TestCanTransition_NoBackwardsFromAccepted(t *testing.T) {
	assert.Error(t, CanTransition(StatusAccepted, StatusPending))
	assert.Error(t, CanTransition(StatusAccepted, StatusRejected))
	assert.Error(t, CanTransition(StatusPending, StatusCompleted))
}
