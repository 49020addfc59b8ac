package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateScoreCreatesSummary(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "score@example.com")
	cycle := env.createCycle(t, user.ID)

	day := env.createCycleDay(t, cycle.ID)
	_, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Medication: true,
		Training:   true,
		Diet:       true,
		FreeMeal:   true,
		Rest:       true,
	})
	require.NoError(t, err)

	score, err := env.score.RecalculateScore(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, score.UserID)
	assert.Equal(t, 5, score.Points)
	assert.Equal(t, 5, score.MaxPoints)
	assert.InDelta(t, 100.0, score.Percentage, 0.001)
}

func TestRecalculateScoreUpdatesExisting(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "rescore@example.com")
	cycle := env.createCycle(t, user.ID)

	first := env.createCycleDay(t, cycle.ID)
	_, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: first.ID,
		Diet:       true,
	})
	require.NoError(t, err)

	created, err := env.score.RecalculateScore(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, created.Points)
	assert.Equal(t, 5, created.MaxPoints)

	second := env.createCycleDay(t, cycle.ID)
	_, err = env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: second.ID,
		Diet:       true,
		Training:   true,
	})
	require.NoError(t, err)

	updated, err := env.score.RecalculateScore(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 3, updated.Points)
	assert.Equal(t, 10, updated.MaxPoints)
	assert.InDelta(t, 30.0, updated.Percentage, 0.001)
}

func TestRecalculateScoreEmptyCycle(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "empty@example.com")
	cycle := env.createCycle(t, user.ID)

	score, err := env.score.RecalculateScore(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, score.Points)
	assert.Equal(t, 0, score.MaxPoints)
	assert.InDelta(t, 0.0, score.Percentage, 0.001)
}

func TestRecalculateScoreUnknownCycle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.score.RecalculateScore(999)
	assert.ErrorIs(t, err, repository.ErrCycleNotFound)
}

func TestCreateScoreOnePerCycle(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "onescore@example.com")
	cycle := env.createCycle(t, user.ID)

	_, err := env.score.CreateScore(&service.CreateScoreRequest{
		UserID:    user.ID,
		CycleID:   cycle.ID,
		Points:    3,
		MaxPoints: 5,
	})
	require.NoError(t, err)

	_, err = env.score.CreateScore(&service.CreateScoreRequest{
		UserID:  user.ID,
		CycleID: cycle.ID,
	})
	assert.ErrorIs(t, err, service.ErrScoreExists)
}

func TestGetScoresByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "myscores@example.com")
	cycle := env.createCycle(t, user.ID)

	_, err := env.score.RecalculateScore(cycle.ID)
	require.NoError(t, err)

	scores, err := env.score.GetScoresByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, cycle.ID, scores[0].CycleID)

	other := env.registerUser(t, "notmyscores@example.com")
	scores, err = env.score.GetScoresByUserID(other.ID)
	require.NoError(t, err)
	assert.Empty(t, scores)
}
