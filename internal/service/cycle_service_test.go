package service_test

import (
	"testing"
	"time"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCycleDefaults(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "cycle@example.com")

	cycle, err := env.cycle.CreateCycle(&service.CreateCycleRequest{UserID: user.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, cycle.Number)
	assert.Equal(t, time.Now().Format("2006-01-02"), cycle.Date)
	assert.True(t, cycle.Active)
	assert.Equal(t, 0, cycle.CurrentDay)
}

func TestCreateCycleNumberCounts(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "numbering@example.com")

	first := env.createCycle(t, user.ID)
	_, err := env.cycle.FinalizeCycle(first.ID)
	require.NoError(t, err)

	second, err := env.cycle.CreateCycle(&service.CreateCycleRequest{
		UserID: user.ID,
		Date:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Number)
}

func TestCreateCycleDuplicateNumberDate(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "dup-cycle@example.com")

	first, err := env.cycle.CreateCycle(&service.CreateCycleRequest{
		UserID: user.ID,
		Number: 1,
		Date:   "2026-08-01",
	})
	require.NoError(t, err)

	_, err = env.cycle.FinalizeCycle(first.ID)
	require.NoError(t, err)

	_, err = env.cycle.CreateCycle(&service.CreateCycleRequest{
		UserID: user.ID,
		Number: 1,
		Date:   "2026-08-01",
	})
	assert.ErrorIs(t, err, service.ErrCycleExists)
}

func TestCreateCycleOneActivePerUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "active@example.com")

	env.createCycle(t, user.ID)

	_, err := env.cycle.CreateCycle(&service.CreateCycleRequest{
		UserID: user.ID,
		Number: 2,
		Date:   "2026-10-01",
	})
	assert.ErrorIs(t, err, service.ErrActiveCycleExists)
}

func TestFinalizeCycleIdempotent(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "finalize@example.com")
	cycle := env.createCycle(t, user.ID)

	done, err := env.cycle.FinalizeCycle(cycle.ID)
	require.NoError(t, err)
	assert.False(t, done.Active)

	again, err := env.cycle.FinalizeCycle(cycle.ID)
	require.NoError(t, err)
	assert.False(t, again.Active)
}

func TestCreateCycleDayAdvancesCounter(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "days@example.com")
	cycle := env.createCycle(t, user.ID)

	first, err := env.cycle.CreateCycleDay(&service.CreateCycleDayRequest{
		CycleID: cycle.ID,
		Diet:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Day)

	second, err := env.cycle.CreateCycleDay(&service.CreateCycleDayRequest{
		CycleID:  cycle.ID,
		Training: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Day)

	updated, err := env.cycle.GetCycleByID(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentDay)
}

func TestUpdateCycleFlags(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "flags@example.com")
	cycle := env.createCycle(t, user.ID)

	diet := true
	updated, err := env.cycle.UpdateCycle(cycle.ID, &service.UpdateCycleRequest{Diet: &diet})
	require.NoError(t, err)
	assert.True(t, updated.Diet)
	assert.False(t, updated.Training)
}

func TestGetCyclesByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "mycycles@example.com")
	cycle := env.createCycle(t, user.ID)

	cycles, err := env.cycle.GetCyclesByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, cycle.ID, cycles[0].ID)

	other := env.registerUser(t, "nocycles@example.com")
	cycles, err = env.cycle.GetCyclesByUserID(other.ID)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}

func TestGetActiveCycleByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "whichactive@example.com")
	cycle := env.createCycle(t, user.ID)

	active, err := env.cycle.GetActiveCycleByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, cycle.ID, active.ID)

	_, err = env.cycle.FinalizeCycle(cycle.ID)
	require.NoError(t, err)

	_, err = env.cycle.GetActiveCycleByUserID(user.ID)
	assert.ErrorIs(t, err, repository.ErrCycleNotFound)
}

func TestGetDaysByCycle(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "listdays@example.com")
	cycle := env.createCycle(t, user.ID)

	_, err := env.cycle.CreateCycleDay(&service.CreateCycleDayRequest{CycleID: cycle.ID})
	require.NoError(t, err)
	_, err = env.cycle.CreateCycleDay(&service.CreateCycleDayRequest{CycleID: cycle.ID})
	require.NoError(t, err)

	days, err := env.cycle.GetDaysByCycleID(cycle.ID)
	require.NoError(t, err)
	assert.Len(t, days, 2)

	_, err = env.cycle.GetDaysByCycleID(999)
	assert.ErrorIs(t, err, repository.ErrCycleNotFound)
}
