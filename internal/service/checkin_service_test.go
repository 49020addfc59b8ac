package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createCycleDay(t *testing.T, cycleID uint) *models.CycleDay {
	t.Helper()
	day, err := e.cycle.CreateCycleDay(&service.CreateCycleDayRequest{CycleID: cycleID})
	require.NoError(t, err)
	return day
}

func TestCreateDayZeroOnePerCycle(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "dayzero@example.com")
	cycle := env.createCycle(t, user.ID)

	_, err := env.checkin.CreateDayZero(&service.CreateDayZeroRequest{
		CycleID: cycle.ID,
		Weight:  82.5,
		Waist:   94,
	})
	require.NoError(t, err)

	_, err = env.checkin.CreateDayZero(&service.CreateDayZeroRequest{
		CycleID: cycle.ID,
		Weight:  81.0,
	})
	assert.ErrorIs(t, err, service.ErrDayZeroExists)
}

func TestCreateDayZeroUnknownCycle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.checkin.CreateDayZero(&service.CreateDayZeroRequest{CycleID: 999})
	assert.ErrorIs(t, err, repository.ErrCycleNotFound)
}

func TestCreateDailyOnePerCycleDay(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "daily@example.com")
	cycle := env.createCycle(t, user.ID)
	day := env.createCycleDay(t, cycle.ID)

	_, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Diet:       true,
	})
	require.NoError(t, err)

	_, err = env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Training:   true,
	})
	assert.ErrorIs(t, err, service.ErrDailyExists)
}

func TestCreateDailyAccumulatesCyclePoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "points@example.com")
	cycle := env.createCycle(t, user.ID)

	first := env.createCycleDay(t, cycle.ID)
	daily, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID:  first.ID,
		Medication:  true,
		Training:    true,
		Diet:        true,
		WaterLiters: 2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, daily.Points)

	second := env.createCycleDay(t, cycle.ID)
	_, err = env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: second.ID,
		Rest:       true,
	})
	require.NoError(t, err)

	updated, err := env.cycle.GetCycleByID(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Compliance)
	assert.Equal(t, 4, updated.Points)
}

func TestDeleteDailySubtractsCyclePoints(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "subtract@example.com")
	cycle := env.createCycle(t, user.ID)
	day := env.createCycleDay(t, cycle.ID)

	daily, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Diet:       true,
		Rest:       true,
	})
	require.NoError(t, err)

	require.NoError(t, env.checkin.DeleteDaily(daily.ID))

	updated, err := env.cycle.GetCycleByID(cycle.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Compliance)
	assert.Equal(t, 0, updated.Points)
}

func TestUpdateDailyKeepsFlags(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "immutable@example.com")
	cycle := env.createCycle(t, user.ID)
	day := env.createCycleDay(t, cycle.ID)

	daily, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Diet:       true,
	})
	require.NoError(t, err)

	water := 3.0
	updated, err := env.checkin.UpdateDaily(daily.ID, &service.UpdateDailyRequest{WaterLiters: &water})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, updated.WaterLiters, 0.001)
	assert.True(t, updated.Diet)
	assert.Equal(t, daily.Points, updated.Points)
}

func TestGetDailyByCycleDay(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "bycycleday@example.com")
	cycle := env.createCycle(t, user.ID)
	day := env.createCycleDay(t, cycle.ID)

	created, err := env.checkin.CreateDaily(&service.CreateDailyRequest{
		CycleDayID: day.ID,
		Diet:       true,
	})
	require.NoError(t, err)

	daily, err := env.checkin.GetDailyByCycleDayID(day.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, daily.ID)

	other := env.createCycleDay(t, cycle.ID)
	_, err = env.checkin.GetDailyByCycleDayID(other.ID)
	assert.ErrorIs(t, err, repository.ErrDailyNotFound)
}
