package service_test

import (
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSystemOnePerUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "system@example.com")

	_, err := env.system.CreateSystem(&service.CreateSystemRequest{
		UserID: user.ID,
		Name:   "Protocolo Verão",
	})
	require.NoError(t, err)

	_, err = env.system.CreateSystem(&service.CreateSystemRequest{UserID: user.ID})
	assert.ErrorIs(t, err, service.ErrSystemExists)
}

func TestCreateSystemUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.system.CreateSystem(&service.CreateSystemRequest{UserID: 999})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestCreateDietRequiresSystem(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.system.CreateDiet(&service.CreateDietRequest{
		SystemID:    999,
		Description: "Low carb",
	})
	assert.ErrorIs(t, err, repository.ErrSystemNotFound)
}

func TestSystemSubRecords(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "subrecords@example.com")

	system, err := env.system.CreateSystem(&service.CreateSystemRequest{UserID: user.ID})
	require.NoError(t, err)

	diet, err := env.system.CreateDiet(&service.CreateDietRequest{
		SystemID:    system.ID,
		Description: "Cutting 2200kcal",
		Calories:    2200,
	})
	require.NoError(t, err)
	assert.Equal(t, system.ID, diet.SystemID)

	training, err := env.system.CreateTraining(&service.CreateTrainingRequest{
		SystemID:    system.ID,
		Description: "ABC upper/lower",
	})
	require.NoError(t, err)
	assert.Equal(t, system.ID, training.SystemID)

	medication, err := env.system.CreateMedication(&service.CreateMedicationRequest{
		SystemID: system.ID,
		Name:     "Vitamina D",
		Dosage:   "2000UI",
	})
	require.NoError(t, err)
	assert.Equal(t, system.ID, medication.SystemID)
}

func TestUpdateSystemName(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "rename@example.com")

	system, err := env.system.CreateSystem(&service.CreateSystemRequest{
		UserID: user.ID,
		Name:   "Base",
	})
	require.NoError(t, err)

	name := "Bulking"
	updated, err := env.system.UpdateSystem(system.ID, &service.UpdateSystemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Bulking", updated.Name)
}

func TestGetSystemByUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "mysystem@example.com")

	system, err := env.system.CreateSystem(&service.CreateSystemRequest{UserID: user.ID})
	require.NoError(t, err)

	found, err := env.system.GetSystemByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, system.ID, found.ID)

	other := env.registerUser(t, "nosystem@example.com")
	_, err = env.system.GetSystemByUserID(other.ID)
	assert.ErrorIs(t, err, repository.ErrSystemNotFound)
}
