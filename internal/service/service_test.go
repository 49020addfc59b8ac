package service_test

import (
	"fmt"
	"testing"

	"github.com/ciclofit/ciclofit-server/internal/config"
	"github.com/ciclofit/ciclofit-server/internal/models"
	"github.com/ciclofit/ciclofit-server/internal/repository"
	"github.com/ciclofit/ciclofit-server/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles the services under test over a shared in-memory database
type testEnv struct {
	db      *gorm.DB
	auth    *service.AuthService
	users   *service.UserService
	cart    *service.CartService
	payment *service.PaymentService
	cycle   *service.CycleService
	checkin *service.CheckinService
	score   *service.ScoreService
	product *service.ProductService
	system  *service.SystemService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Payment{},
		&models.Cycle{},
		&models.CycleDay{},
		&models.DayZero{},
		&models.Daily{},
		&models.System{},
		&models.Diet{},
		&models.Training{},
		&models.Medication{},
		&models.Score{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	cartItemRepo := repository.NewCartItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cycleRepo := repository.NewCycleRepository(db)
	cycleDayRepo := repository.NewCycleDayRepository(db)
	dayZeroRepo := repository.NewDayZeroRepository(db)
	dailyRepo := repository.NewDailyRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	dietRepo := repository.NewDietRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	medicationRepo := repository.NewMedicationRepository(db)

	cartService := service.NewCartService(cartRepo, cartItemRepo, productRepo, userRepo)

	return &testEnv{
		db:      db,
		auth:    service.NewAuthService(userRepo, config.JWTConfig{Secret: "test-secret", ExpireHours: 1}),
		users:   service.NewUserService(userRepo),
		cart:    cartService,
		payment: service.NewPaymentService(paymentRepo, cartService),
		cycle:   service.NewCycleService(cycleRepo, cycleDayRepo, userRepo),
		checkin: service.NewCheckinService(dayZeroRepo, dailyRepo, cycleRepo, cycleDayRepo),
		score:   service.NewScoreService(scoreRepo, cycleRepo, dailyRepo),
		product: service.NewProductService(productRepo),
		system:  service.NewSystemService(systemRepo, dietRepo, trainingRepo, medicationRepo, userRepo),
	}
}

// registerUser creates a user through the auth service and returns it
func (e *testEnv) registerUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := e.auth.Register(&service.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return user
}

// createCycle starts a cycle for a user and returns it
func (e *testEnv) createCycle(t *testing.T, userID uint) *models.Cycle {
	t.Helper()
	cycle, err := e.cycle.CreateCycle(&service.CreateCycleRequest{UserID: userID})
	require.NoError(t, err)
	return cycle
}
