package provider

import (
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/cache"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/models"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/queue"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/repository"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/service"
)

// Container dependency injection container
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo           repository.UserRepository
	OrderRepo          repository.OrderRepository
	RentalRepo         repository.RentalRepository
	HotpotUnitRepo     repository.HotpotUnitRepository
	HotpotTypeRepo     repository.HotpotTypeRepository
	IngredientRepo     repository.IngredientRepository
	UtensilRepo        repository.UtensilRepository
	CustomizationRepo  repository.CustomizationRepository
	ComboRepo          repository.ComboRepository
	DiscountRepo       repository.DiscountRepository
	PaymentRepo        repository.PaymentRepository
	ReplacementRepo    repository.ReplacementRepository
	MaintenanceLogRepo repository.MaintenanceLogRepository
	NotificationRepo   repository.NotificationRepository

	// Services
	NotificationService *service.NotificationService
	PaymentService      *service.PaymentService
	DiscountService     *service.DiscountService
	InventoryService    *service.InventoryService
	OrderService        *service.OrderService
	RentalService       *service.RentalService
	ReplacementService  *service.ReplacementService
}

// NewContainer wires repositories and services
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.RentalRepo = repository.NewRentalRepository(db)
	c.HotpotUnitRepo = repository.NewHotpotUnitRepository(db)
	c.HotpotTypeRepo = repository.NewHotpotTypeRepository(db)
	c.IngredientRepo = repository.NewIngredientRepository(db)
	c.UtensilRepo = repository.NewUtensilRepository(db)
	c.CustomizationRepo = repository.NewCustomizationRepository(db)
	c.ComboRepo = repository.NewComboRepository(db)
	c.DiscountRepo = repository.NewDiscountRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.ReplacementRepo = repository.NewReplacementRepository(db)
	c.MaintenanceLogRepo = repository.NewMaintenanceLogRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
}

func (c *Container) initServices() {
	c.NotificationService = service.NewNotificationService(c.NotificationRepo, c.QueueClient)
	c.PaymentService = service.NewPaymentService(c.PaymentRepo)
	c.DiscountService = service.NewDiscountService(c.DiscountRepo, c.OrderRepo)
	c.InventoryService = service.NewInventoryService(c.HotpotUnitRepo, c.HotpotTypeRepo, c.MaintenanceLogRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.HotpotUnitRepo,
		c.HotpotTypeRepo,
		c.IngredientRepo,
		c.UtensilRepo,
		c.CustomizationRepo,
		c.ComboRepo,
		c.DiscountRepo,
		c.PaymentRepo,
		c.PaymentService,
		c.NotificationService,
		c.Config.Rental.DepositPercent,
	)
	c.RentalService = service.NewRentalService(c.RentalRepo, c.OrderRepo, c.Config.Rental.LateFeePercent)
	c.ReplacementService = service.NewReplacementService(
		c.ReplacementRepo,
		c.HotpotUnitRepo,
		c.UserRepo,
		c.MaintenanceLogRepo,
		c.NotificationService,
	)
}
