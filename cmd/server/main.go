package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/leon37/FinLedger/internal/api"
	"github.com/leon37/FinLedger/internal/api/controller"
	"github.com/leon37/FinLedger/internal/api/middleware"
	"github.com/leon37/FinLedger/internal/config"
	"github.com/leon37/FinLedger/internal/events"
	"github.com/leon37/FinLedger/internal/infrastructure/database"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. 初始化 Logger
	// JSON 格式输出，方便采集端解析
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// .env 不存在不算错误，只是本地开发的便利入口
	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	slog.Info("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表

	var publisher events.Publisher = events.NoopPublisher{}
	if conf.AMQP.URL != "" {
		amqpPub, err := events.NewAMQPPublisher(conf.AMQP.URL, conf.AMQP.Queue)
		if err != nil {
			log.Fatalf("无法连接 AMQP: %v", err)
		}
		defer amqpPub.Close()
		publisher = amqpPub
		slog.Info("事件发布已开启", "queue", conf.AMQP.Queue)
	}

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)
	paymentMethodRepo := repository.NewPaymentMethodRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	productRepo := repository.NewFinancialProductRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	ctrls := api.Controllers{
		Auth:             controller.NewAuthController(service.NewAuthService(userRepo)),
		Category:         controller.NewCategoryController(service.NewCategoryService(categoryRepo)),
		Tag:              controller.NewTagController(service.NewTagService(tagRepo)),
		PaymentMethod:    controller.NewPaymentMethodController(service.NewPaymentMethodService(paymentMethodRepo)),
		Expense:          controller.NewExpenseController(service.NewExpenseService(expenseRepo, categoryRepo, paymentMethodRepo, tagRepo, publisher)),
		Income:           controller.NewIncomeController(service.NewIncomeService(incomeRepo, categoryRepo, tagRepo, publisher)),
		Investment:       controller.NewInvestmentController(service.NewInvestmentService(investmentRepo)),
		FinancialProduct: controller.NewFinancialProductController(service.NewFinancialProductService(productRepo)),
		Debt:             controller.NewDebtController(service.NewDebtService(debtRepo)),
		Budget:           controller.NewBudgetController(service.NewBudgetService(budgetRepo, categoryRepo, expenseRepo)),
	}

	// 4. Server Start
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLog())
	r.Use(middleware.CORS())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}))

	api.RegisterRoutes(r, ctrls, userRepo)

	slog.Info("FinLedger 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
