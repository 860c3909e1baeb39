package routes

import (
	"log"
	_ "joalheria_xpto/docs" // This will be auto-generated
	"joalheria_xpto/internal/adapter/cache"
	"joalheria_xpto/internal/adapter/http/handlers"
	"joalheria_xpto/internal/adapter/notification"
	repository2 "joalheria_xpto/internal/adapter/persistence/repository"
	cache2 "joalheria_xpto/internal/infrastructure/cache"
	"joalheria_xpto/internal/infrastructure/database"
	"joalheria_xpto/internal/infrastructure/payments"
	"joalheria_xpto/internal/observability/metrics"
	"joalheria_xpto/internal/usecase"
	"joalheria_xpto/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	reg := metrics.NewRegistry()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	serviceTypeRepo := repository2.NewServiceTypeDynamoRepository(ddb)
	pricingRuleRepo := repository2.NewPricingRuleDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)
	statusLogRepo := repository2.NewStatusLogDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	var rateRepo interfaces.IRateRepository = repository2.NewRateDynamoRepository(ddb)
	if os.Getenv("REDIS_ADDR") != "" {
		rateRepo = cache.NewCachedRateRepository(rateRepo, cache.NewRedisKV(cache2.ConnectRedis()))
	} else {
		log.Printf("REDIS_ADDR not set; rate lookups hit DynamoDB directly")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pricingUseCase := usecase.NewPricingUseCase(pricingRuleRepo, rateRepo, serviceTypeRepo)
	quoteIDUseCase := usecase.NewQuoteIDUseCase(sequenceRepo, quoteRepo, reg)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, serviceTypeRepo, statusLogRepo, quoteIDUseCase, pricingUseCase, reg)
	workflowUseCase := usecase.NewWorkflowUseCase(quoteRepo, statusLogRepo, notification.NewLogNotifier(), reg)
	appraisalUseCase := usecase.NewAppraisalUseCase(reg)
	depositUseCase := usecase.NewDepositUseCase(depositRepo, quoteRepo, paymentGateway, reg)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	appraisalHandler := handlers.NewAppraisalHandler(appraisalUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(reg.Handler()))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, workflowHandler, depositHandler)
	addPricingRoutes(v1, pricingHandler, appraisalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
