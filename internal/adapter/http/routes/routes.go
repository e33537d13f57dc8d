package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "importafacil/docs" // generated swagger spec
	"importafacil/internal/adapter/http/handlers"
	"importafacil/internal/adapter/persistence/tabstore"
	"importafacil/internal/infrastructure/database"
	"importafacil/internal/infrastructure/payments"
	"importafacil/internal/usecase"
	"importafacil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PORT = 8080

// Run will start the document service.
func Run() {
	router := NewRouter(buildDatasetUseCase(), buildPaymentGateway())

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter assembles the gin engine; tests drive it directly through
// httptest without binding a port.
func NewRouter(datasetUC usecase.IDatasetUseCase, gateway interfaces.IPaymentGateway) *gin.Engine {
	router := gin.Default()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	datasetHandler := handlers.NewDatasetHandler(datasetUC)
	paymentHandler := handlers.NewPaymentHandler(usecase.NewPaymentUseCase(datasetUC, gateway))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDatasetRoutes(v1, datasetHandler, paymentHandler)
	return router
}

// buildDatasetUseCase selects the tab store from TABSTORE_DRIVER:
// memory (default), dynamodb or sheets.
func buildDatasetUseCase() *usecase.DatasetUseCase {
	driver := os.Getenv("TABSTORE_DRIVER")
	var tabs interfaces.ITabStore
	switch driver {
	case "dynamodb":
		tabs = tabstore.NewDynamoDB(database.NewDynamoDBClient())
	case "sheets":
		sheets, err := tabstore.NewSheetsFromEnv(context.Background())
		if err != nil {
			log.Fatalf("failed to create sheets tab store: %v", err)
		}
		tabs = sheets
	default:
		log.Printf("[routes] using in-memory tab store (TABSTORE_DRIVER=%q)", driver)
		tabs = tabstore.NewMemory()
	}
	return usecase.NewDatasetUseCase(tabs)
}

func buildPaymentGateway() interfaces.IPaymentGateway {
	gateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}
