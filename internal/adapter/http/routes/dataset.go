package routes

import (
	"importafacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addDatasetRoutes(rg *gin.RouterGroup, dataset *handlers.DatasetHandler, payment *handlers.PaymentHandler) {
	rg.GET("/dataset", dataset.GetDataset)
	rg.POST("/dataset", dataset.PostDataset)
	rg.POST("/payments/:invoice_id", payment.RegisterPayment)
}
