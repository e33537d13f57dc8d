package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	response "importafacil/internal/adapter/http/dto/response"
	"importafacil/internal/domain/entities"
	"importafacil/internal/usecase"
	"importafacil/pkg"
)

var errInvalidDatasetPayload = pkg.NewDomainErrorSimple("INVALID_DATASET_INPUT", "Invalid dataset payload", http.StatusBadRequest)

// DatasetHandler serves the single webhook endpoint of the document
// service: GET returns the whole dataset, POST overwrites it.
type DatasetHandler struct {
	usecase usecase.IDatasetUseCase
}

func NewDatasetHandler(uc usecase.IDatasetUseCase) *DatasetHandler {
	return &DatasetHandler{usecase: uc}
}

// GetDataset returns every collection plus settings in one envelope.
func (h *DatasetHandler) GetDataset(c *gin.Context) {
	ds, err := h.usecase.Fetch(c.Request.Context())
	if err != nil {
		log.Printf("[dataset][handler] fetch failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("DATASET_READ_FAILED", "Failed to read dataset", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, ds)
}

// PostDataset overwrites the whole dataset. Clients push fire-and-forget,
// so the response is a best-effort success envelope they may never read.
func (h *DatasetHandler) PostDataset(c *gin.Context) {
	var ds entities.Dataset
	if err := c.ShouldBindJSON(&ds); err != nil {
		log.Printf("[dataset][handler] invalid payload err=%v", err)
		c.JSON(errInvalidDatasetPayload.HTTPStatus, errInvalidDatasetPayload.ToHTTPError())
		return
	}

	if err := h.usecase.Overwrite(c.Request.Context(), ds); err != nil {
		log.Printf("[dataset][handler] overwrite failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("DATASET_WRITE_FAILED", "Failed to write dataset", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WriteOK())
}
