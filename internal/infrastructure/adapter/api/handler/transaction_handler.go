package handler

import (
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/transaction-manager/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const (
	// UserTimezoneHeader carries the caller's IANA timezone for
	// unspecified-kind date interpretation.
	UserTimezoneHeader = "User-Timezone"

	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName   = "transactions.xlsx"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	service      usecase.TransactionUseCase
	logger       coreport.Logger
	isProduction bool
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(service usecase.TransactionUseCase, logger coreport.Logger, isProduction bool) *TransactionHandler {
	return &TransactionHandler{
		service:      service,
		logger:       logger,
		isProduction: isProduction,
	}
}

// Upsert handles POST /api/transaction/upsert
func (h *TransactionHandler) Upsert(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			ErrorMessage: "Missing multipart file field \"file\"",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.service.Upsert(c.Request.Context(), data, fileHeader.Filename); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ExportExcel handles POST /api/transaction/export/excel
func (h *TransactionHandler) ExportExcel(c *gin.Context) {
	dateRange, err := h.bindOptionalDateRange(c)
	if err != nil {
		return
	}

	data, err := h.service.ExportExcel(c.Request.Context(), dateRange, c.GetHeader(UserTimezoneHeader))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	c.Data(http.StatusOK, excelContentType, data)
}

// GetForUserTimezone handles POST /api/transaction/get-all/for-user-timezone
func (h *TransactionHandler) GetForUserTimezone(c *gin.Context) {
	var req dto.DateRangeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	transactions, err := h.service.GetForUserTimezone(
		c.Request.Context(),
		usecase.DateRange{StartDate: req.StartDate, EndDate: req.EndDate},
		c.GetHeader(UserTimezoneHeader),
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserTimezoneResponses(transactions))
}

// GetForClientTimezone handles POST /api/transaction/get-all/for-client-timezone
func (h *TransactionHandler) GetForClientTimezone(c *gin.Context) {
	var req dto.DateRangeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	transactions, err := h.service.GetForClientTimezone(
		c.Request.Context(),
		usecase.DateRange{StartDate: req.StartDate, EndDate: req.EndDate},
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClientTimezoneResponses(transactions))
}

// GetForClientTimezoneByDate handles POST /api/transaction/get-all/for-client-timezone-by-date
func (h *TransactionHandler) GetForClientTimezoneByDate(c *gin.Context) {
	var req dto.ByDateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	transactions, err := h.service.GetForClientTimezoneByDate(
		c.Request.Context(),
		usecase.ByDate{Year: req.Year, Month: req.Month, Day: req.Day},
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewClientTimezoneResponses(transactions))
}

// bindJSON binds the request body and answers 400 on malformed input.
func (h *TransactionHandler) bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			ErrorMessage: "Invalid request format: " + err.Error(),
		})
		return false
	}
	return true
}

// bindOptionalDateRange reads an export body, treating an absent or empty
// body as "export everything".
func (h *TransactionHandler) bindOptionalDateRange(c *gin.Context) (*usecase.DateRange, error) {
	var req dto.DateRangeRequest
	err := c.ShouldBindJSON(&req)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			ErrorMessage: "Invalid request format: " + err.Error(),
		})
		return nil, err
	}
	return &usecase.DateRange{StartDate: req.StartDate, EndDate: req.EndDate}, nil
}

// respondError maps a domain error onto the response contract: field-keyed
// validation bodies for request-shape failures, errorMessage bodies for the
// rest, with a stack trace attached outside production on 500s.
func (h *TransactionHandler) respondError(c *gin.Context, err error) {
	var vErr *domainerr.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Title:            "Validation errors",
			ValidationErrors: vErr.Fields,
		})
		return
	}

	status := domainerr.HTTPStatus(err)
	body := dto.ErrorResponse{ErrorMessage: err.Error()}
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		if !h.isProduction {
			body.StackTrace = string(debug.Stack())
		}
	}
	c.JSON(status, body)
}
