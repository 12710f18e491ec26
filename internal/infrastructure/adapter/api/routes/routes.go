package routes

import (
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transaction-manager/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, transactionHandler *handler.TransactionHandler) {
	api := router.Group("/api")

	transactionRoutes := api.Group("/transaction")
	{
		// POST /api/transaction/upsert
		transactionRoutes.POST("/upsert", transactionHandler.Upsert)

		// POST /api/transaction/export/excel
		transactionRoutes.POST("/export/excel", transactionHandler.ExportExcel)

		getAll := transactionRoutes.Group("/get-all")
		{
			getAll.POST("/for-user-timezone", transactionHandler.GetForUserTimezone)
			getAll.POST("/for-client-timezone", transactionHandler.GetForClientTimezone)
			getAll.POST("/for-client-timezone-by-date", transactionHandler.GetForClientTimezoneByDate)
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, isProduction bool) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger, isProduction))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
