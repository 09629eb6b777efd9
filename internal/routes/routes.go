package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-builder-backend/internal/handlers"
	"invoice-builder-backend/internal/repository"
	service "invoice-builder-backend/internal/services/invoiceops"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	partyRepo := repository.NewPartyRepository(db)
	shareRepo := repository.NewShareRepository(db)

	invoiceService := service.NewInvoiceService(
		invoiceRepo,
		partyRepo,
		shareRepo,
	)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoice editing and persistence
	invoices := api.Group("/invoices")
	{
		invoices.GET("/draft", invoiceHandler.Draft)
		invoices.POST("/preview", invoiceHandler.Preview)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
	}

	// Saved contacts
	sellers := api.Group("/sellers")
	sellers.POST("", invoiceHandler.CreateSeller)
	sellers.GET("", invoiceHandler.ListSellers)
	sellers.POST("/:id/apply", invoiceHandler.ApplySeller)

	buyers := api.Group("/buyers")
	buyers.POST("", invoiceHandler.CreateBuyer)
	buyers.GET("", invoiceHandler.ListBuyers)
	buyers.POST("/:id/apply", invoiceHandler.ApplyBuyer)

	// Shareable snapshot links
	shares := api.Group("/share")
	shares.POST("", invoiceHandler.CreateShareLink)
	shares.GET("/:token", invoiceHandler.ResolveShareLink)
}
