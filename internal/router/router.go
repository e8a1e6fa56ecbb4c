package router

import (
	"github.com/gin-gonic/gin"

	"airquote/internal/handler"
	"airquote/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	taxonomyH *handler.TaxonomyHandler,
	catalogH *handler.CatalogHandler,
	quoteH *handler.QuoteHandler,
	sheetH *handler.SheetHandler,
	preferenceH *handler.PreferenceHandler,
	statsH *handler.StatsHandler,
	toolsH *handler.ToolsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Taxonomy options
	taxonomy := v1.Group("/taxonomy")
	taxonomy.GET("", taxonomyH.ListAll)
	taxonomy.POST("", taxonomyH.Create)
	taxonomy.GET("/:category", taxonomyH.ListByCategory)
	taxonomy.PUT("/:category/:id", taxonomyH.Update)
	taxonomy.DELETE("/:category/:id", taxonomyH.Delete)

	// Product catalog
	products := v1.Group("/products")
	products.POST("", catalogH.Create)
	products.GET("", catalogH.List)
	products.GET("/compare", catalogH.Compare)
	products.GET("/export/csv", catalogH.ExportCSV)
	products.GET("/export/xlsx", catalogH.ExportWorkbook)
	products.POST("/import", catalogH.ImportWorkbook)
	products.GET("/:id", catalogH.GetByID)
	products.PUT("/:id", catalogH.Update)
	products.PUT("/:id/pin", catalogH.SetPinned)
	products.DELETE("/:id", catalogH.Delete)

	// Quotation sessions
	quotes := v1.Group("/quotes")
	quotes.POST("", quoteH.Create)
	quotes.GET("/templates", quoteH.Templates)
	quotes.GET("/:id", quoteH.Get)
	quotes.PATCH("/:id", quoteH.UpdateDetails)
	quotes.DELETE("/:id", quoteH.Delete)
	quotes.PUT("/:id/catalog-lines/:productID", quoteH.SetCatalogLine)
	quotes.POST("/:id/custom-lines", quoteH.AddCustomLine)
	quotes.PUT("/:id/custom-lines/:index", quoteH.UpdateCustomLine)
	quotes.DELETE("/:id/custom-lines/:index", quoteH.RemoveCustomLine)
	quotes.PUT("/:id/custom-lines/:index/template", quoteH.ApplyTemplate)
	quotes.PUT("/:id/focus", quoteH.Focus)
	quotes.PUT("/:id/title", quoteH.TitleFocus)
	quotes.GET("/:id/export/pdf", quoteH.ExportPDF)

	// Sheet sync
	v1.POST("/sheet/sync", sheetH.Sync)

	// Preferences
	preferences := v1.Group("/preferences")
	preferences.GET("", preferenceH.All)
	preferences.GET("/:key", preferenceH.Get)
	preferences.PUT("/:key", preferenceH.Set)

	// Dashboard stats
	v1.GET("/stats", statsH.CatalogStats)

	// Sizing and calculator tools
	tools := v1.Group("/tools")
	tools.POST("/capacity", toolsH.EstimateCapacity)
	tools.POST("/calculate", toolsH.Calculate)

	return r
}
