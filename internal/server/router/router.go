package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BeeeliB/waistless-app/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(ledger *handlers.LedgerHandler, recipe *handlers.RecipeHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/roommates", ledger.ListRoommates)
	r.POST("/roommates", ledger.AddRoommate)

	r.GET("/inventory", ledger.ListInventory)
	r.POST("/inventory/add", ledger.AddItem)
	r.POST("/inventory/remove", ledger.RemoveItem)
	r.GET("/expenses", ledger.ListExpenses)
	r.GET("/people/:name/purchases", ledger.ListPurchases)
	r.GET("/people/:name/consumption", ledger.ListConsumption)

	r.POST("/recipes/suggest", recipe.Suggest)
	r.POST("/recipes/recommend", recipe.Recommend)
	r.POST("/recipes/rate", recipe.Rate)
	r.GET("/recipes/history", recipe.History)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
