package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/barflow/internal/client"
	clientdomain "github.com/smallbiznis/barflow/internal/client/domain"
	"github.com/smallbiznis/barflow/internal/config"
	"github.com/smallbiznis/barflow/internal/drink"
	drinkdomain "github.com/smallbiznis/barflow/internal/drink/domain"
	"github.com/smallbiznis/barflow/internal/event"
	eventdomain "github.com/smallbiznis/barflow/internal/event/domain"
	"github.com/smallbiznis/barflow/internal/ingredient"
	ingredientdomain "github.com/smallbiznis/barflow/internal/ingredient/domain"
	"github.com/smallbiznis/barflow/internal/observability"
	obsmiddleware "github.com/smallbiznis/barflow/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/barflow/internal/observability/metrics"
	obstracing "github.com/smallbiznis/barflow/internal/observability/tracing"
	"github.com/smallbiznis/barflow/internal/providers/pdf"
	"github.com/smallbiznis/barflow/internal/purchaselist"
	purchaselistdomain "github.com/smallbiznis/barflow/internal/purchaselist/domain"
	"github.com/smallbiznis/barflow/internal/recipe"
	recipedomain "github.com/smallbiznis/barflow/internal/recipe/domain"
	"github.com/smallbiznis/barflow/internal/report"
	reportdomain "github.com/smallbiznis/barflow/internal/report/domain"
	"github.com/smallbiznis/barflow/internal/units"
	unitsdomain "github.com/smallbiznis/barflow/internal/units/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	client.Module,
	ingredient.Module,
	drink.Module,
	recipe.Module,
	event.Module,
	purchaselist.Module,
	units.Module,
	report.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	genID           *snowflake.Node
	clientSvc       clientdomain.Service
	ingredientSvc   ingredientdomain.Service
	drinkSvc        drinkdomain.Service
	recipeSvc       recipedomain.Service
	eventSvc        eventdomain.Service
	purchaseListSvc purchaselistdomain.Service
	unitsSvc        unitsdomain.Service
	reportSvc       reportdomain.Service
	pdfProvider     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	GenID           *snowflake.Node
	ClientSvc       clientdomain.Service
	IngredientSvc   ingredientdomain.Service
	DrinkSvc        drinkdomain.Service
	RecipeSvc       recipedomain.Service
	EventSvc        eventdomain.Service
	PurchaseListSvc purchaselistdomain.Service
	UnitsSvc        unitsdomain.Service
	ReportSvc       reportdomain.Service
	PDFProvider     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		genID:           p.GenID,
		clientSvc:       p.ClientSvc,
		ingredientSvc:   p.IngredientSvc,
		drinkSvc:        p.DrinkSvc,
		recipeSvc:       p.RecipeSvc,
		eventSvc:        p.EventSvc,
		purchaseListSvc: p.PurchaseListSvc,
		unitsSvc:        p.UnitsSvc,
		reportSvc:       p.ReportSvc,
		pdfProvider:     p.PDFProvider,
	}

	s.registerAdminRoutes()
	return s
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin")
	admin.Use(AccountContext(s.cfg))

	admin.GET("/clients", s.ListClients)
	admin.POST("/clients", s.CreateClient)
	admin.GET("/clients/:id", s.GetClient)
	admin.PUT("/clients/:id", s.UpdateClient)
	admin.DELETE("/clients/:id", s.DeleteClient)

	admin.GET("/ingredients", s.ListIngredients)
	admin.POST("/ingredients", s.CreateIngredient)
	admin.GET("/ingredients/:id", s.GetIngredient)
	admin.PUT("/ingredients/:id", s.UpdateIngredient)
	admin.DELETE("/ingredients/:id", s.DeleteIngredient)

	admin.GET("/drinks", s.ListDrinks)
	admin.POST("/drinks", s.CreateDrink)
	admin.GET("/drinks/:id", s.GetDrink)
	admin.PUT("/drinks/:id", s.UpdateDrink)
	admin.DELETE("/drinks/:id", s.DeleteDrink)

	admin.POST("/drinks/:id/recipe", s.AddRecipeLine)
	admin.PUT("/drinks/:id/recipe/:ingredientId", s.UpdateRecipeLine)
	admin.DELETE("/drinks/:id/recipe/:ingredientId", s.RemoveRecipeLine)

	admin.GET("/events", s.ListEvents)
	admin.POST("/events", s.CreateEvent)
	admin.GET("/events/:id", s.GetEvent)
	admin.PUT("/events/:id", s.UpdateEvent)
	admin.DELETE("/events/:id", s.DeleteEvent)

	admin.POST("/events/:id/served-drinks", s.AddServedDrink)
	admin.PUT("/events/:id/served-drinks/:lineId", s.UpdateServedDrink)
	admin.DELETE("/events/:id/served-drinks/:lineId", s.RemoveServedDrink)

	admin.POST("/events/:id/additional-costs", s.AddAdditionalCost)
	admin.PUT("/events/:id/additional-costs/:costId", s.UpdateAdditionalCost)
	admin.DELETE("/events/:id/additional-costs/:costId", s.RemoveAdditionalCost)

	admin.GET("/purchase-lists", s.ListPurchaseLists)
	admin.POST("/purchase-lists", s.GeneratePurchaseList)
	admin.POST("/purchase-lists/generate", s.GeneratePurchaseList)
	admin.GET("/purchase-lists/:id", s.GetPurchaseList)
	admin.PUT("/purchase-lists/:id", s.UpdatePurchaseList)
	admin.DELETE("/purchase-lists/:id", s.DeletePurchaseList)
	admin.GET("/purchase-lists/:id/render", s.RenderPurchaseList)
	admin.POST("/purchase-lists/:id/items", s.AddPurchaseListItem)
	admin.PUT("/purchase-lists/:id/items/:itemId", s.UpdatePurchaseListItem)
	admin.DELETE("/purchase-lists/:id/items/:itemId", s.RemovePurchaseListItem)

	admin.GET("/units/conversions", s.ListConversionRules)
	admin.POST("/units/conversions", s.CreateConversionRule)

	admin.GET("/reports/purchase-list", s.PurchaseListReport)
	admin.GET("/reports/monthly-events", s.MonthlyEventsReport)
	admin.GET("/reports/profit-summary", s.ProfitSummaryReport)
	admin.GET("/reports/drink-cost-distribution", s.DrinkCostDistributionReport)
}
