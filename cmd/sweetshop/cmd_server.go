package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/sweetshop/app/controllers"
	"github.com/shashiranjanraj/sweetshop/app/models"
	"github.com/shashiranjanraj/sweetshop/app/repositories"
	"github.com/shashiranjanraj/sweetshop/app/routes"
	"github.com/shashiranjanraj/sweetshop/app/services"
	"github.com/shashiranjanraj/sweetshop/config"
	"github.com/shashiranjanraj/sweetshop/internal/server"
	"github.com/shashiranjanraj/sweetshop/pkg/cache"
	"github.com/shashiranjanraj/sweetshop/pkg/database"
	"github.com/shashiranjanraj/sweetshop/pkg/logger"
	"github.com/shashiranjanraj/sweetshop/pkg/metrics"
	"github.com/shashiranjanraj/sweetshop/pkg/middleware"
	"github.com/shashiranjanraj/sweetshop/pkg/reqid"
	"github.com/shashiranjanraj/sweetshop/pkg/router"
	"gorm.io/gorm"
)

// sweetshop serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		mongoLogs, err := logger.EnableMongo(config.LogMongoURI(), config.LogMongoDB(), config.LogMongoColl())
		if err != nil {
			logger.Warn("mongo log shipping disabled", "error", err)
		}
		if mongoLogs != nil {
			defer mongoLogs.Close()
		}

		db, err := database.Open()
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := db.AutoMigrate(
			&models.User{}, &models.Sweet{}, &models.CartItem{}, &models.Order{},
		); err != nil {
			return err
		}

		redisClient, err := cache.Connect()
		if err != nil {
			logger.Warn("redis unavailable, rate limiting falls back to process memory", "error", err)
		}
		defer redisClient.Close()

		r := buildRouter(db, redisClient)
		return server.New(":"+config.AppPort(), r.Handler()).Run()
	},
}

// buildRouter wires repositories, services, controllers and the
// middleware stack onto a fresh router.
func buildRouter(db *gorm.DB, redisClient *cache.Client) *router.Router {
	users := repositories.NewUserRepository(db)
	sweets := repositories.NewSweetRepository(db)
	carts := repositories.NewCartRepository(db)
	orders := repositories.NewOrderRepository(db)

	authSvc := services.NewAuthService(users)
	sweetSvc := services.NewSweetService(sweets)
	inventorySvc := services.NewInventoryService(sweets)
	cartSvc := services.NewCartService(carts, sweets)
	orderSvc := services.NewOrderService(orders, users)

	perMin, err := strconv.Atoi(config.Get("RATE_LIMIT_PER_MIN", "200"))
	if err != nil || perMin <= 0 {
		perMin = 200
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(redisClient, perMin, time.Minute),
	)

	routes.Register(r, routes.Controllers{
		Auth:  controllers.NewAuthController(authSvc),
		Sweet: controllers.NewSweetController(sweetSvc, inventorySvc, orderSvc),
		Cart:  controllers.NewCartController(cartSvc),
		Order: controllers.NewOrderController(orderSvc),
	})

	return r
}

// sweetshop routes — print all registered routes.
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.Register(r, routes.Controllers{
			Auth:  controllers.NewAuthController(nil),
			Sweet: controllers.NewSweetController(nil, nil, nil),
			Cart:  controllers.NewCartController(nil),
			Order: controllers.NewOrderController(nil),
		})

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
