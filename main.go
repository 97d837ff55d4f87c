package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"golang.org/x/sync/errgroup"

	"restaurant-api/config"
	"restaurant-api/handlers"
	"restaurant-api/notifications"
	"restaurant-api/payments"
	"restaurant-api/routes"
)

func main() {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.InitDB()

	// One hub for the whole process, passed down by reference.
	hub := notifications.NewHub()
	notifier := notifications.NewService(hub)

	var processor payments.Processor
	if token := config.MPAccessToken(); token != "" {
		p, err := payments.NewMercadoPago(token)
		if err != nil {
			rlog.Criticalf("configuring payment processor: %v", err)
			os.Exit(1)
		}
		processor = p
	} else {
		rlog.Warn("MP_ACCESS_TOKEN not set, payment processing disabled")
	}

	r := gin.Default()
	r.Use(corsMiddleware(config.FrontendURL()))

	routes.SetupRoutes(r, hub,
		handlers.NewOrderHandler(notifier),
		handlers.NewPaymentHandler(processor, notifier),
	)

	srv := &http.Server{
		Addr:    ":" + config.Port(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rlog.Infof("server listening on http://localhost:%s", config.Port())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		rlog.Criticalf("server error: %v", err)
		os.Exit(1)
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
