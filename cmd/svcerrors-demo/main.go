// Command svcerrors-demo serves one route per error variant so the whole
// error pipeline (dispatch, logging, telemetry, rendering) can be exercised
// with curl.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/kbukum/svcerrors/auth"
	"github.com/kbukum/svcerrors/auth/jwt"
	"github.com/kbukum/svcerrors/auth/permission"
	"github.com/kbukum/svcerrors/config"
	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/logger"
	"github.com/kbukum/svcerrors/observability"
	"github.com/kbukum/svcerrors/resilience"
	"github.com/kbukum/svcerrors/server"
	"github.com/kbukum/svcerrors/server/middleware"
	"github.com/kbukum/svcerrors/validation"
)

const serviceName = "svcerrors-demo"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config.ServiceConfig
	if err := config.LoadConfig(serviceName, &cfg, config.WithEnvPrefix("DEMO_")); err != nil {
		return err
	}
	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(&cfg.Logging)
	log := logger.GetGlobalLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg.Observability)
	if err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}()

	metrics, err := observability.NewMetrics(observability.Meter(cfg.Name))
	if err != nil {
		return err
	}

	tokens, err := jwt.NewService(cfg.Auth.JWT, func() *jwt.Claims { return &jwt.Claims{} })
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware(middleware.Options{
		Logger:      log,
		Metrics:     metrics,
		HideDetails: !cfg.DetailsExposed(),
	})
	registerRoutes(srv.GinEngine(), cfg.Auth, tokens)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return srv.Stop(context.Background())
}

type orderID struct {
	ID string `uri:"id" validate:"required,uuid"`
}

type orderLine struct {
	SKU string `json:"sku" validate:"required"`
	Qty int    `json:"qty" validate:"gte=1"`
}

type createOrder struct {
	Email string      `json:"email" validate:"required,email"`
	Items []orderLine `json:"items" validate:"required,min=1,dive"`
}

var roles = permission.NewMapChecker(map[string][]string{
	"admin":  {"*:*"},
	"clerk":  {"order:read", "order:create"},
	"viewer": {"*:read"},
})

func registerRoutes(r *gin.Engine, authCfg auth.Config, tokens *jwt.Service[*jwt.Claims]) {
	r.GET("/health", func(c *gin.Context) {
		server.RespondOK(c, gin.H{"status": "up"})
	})

	// POST /login?role=admin issues a token for the given role.
	r.POST("/login", func(c *gin.Context) {
		v := validation.New()
		role := c.Query("role")
		v.Required("role", role).OneOf("role", role, []string{"admin", "clerk", "viewer"})
		if err := v.Err(errors.ContextQuery); err != nil {
			_ = c.Error(err)
			return
		}
		token, err := tokens.Generate(&jwt.Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Subject: role + "-user"},
			Roles:            []string{role},
		})
		if err != nil {
			_ = c.Error(errors.Internal("token signing failed", err))
			return
		}
		server.RespondOK(c, gin.H{"token": token})
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		var uri orderID
		if err := server.Bind(c, errors.ContextPath, &uri); err != nil {
			_ = c.Error(err)
			return
		}
		server.RespondWithError(c, errors.NotFound("Order"))
	})

	r.POST("/orders", func(c *gin.Context) {
		var body createOrder
		if err := server.Bind(c, errors.ContextBody, &body); err != nil {
			_ = c.Error(err)
			return
		}
		for _, line := range body.Items {
			if line.Qty > 100 {
				server.RespondWithError(c, errors.UnprocessableEntity("Orders are limited to 100 units per line"))
				return
			}
		}
		server.RespondCreated(c, body)
	})

	r.GET("/boom", func(c *gin.Context) {
		panic("demo panic")
	})

	r.GET("/fail", func(c *gin.Context) {
		cfg := resilience.DefaultRetryConfig()
		cfg.InitialBackoff = 20 * time.Millisecond
		cfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
			logger.Debug("retrying inventory", map[string]interface{}{
				"attempt": attempt, "backoff": backoff.String(), logger.FieldError: err.Error(),
			})
		}
		err := resilience.RetryFunc(c.Request.Context(), cfg, func() error {
			return errors.Internal("inventory unavailable", fmt.Errorf("dial inventory: %w", syscall.ECONNREFUSED))
		})
		_ = c.Error(fmt.Errorf("inventory: %w", err))
	})

	admin := r.Group("/admin")
	if authCfg.Enabled {
		admin.Use(middleware.Auth(middleware.AuthConfig{
			Validator: auth.TokenValidatorFunc(tokens.ValidatorFunc()),
			SkipPaths: authCfg.SkipPaths,
		}))
	}
	admin.DELETE("/orders/:id", middleware.RequirePermission(roles, "order:delete"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}
