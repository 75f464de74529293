package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aurumlabs/gold-commerce-platform/internal/config"
	stripeClient "github.com/aurumlabs/gold-commerce-platform/pkg/stripe"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

type Endpoints struct {
	DB           *sql.DB
	RedisClient  *redis.Client
	StripeClient stripeClient.Client
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
	}

	// Stripe is optional in local setups; only probe it when configured.
	if endpoints.StripeClient != nil {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check: func(ctx context.Context) error {
				params := &stripe.BalanceParams{
					Params: stripe.Params{
						Context: ctx,
					},
				}
				if _, err := balance.Get(params); err != nil {
					return fmt.Errorf("failed to connect to stripe: %w", err)
				}

				return nil
			},
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "gold-commerce-platform",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
