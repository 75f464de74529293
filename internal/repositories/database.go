package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aurumlabs/gold-commerce-platform/internal/config"
	"github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

// Sentinel errors surfaced by the conditional updates inside the order
// transaction; the service layer maps them onto the API error taxonomy.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCouponExhausted   = errors.New("coupon usage limit exhausted")
)

type Repository struct {
	DB *sql.DB

	User    UserRepository
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
	Coupon  CouponRepository
	Rate    RateRepository
	Token   TokenRepository
	Address AddressRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure the DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:      db,
		User:    NewUserRepo(db),
		Product: NewProductRepo(db),
		Cart:    NewCartRepo(db),
		Order:   NewOrderRepo(db),
		Coupon:  NewCouponRepo(db),
		Rate:    NewRateRepo(db),
		Token:   NewTokenRepo(db),
		Address: NewAddressRepo(db),
	}, nil
}

func (p *Repository) Close() error {
	return p.DB.Close()
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}
