package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/checkout/internal/domain/errors"
	"github.com/polkiloo/checkout/internal/domain/model"
	"github.com/polkiloo/checkout/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// DefaultDiscounts are inserted on first start and never overwritten.
var DefaultDiscounts = []model.Discount{
	{MembershipLevel: "Basic", Percentage: 0},
	{MembershipLevel: "Premium", Percentage: 10},
	{MembershipLevel: "VIP", Percentage: 20},
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type discountRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Discounts returns the membership discount repository.
func (s *Storage) Discounts() repository.DiscountRepository {
	return &discountRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	const createTable = `CREATE TABLE IF NOT EXISTS discounts (
            membership_level TEXT PRIMARY KEY,
            discount_percentage DOUBLE PRECISION NOT NULL
        )`
	if _, err := s.pool.Exec(ctx, createTable); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	const seed = `INSERT INTO discounts (membership_level, discount_percentage) VALUES ($1, $2)
        ON CONFLICT (membership_level) DO NOTHING`
	err := s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, d := range DefaultDiscounts {
			if _, err := tx.Exec(ctx, seed, d.MembershipLevel, d.Percentage); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed discounts: %w", err)
	}
	s.logger.Debug("discount schema ready", slog.Int("default_tiers", len(DefaultDiscounts)))

	return nil
}

// --- DiscountRepository implementation ---

func (r *discountRepository) Get(ctx context.Context, level string) (*model.Discount, error) {
	const query = `SELECT membership_level, discount_percentage FROM discounts WHERE membership_level = $1`
	var d model.Discount
	err := r.storage.pool.QueryRow(ctx, query, level).Scan(&d.MembershipLevel, &d.Percentage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *discountRepository) List(ctx context.Context) ([]model.Discount, error) {
	const query = `SELECT membership_level, discount_percentage FROM discounts ORDER BY discount_percentage, membership_level`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Discount
	for rows.Next() {
		var d model.Discount
		if err := rows.Scan(&d.MembershipLevel, &d.Percentage); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
