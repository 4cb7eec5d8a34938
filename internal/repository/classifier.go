package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/vibe-gaming/geo-api/internal/domain"
	"github.com/vibe-gaming/geo-api/internal/repository/shape"
)

// constraintErrors is looked up first, by the constraint name postgres reports.
var constraintErrors = map[string]error{
	"country_country_name_key":     domain.ErrCountryNameAlreadyExists,
	"country_country_code_key":     domain.ErrCountryCodeAlreadyExists,
	"city_country_id_fkey":         domain.ErrCountryNotFound,
	"city_city_name_key":           domain.ErrCityNameAlreadyExists,
	"city_city_code_key":           domain.ErrDuplicateCityCode,
	"unique_country_and_city_code": domain.ErrDuplicateCityCode,
}

// codeErrors is the SQLSTATE fallback.
var codeErrors = map[string]error{
	pgerrcode.UniqueViolation:     domain.ErrUniqueViolation,
	pgerrcode.ForeignKeyViolation: domain.ErrForeignKeyViolation,
	pgerrcode.NotNullViolation:    domain.ErrNotNullViolation,
}

// Classifier maps store failures to domain errors. The returned error wraps both
// the domain error and the original failure.
type Classifier struct {
	logger      *zap.Logger
	constraints map[string]error
	codes       map[string]error
}

func NewClassifier(logger *zap.Logger) *Classifier {
	return &Classifier{
		logger:      logger,
		constraints: constraintErrors,
		codes:       codeErrors,
	}
}

func (c *Classifier) Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, shape.ErrEmptyResult) || shape.IsMismatch(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		c.logger.Error("store operation failed", zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrDriver, err)
	}

	fields := []zap.Field{
		zap.String("code", pgErr.Code),
		zap.String("constraint", pgErr.ConstraintName),
		zap.String("table", pgErr.TableName),
		zap.String("column", pgErr.ColumnName),
		zap.String("detail", pgErr.Detail),
		zap.String("message", pgErr.Message),
	}

	if kind, ok := c.constraints[pgErr.ConstraintName]; ok {
		c.logger.Warn("store constraint violated", append(fields, zap.NamedError("kind", kind))...)
		return fmt.Errorf("%w: %w", kind, err)
	}
	if kind, ok := c.codes[pgErr.Code]; ok {
		c.logger.Warn("store constraint violated", append(fields, zap.NamedError("kind", kind))...)
		return fmt.Errorf("%w: %w", kind, err)
	}

	c.logger.Error("store operation failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%w: %w", domain.ErrDriver, err)
}
