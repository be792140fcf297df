package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kursusin/affiliate-backend/internal/domain"
)

// convertErr normalizes an error for the repository layer. It prepends a
// formatted context message and maps the underlying cause onto a domain error:
//   - pgx.ErrNoRows becomes domain.ErrRecordNotFound;
//   - postgres unique violations become domain.ErrDuplicateKey;
//   - anything else becomes domain.ErrUnknown with the original message kept.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			errType = domain.ErrDuplicateKey
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
