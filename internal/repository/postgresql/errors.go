package postgresql

import (
	"errors"
	"fmt"
	"net"

	"github.com/greenlane-data/abp_ingest/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	return fmt.Errorf("failed to execute query: %w", storageError(err))
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", storageError(err))
}

// storageError tags gateway-unreachable faults with domain.ErrConnectivity
// so the pipeline can tell fatal faults from per-record write failures.
func storageError(err error) error {
	if err == nil {
		return nil
	}

	if isConnectivityFault(err) {
		return fmt.Errorf("%w: %w", domain.ErrConnectivity, err)
	}

	return err
}

func isConnectivityFault(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsConnectionException(pgErr.Code)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
