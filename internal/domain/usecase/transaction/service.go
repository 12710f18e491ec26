package transaction

import (
	"strings"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-manager/internal/domain/port/persistence"
)

// Service implements the TransactionUseCase port. It shapes caller requests
// into store queries, picking the timezone conversion that matches the kind
// tags on the supplied bounds.
type Service struct {
	repo     persistence.TransactionRepository
	resolver coreport.TimezoneResolver
	encoder  coreport.TabularEncoder
	logger   coreport.Logger
}

// NewService creates a new transaction service.
func NewService(
	repo persistence.TransactionRepository,
	resolver coreport.TimezoneResolver,
	encoder coreport.TabularEncoder,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		encoder:  encoder,
		logger:   logger,
	}
}

// resolveUserTimezone validates the raw User-Timezone header value. The
// header is resolved at the request boundary and passed down explicitly;
// this is the single place its content is checked.
func (s *Service) resolveUserTimezone(raw string) (string, error) {
	timezone := strings.TrimSpace(raw)
	if timezone == "" {
		return "", errs.ErrMissingTimezoneHeader
	}
	if !s.resolver.IsValidIANA(timezone) {
		s.logger.Warn("Rejected non-IANA timezone header", map[string]any{
			"timezone": timezone,
		})
		return "", errs.ErrInvalidTimezone
	}
	return timezone, nil
}
