package transaction

import (
	"context"

	"github.com/amirhossein-jamali/transaction-manager/internal/domain/csvparse"
)

// Upsert parses a CSV upload into transactions and writes the whole batch to
// the store. Parsing is fail-fast, so a malformed row aborts the request
// before anything is persisted.
func (s *Service) Upsert(ctx context.Context, file []byte, filename string) error {
	mapper := csvparse.NewTransactionMapper(s.resolver)

	transactions, err := csvparse.Parse(file, filename, mapper)
	if err != nil {
		s.logger.Warn("CSV ingestion failed", map[string]any{
			"filename": filename,
			"error":    err.Error(),
		})
		return err
	}

	if err := s.repo.Upsert(ctx, transactions); err != nil {
		s.logger.Error("Failed to upsert transactions", map[string]any{
			"filename": filename,
			"count":    len(transactions),
			"error":    err.Error(),
		})
		return err
	}

	s.logger.Info("Transactions upserted", map[string]any{
		"filename": filename,
		"count":    len(transactions),
	})
	return nil
}
