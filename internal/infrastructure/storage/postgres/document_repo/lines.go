package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockledger/internal/core/id"
	"stockledger/internal/domain/documents"
	"stockledger/internal/infrastructure/storage/postgres"
)

var lineColumns = []string{
	"id", "document_id", "line_no", "product_id", "stock_id", "batch_id",
	"quantity", "unit_amount", "total",
}

// lineStore handles the line table shared in shape by all trade documents.
// Lines are replaced wholesale on save: delete existing, COPY new ones.
type lineStore struct {
	tm       *postgres.TxManager
	inserter *postgres.BatchInserter
	table    string
}

func newLineStore(txManager *postgres.TxManager, tableName string) *lineStore {
	return &lineStore{
		tm:       txManager,
		inserter: postgres.NewBatchInserter(txManager),
		table:    tableName,
	}
}

// GetLines retrieves lines for a document ordered by line number.
func (s *lineStore) GetLines(ctx context.Context, docID id.ID) ([]documents.Line, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select(lineColumns...).
		From(s.table).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []documents.Line
	querier := s.tm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces the lines of a document. Requires transaction context.
func (s *lineStore) SaveLines(ctx context.Context, docID id.ID, lines []documents.Line) error {
	querier := s.tm.GetQuerier(ctx)

	deleteSQL := "DELETE FROM " + s.table + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{
			line.ID, docID, line.LineNo, line.ProductID, line.StockID, line.BatchID,
			line.Quantity, line.UnitAmount, line.Total,
		})
	}

	if _, err := s.inserter.CopyFromSlice(ctx, s.table, lineColumns, rows); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}
