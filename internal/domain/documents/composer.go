package documents

import (
	"context"
	"fmt"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/entity"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
)

// RawItem is an unvalidated line request from the caller.
type RawItem struct {
	ProductID  id.ID          `json:"productId"`
	Quantity   types.Quantity `json:"quantity"`
	UnitAmount types.Money    `json:"unitAmount"`
	BatchID    *id.ID         `json:"batchId,omitempty"`
	StockID    *id.ID         `json:"stockId,omitempty"`

	// Total overrides the computed line total when supplied.
	Total *types.Money `json:"total,omitempty"`
}

// ProductResolver checks product references.
type ProductResolver interface {
	Exists(ctx context.Context, productID id.ID) (bool, error)
}

// StockReader resolves stock records for line composition.
type StockReader interface {
	Get(ctx context.Context, key entity.StockKey) (*entity.StockRecord, error)
	GetByID(ctx context.Context, recordID id.ID) (*entity.StockRecord, error)
}

// Composer builds validated line items from raw requests.
// It resolves product and stock references and checks per-kind rules
// before any persistence happens.
type Composer struct {
	products ProductResolver
	stock    StockReader
}

// NewComposer creates a line-item composer.
func NewComposer(products ProductResolver, stock StockReader) *Composer {
	return &Composer{
		products: products,
		stock:    stock,
	}
}

// ComposeSale builds sale lines. Each line must reference a stock record
// holding at least the requested quantity.
func (c *Composer) ComposeSale(ctx context.Context, storeID *id.ID, items []RawItem) ([]Line, error) {
	lines := make([]Line, 0, len(items))

	for i, item := range items {
		line, err := c.baseLine(ctx, i, item)
		if err != nil {
			return nil, err
		}

		record, err := c.resolveStock(ctx, item, storeID)
		if err != nil {
			return nil, err
		}
		available := types.Quantity(0)
		if record != nil {
			available = record.Quantity
			recordID := record.ID
			line.StockID = &recordID
		}
		if available < item.Quantity {
			return nil, apperror.NewInsufficientStock(
				item.ProductID.String(), item.Quantity.Float64(), available.Float64())
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// ComposePurchase builds purchase lines. The (product, store, batch)
// stock record is created implicitly when the effect is applied, so no
// stock resolution is required here.
func (c *Composer) ComposePurchase(ctx context.Context, storeID *id.ID, items []RawItem) ([]Line, error) {
	lines := make([]Line, 0, len(items))

	for i, item := range items {
		line, err := c.baseLine(ctx, i, item)
		if err != nil {
			return nil, err
		}

		// Attach the existing record reference when one is already there.
		record, err := c.resolveStock(ctx, item, storeID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			recordID := record.ID
			line.StockID = &recordID
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// ComposeReturn builds return lines against an original document.
// Each product must appear in the original, and the cumulative returned
// quantity per product (including quantities already returned by earlier
// return documents) must not exceed what the original transacted.
func (c *Composer) ComposeReturn(ctx context.Context, original *TradeDocument, alreadyReturned map[id.ID]types.Quantity, storeID *id.ID, items []RawItem) ([]Line, error) {
	if original == nil {
		return nil, apperror.NewValidation("original document is required")
	}

	originalQty := original.LineQuantities()
	requested := make(map[id.ID]types.Quantity, len(items))
	lines := make([]Line, 0, len(items))

	for i, item := range items {
		line, err := c.baseLine(ctx, i, item)
		if err != nil {
			return nil, err
		}

		origQty, ok := originalQty[item.ProductID]
		if !ok {
			return nil, apperror.NewItemNotInOriginal(item.ProductID.String())
		}

		requested[item.ProductID] += item.Quantity
		remaining := origQty - alreadyReturned[item.ProductID]
		if requested[item.ProductID] > remaining {
			return nil, apperror.NewReturnExceedsOriginal(
				item.ProductID.String(),
				requested[item.ProductID].Float64(),
				remaining.Float64(),
			)
		}

		if line.StockID == nil {
			line.StockID = c.originalStockRef(original, item.ProductID)
		}
		if line.StockID == nil {
			record, err := c.resolveStock(ctx, item, storeID)
			if err != nil {
				return nil, err
			}
			if record != nil {
				recordID := record.ID
				line.StockID = &recordID
			}
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// baseLine validates the common parts of a raw item and computes the
// line total (recomputed unless an explicit override is supplied).
func (c *Composer) baseLine(ctx context.Context, idx int, item RawItem) (Line, error) {
	if id.IsNil(item.ProductID) {
		return Line{}, apperror.NewValidation("product is required").WithDetail("line", idx)
	}
	if !item.Quantity.IsPositive() {
		return Line{}, apperror.NewValidation("quantity must be positive").
			WithDetail("line", idx).
			WithDetail("product_id", item.ProductID.String())
	}
	if item.UnitAmount.IsNegative() {
		return Line{}, apperror.NewValidation("unit amount cannot be negative").
			WithDetail("line", idx)
	}

	exists, err := c.products.Exists(ctx, item.ProductID)
	if err != nil {
		return Line{}, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
	}
	if !exists {
		return Line{}, apperror.NewNotFound("product", item.ProductID.String())
	}

	total := ComputeLineTotal(item.Quantity, item.UnitAmount)
	if item.Total != nil {
		total = *item.Total
	}

	return Line{
		ID:         id.New(),
		ProductID:  item.ProductID,
		BatchID:    item.BatchID,
		StockID:    item.StockID,
		Quantity:   item.Quantity,
		UnitAmount: item.UnitAmount,
		Total:      total,
	}, nil
}

// resolveStock finds the stock record a raw item points at: by explicit
// reference first, by (product, store, batch) key otherwise.
// Returns nil when no record exists for the key.
func (c *Composer) resolveStock(ctx context.Context, item RawItem, storeID *id.ID) (*entity.StockRecord, error) {
	if item.StockID != nil {
		record, err := c.stock.GetByID(ctx, *item.StockID)
		if err != nil {
			return nil, err
		}
		return record, nil
	}
	return c.stock.Get(ctx, entity.NewStockKey(item.ProductID, storeID, item.BatchID))
}

// originalStockRef finds the stock reference the original document used
// for a product.
func (c *Composer) originalStockRef(original *TradeDocument, productID id.ID) *id.ID {
	for _, line := range original.Lines {
		if line.ProductID == productID && line.StockID != nil {
			return line.StockID
		}
	}
	return nil
}
