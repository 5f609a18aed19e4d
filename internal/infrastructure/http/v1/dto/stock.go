package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"stockledger/internal/core/entity"
)

// StockRecordResponse represents a stock balance in API responses.
type StockRecordResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	StoreID   *string         `json:"storeId,omitempty"`
	BatchID   *string         `json:"batchId,omitempty"`
	Quantity  float64         `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unitCost"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromStockRecord converts a domain stock record.
func FromStockRecord(r entity.StockRecord) *StockRecordResponse {
	return &StockRecordResponse{
		ID:        r.ID.String(),
		ProductID: r.ProductID.String(),
		StoreID:   formatOptionalID(r.StoreID),
		BatchID:   formatOptionalID(r.BatchID),
		Quantity:  r.Quantity.Float64(),
		UnitCost:  r.UnitCost,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromStockRecords converts a slice of domain stock records.
func FromStockRecords(records []entity.StockRecord) []*StockRecordResponse {
	out := make([]*StockRecordResponse, len(records))
	for i := range records {
		out[i] = FromStockRecord(records[i])
	}
	return out
}

// ProductAvailabilityResponse reports the total quantity on hand for a
// product across all stores and batches.
type ProductAvailabilityResponse struct {
	ProductID string  `json:"productId"`
	Available float64 `json:"available"`
}

// StockListResponse is a list of stock records.
type StockListResponse struct {
	Items []*StockRecordResponse `json:"items"`
	Count int                    `json:"count"`
}
