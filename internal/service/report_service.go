package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/auth"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

// StockLevel is a per-item projection inside the report.
type StockLevel struct {
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ChangeRecord is a change-history projection inside the report.
type ChangeRecord struct {
	Date     time.Time        `json:"date"`
	Item     string           `json:"item"`
	Type     model.ChangeType `json:"type"`
	Quantity int              `json:"quantity"`
	From     int              `json:"from"`
	To       int              `json:"to"`
	Reason   string           `json:"reason"`
}

// Report is the read-only inventory snapshot for one user.
type Report struct {
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	TotalItemsInStock   int             `json:"total_items_in_stock"`
	LowStockItems       []string        `json:"low_stock_items"`
	StockLevels         []StockLevel    `json:"stock_levels"`
	ChangeHistory       []ChangeRecord  `json:"change_history"`
}

// ReportService aggregates a user's inventory state. Reads the latest
// committed rows on every call; nothing is cached.
type ReportService interface {
	BuildReport(ctx context.Context, principal *auth.Principal) (*Report, error)
}

type reportService struct {
	store *repository.Store
}

// NewReportService creates a new report service.
func NewReportService(store *repository.Store) ReportService {
	return &reportService{store: store}
}

// BuildReport aggregates the caller's items and change history.
func (s *reportService) BuildReport(ctx context.Context, principal *auth.Principal) (*Report, error) {
	items, err := s.store.Items.ListAllByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	changes, err := s.store.Changes.ListAllByOwner(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}

	report := &Report{
		TotalInventoryValue: decimal.Zero,
		TotalItemsInStock:   len(items),
		LowStockItems:       []string{},
		StockLevels:         make([]StockLevel, 0, len(items)),
		ChangeHistory:       make([]ChangeRecord, 0, len(changes)),
	}

	for _, item := range items {
		total := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		report.TotalInventoryValue = report.TotalInventoryValue.Add(total)
		if item.Quantity <= item.LowStockThreshold {
			report.LowStockItems = append(report.LowStockItems, item.Name)
		}
		report.StockLevels = append(report.StockLevels, StockLevel{
			Name:       item.Name,
			Category:   item.Category.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price,
			TotalValue: total,
		})
	}

	for _, change := range changes {
		report.ChangeHistory = append(report.ChangeHistory, ChangeRecord{
			Date:     change.ChangeDate,
			Item:     change.Item.Name,
			Type:     change.ChangeType,
			Quantity: change.QuantityChange,
			From:     change.PreviousQuantity,
			To:       change.NewQuantity,
			Reason:   change.Reason,
		})
	}

	return report, nil
}
