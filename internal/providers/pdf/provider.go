package pdf

import (
	"context"
	"io"
)

type Provider interface {
	GeneratePurchaseList(ctx context.Context, data PurchaseListData) (io.Reader, error)
}

type PurchaseListData struct {
	Reference      string
	Status         string
	GenerationDate string
	EventLabel     string

	Items []PurchaseListItem
}

type PurchaseListItem struct {
	IngredientName string
	Quantity       string
	Unit           string
	BatchSize      string
	TotalBatches   string
}
