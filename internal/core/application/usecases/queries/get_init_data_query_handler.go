package queries

import (
	"context"
	"fmt"

	"ordersheet/internal/core/ports"
)

// GetInitDataQueryHandler reads the products and couriers reference lists.
type GetInitDataQueryHandler struct {
	references ports.ReferenceRepository
}

func NewGetInitDataQueryHandler(references ports.ReferenceRepository) GetInitDataQueryHandler {
	return GetInitDataQueryHandler{references: references}
}

// Handle reads both lists. Either failure fails the whole query.
func (h GetInitDataQueryHandler) Handle(ctx context.Context, query GetInitDataQuery) (GetInitDataQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInitDataQueryResponse{}, err
	}

	products, err := h.references.Products(ctx)
	if err != nil {
		return GetInitDataQueryResponse{}, fmt.Errorf("read products: %w", err)
	}

	couriers, err := h.references.Couriers(ctx)
	if err != nil {
		return GetInitDataQueryResponse{}, fmt.Errorf("read couriers: %w", err)
	}

	return GetInitDataQueryResponse{Products: products, Couriers: couriers}, nil
}
