package queries

import (
	"context"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/ports"
)

// GetOrdersQueryHandler reads the orders sheet without locking.
type GetOrdersQueryHandler struct {
	reader ports.OrderReader
}

// NewGetOrdersQueryHandler creates a handler over reader.
func NewGetOrdersQueryHandler(reader ports.OrderReader) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: reader}
}

// Handle returns the orders in reverse first-seen order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toView(o))
	}
	return views, nil
}

func toView(o *order.Order) OrderView {
	d := o.Details()
	items := make([]ItemView, 0, o.ItemCount())
	for _, it := range o.Items() {
		items = append(items, ItemView{Name: it.Name(), Qty: it.Qty()})
	}

	return OrderView{
		OrderNo:       o.Number(),
		Date:          d.Date,
		SetName:       d.SetName,
		PageNo:        d.PageNo,
		RecipientName: d.RecipientName,
		Address:       d.Address,
		Phone:         d.Phone,
		Courier:       d.Courier,
		Items:         items,
	}
}
