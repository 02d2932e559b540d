package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/services"

	"github.com/olekukonko/tablewriter"
)

func (a *app) printOrders(ctx context.Context, out io.Writer) error {
	views, err := a.root.CreateGetOrdersQueryHandler().Handle(ctx, queries.NewGetOrdersQuery())
	if err != nil {
		return err
	}
	return renderOrders(out, views)
}

func (a *app) audit(ctx context.Context, out io.Writer) error {
	anomalies, err := a.root.CreateIntegrityAuditJob().RunOnce(ctx)
	if err != nil {
		return err
	}
	if len(anomalies) == 0 {
		_, err = fmt.Fprintln(out, "no anomalies found")
		return err
	}
	return renderAnomalies(out, anomalies)
}

func renderOrders(out io.Writer, views []queries.OrderView) error {
	table := tablewriter.NewWriter(out)
	table.Header("OrderNo", "Date", "Recipient", "Phone", "Courier", "Items")
	for _, v := range views {
		items := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			items = append(items, it.Name+" x"+it.Qty)
		}
		if err := table.Append([]string{
			v.OrderNo, v.Date, v.RecipientName, v.Phone, v.Courier, strings.Join(items, ", "),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderAnomalies(out io.Writer, anomalies []services.Anomaly) error {
	table := tablewriter.NewWriter(out)
	table.Header("Kind", "OrderNo", "Row", "Detail")
	for _, an := range anomalies {
		row := ""
		if an.Position > 0 {
			row = strconv.Itoa(an.Position)
		}
		if err := table.Append([]string{an.Kind.String(), an.OrderNo, row, an.String()}); err != nil {
			return err
		}
	}
	return table.Render()
}
