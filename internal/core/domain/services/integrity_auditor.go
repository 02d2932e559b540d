package services

import (
	"fmt"
	"strconv"
	"strings"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/domain/model/sheet"
)

// AnomalyKind classifies a finding of IntegrityAuditor.
type AnomalyKind int

const (
	// DivergentDetails marks a row whose details differ from the first row of its order.
	DivergentDetails AnomalyKind = iota + 1
	// AmbiguousOrderNo marks distinct order numbers that are equal as numbers ("123", "123.0").
	AmbiguousOrderNo
)

func (k AnomalyKind) String() string {
	switch k {
	case DivergentDetails:
		return "divergent_details"
	case AmbiguousOrderNo:
		return "ambiguous_order_no"
	default:
		return "unknown"
	}
}

// Anomaly is one data-quality finding. Position is the 1-based sheet row for
// DivergentDetails and 0 otherwise.
type Anomaly struct {
	Kind     AnomalyKind
	OrderNo  string
	Position int
	Fields   []string
	Related  []string
}

func (a Anomaly) String() string {
	switch a.Kind {
	case DivergentDetails:
		return fmt.Sprintf("order %q row %d diverges in %s", a.OrderNo, a.Position, strings.Join(a.Fields, ", "))
	case AmbiguousOrderNo:
		return fmt.Sprintf("order numbers %s are numerically equal", strings.Join(quoteAll(a.Related), ", "))
	default:
		return "unknown anomaly"
	}
}

// IntegrityAuditor inspects the orders sheet for anomalies that grouping by exact
// order number silently absorbs. It never modifies data.
type IntegrityAuditor struct{}

// NewIntegrityAuditor creates an IntegrityAuditor.
func NewIntegrityAuditor() IntegrityAuditor {
	return IntegrityAuditor{}
}

// Audit returns findings in sheet order: divergent rows first, then ambiguous numbers.
func (IntegrityAuditor) Audit(rows []sheet.Row) []Anomaly {
	var (
		anomalies []Anomaly
		first     = make(map[string]order.Details)
		numbers   []string
	)

	for i, row := range rows {
		number := row.Cell(sheet.ColumnOrderNo)
		if number == "" {
			continue
		}

		details := detailsOf(row)
		seen, ok := first[number]
		if !ok {
			first[number] = details
			numbers = append(numbers, number)
			continue
		}

		if fields := diffDetails(seen, details); len(fields) > 0 {
			anomalies = append(anomalies, Anomaly{
				Kind:     DivergentDetails,
				OrderNo:  number,
				Position: sheet.PositionOf(i),
				Fields:   fields,
			})
		}
	}

	return append(anomalies, ambiguousNumbers(numbers)...)
}

func ambiguousNumbers(numbers []string) []Anomaly {
	var (
		groups = make(map[string][]string)
		keys   []string
	)
	for _, n := range numbers {
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			continue
		}
		key := strconv.FormatFloat(f, 'f', -1, 64)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], n)
	}

	var anomalies []Anomaly
	for _, key := range keys {
		if related := groups[key]; len(related) > 1 {
			anomalies = append(anomalies, Anomaly{
				Kind:    AmbiguousOrderNo,
				OrderNo: related[0],
				Related: related,
			})
		}
	}
	return anomalies
}

func diffDetails(a, b order.Details) []string {
	var fields []string
	check := func(name, x, y string) {
		if x != y {
			fields = append(fields, name)
		}
	}
	check("date", a.Date, b.Date)
	check("setName", a.SetName, b.SetName)
	check("pageNo", a.PageNo, b.PageNo)
	check("recipientName", a.RecipientName, b.RecipientName)
	check("address", a.Address, b.Address)
	check("phone", a.Phone, b.Phone)
	check("courier", a.Courier, b.Courier)
	return fields
}

func quoteAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Quote(v)
	}
	return out
}
