package services_test

import (
	"testing"

	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/core/domain/model/sheet"
	"ordersheet/internal/core/domain/services"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, number string, details order.Details, items ...order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(number, details, items)
	require.NoError(t, err)
	return o
}

func row(date, no, set, page, name, addr, phone, item, qty, courier string) sheet.Row {
	return sheet.Row{date, no, set, page, name, addr, phone, item, qty, courier}
}

func TestRowCodec_Encode(t *testing.T) {
	codec := services.NewRowCodec()
	details := order.Details{
		Date: "'05/03/2024", SetName: "S1", PageNo: "4", RecipientName: "Somchai",
		Address: "Bangkok", Phone: "'0812345678", Courier: "Kerry",
	}
	o := newOrder(t, "105", details, order.NewItem("Book A", "2"), order.NewItem("Book B", "1"))

	rows, err := codec.Encode(o)

	require.NoError(t, err)
	want := []sheet.Row{
		row("'05/03/2024", "105", "S1", "4", "Somchai", "Bangkok", "'0812345678", "Book A", "2", "Kerry"),
		row("'05/03/2024", "105", "S1", "4", "Somchai", "Bangkok", "'0812345678", "Book B", "1", "Kerry"),
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestRowCodec_EncodeRejectsUnconstructedOrder(t *testing.T) {
	_, err := services.NewRowCodec().Encode(&order.Order{})

	require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
}

func TestRowCodec_RoundTrip(t *testing.T) {
	codec := services.NewRowCodec()
	details := order.Details{
		Date: "'05/03/2024", SetName: "S1", PageNo: "4", RecipientName: "Somchai",
		Address: "Bangkok", Phone: "'0812345678", Courier: "Kerry",
	}
	items := []order.Item{order.NewItem("C", "3"), order.NewItem("A", "1"), order.NewItem("B", "2")}
	o := newOrder(t, "7", details, items...)

	rows, err := codec.Encode(o)
	require.NoError(t, err)
	book := codec.Decode(rows)

	got, ok := book.Get("7")
	require.True(t, ok)
	assert.Equal(t, details, got.Details())
	assert.Equal(t, items, got.Items())
	assert.Equal(t, 1, book.Len())
}

func TestRowCodec_Decode(t *testing.T) {
	codec := services.NewRowCodec()

	t.Run("groups non contiguous rows in first seen order", func(t *testing.T) {
		rows := []sheet.Row{
			row("d1", "A", "", "", "Ann", "", "", "a1", "1", ""),
			row("d2", "B", "", "", "Bob", "", "", "b1", "1", ""),
			row("d1", "A", "", "", "Ann", "", "", "a2", "2", ""),
		}

		book := codec.Decode(rows)

		require.Equal(t, 2, book.Len())
		numbers := []string{book.Orders()[0].Number(), book.Orders()[1].Number()}
		assert.Equal(t, []string{"A", "B"}, numbers)
		a, _ := book.Get("A")
		assert.Equal(t, []order.Item{order.NewItem("a1", "1"), order.NewItem("a2", "2")}, a.Items())
	})

	t.Run("first seen details win", func(t *testing.T) {
		rows := []sheet.Row{
			row("d1", "A", "", "", "Ann", "Old Street", "", "a1", "1", ""),
			row("d9", "A", "", "", "Other", "New Street", "", "a2", "2", ""),
		}

		book := codec.Decode(rows)

		a, ok := book.Get("A")
		require.True(t, ok)
		assert.Equal(t, "Old Street", a.Details().Address)
		assert.Equal(t, "Ann", a.Details().RecipientName)
		assert.Equal(t, 2, a.ItemCount())
	})

	t.Run("skips rows without order number", func(t *testing.T) {
		rows := []sheet.Row{
			row("d1", "", "", "", "", "", "", "orphan", "1", ""),
			row("d1", "A", "", "", "", "", "", "a1", "1", ""),
			{},
		}

		book := codec.Decode(rows)

		require.Equal(t, 1, book.Len())
		a, _ := book.Get("A")
		assert.Equal(t, 1, a.ItemCount())
	})

	t.Run("numeric looking numbers are distinct", func(t *testing.T) {
		rows := []sheet.Row{
			row("", "123", "", "", "", "", "", "x", "1", ""),
			row("", "123.0", "", "", "", "", "", "y", "1", ""),
		}

		book := codec.Decode(rows)

		assert.Equal(t, 2, book.Len())
	})

	t.Run("short rows are padded", func(t *testing.T) {
		rows := []sheet.Row{{"d1", "A", "S"}}

		book := codec.Decode(rows)

		a, ok := book.Get("A")
		require.True(t, ok)
		assert.Equal(t, "S", a.Details().SetName)
		assert.Equal(t, []order.Item{order.NewItem("", "")}, a.Items())
	})
}

func TestOrderBook_Newest(t *testing.T) {
	rows := []sheet.Row{
		row("", "A", "", "", "", "", "", "a", "1", ""),
		row("", "B", "", "", "", "", "", "b", "1", ""),
		row("", "C", "", "", "", "", "", "c", "1", ""),
	}

	book := services.NewRowCodec().Decode(rows)

	var got []string
	for _, o := range book.Newest() {
		got = append(got, o.Number())
	}
	assert.Equal(t, []string{"C", "B", "A"}, got)
	assert.Equal(t, "A", book.Orders()[0].Number())
}
