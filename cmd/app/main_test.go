package main

import (
	"bytes"
	"testing"

	"ordersheet/internal/core/application/usecases/queries"
	"ordersheet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCommand(&app{})

	for _, name := range []string{"serve", "orders", "audit"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestRenderOrders(t *testing.T) {
	var buf bytes.Buffer

	err := renderOrders(&buf, []queries.OrderView{{
		OrderNo: "105",
		Phone:   "0812345678",
		Items:   []queries.ItemView{{Name: "Book A", Qty: "2"}},
	}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "105")
	assert.Contains(t, buf.String(), "0812345678")
	assert.Contains(t, buf.String(), "Book A x2")
}

func TestRenderAnomalies(t *testing.T) {
	var buf bytes.Buffer

	err := renderAnomalies(&buf, []services.Anomaly{
		{Kind: services.DivergentDetails, OrderNo: "7", Position: 4, Fields: []string{"address"}},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "divergent_details")
	assert.Contains(t, buf.String(), "address")
}
