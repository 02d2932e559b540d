package servers_test

import (
	"testing"

	"ordersheet/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := servers.GetSwagger()

	require.NoError(t, err)
	for _, path := range []string{"/api/v1/init-data", "/api/v1/orders", "/api/v1/orders/{orderNo}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Contains(t, doc.Components.Schemas, "OrderInput")
}
