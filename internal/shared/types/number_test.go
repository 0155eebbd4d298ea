package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_MarshalsWithoutQuotes(t *testing.T) {
	require.False(t, decimal.MarshalJSONWithoutQuotes)

	out, err := json.Marshal(map[string]Number{
		"price": NumberOf(decimal.RequireFromString("12.50")),
		"zero":  NumberOf(decimal.Zero),
		"big":   NumberOf(decimal.RequireFromString("1000")),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12.5,"zero":0,"big":1000}`, string(out))

	plain, err := json.Marshal(decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(plain))
}
