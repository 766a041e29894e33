package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsPreservesGroupOrder(t *testing.T) {
	raw := `{"Size":[{"label":"M","price":0},{"label":"L","price":0.5}],"Sugar":[{"label":"50%","price":0},{"label":"100%","price":0}]}`

	groups, err := parseOptions(raw)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Size", groups[0].Name)
	assert.Equal(t, "Sugar", groups[1].Name)
	require.Len(t, groups[0].Choices, 2)
	assert.Equal(t, "L", groups[0].Choices[1].Label)
	assert.Equal(t, 0.5, groups[0].Choices[1].PriceDelta)
}

func TestParseOptionsRejectsNonObject(t *testing.T) {
	_, err := parseOptions(`["not","an","object"]`)
	assert.Error(t, err)
}

func TestParseOptionsSkipsUnlabeledChoices(t *testing.T) {
	groups, err := parseOptions(`{"Size":[{"label":"","price":1},{"label":"L","price":0.5}]}`)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Choices, 1)
}

func TestCleanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$3.20", "3.20"},
		{"20%", "20"},
		{"1,200", "1200"},
		{" 4.00 ", "4.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanNumber(tt.in))
	}
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "discount_name", normalizeHeader(" Discount Name "))
	assert.Equal(t, "category_kh", normalizeHeader("category_kh"))
}
