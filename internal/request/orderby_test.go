package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestOrderBy_ReversedIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		order := rapid.SampledFrom(OrderBys()).Draw(t, "order")

		assert.NotEqual(t, order, order.Reversed())
		assert.Equal(t, order, order.Reversed().Reversed())
		assert.NotEqual(t, order.Descending(), order.Reversed().Descending())
	})
}

func TestOrderBy_TableIsComplete(t *testing.T) {
	all := OrderBys()
	assert.Len(t, all, 48)

	seen := make(map[OrderBy]bool, len(all))
	for _, order := range all {
		assert.False(t, seen[order], "duplicate ordering %s", order)
		seen[order] = true
		assert.True(t, order.Valid())
	}

	assert.Equal(t, OrderByPiecesDesc, OrderByPieces.Reversed())
	assert.Equal(t, OrderByCollectionID, OrderByCollectionIDDesc.Reversed())
}

func TestOrderBy_UnknownUnchanged(t *testing.T) {
	unknown := OrderBy("Colour")
	assert.False(t, unknown.Valid())
	assert.Equal(t, unknown, unknown.Reversed())
}
