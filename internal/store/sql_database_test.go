package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/billiard-pos/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestWithRetry(t *testing.T) {
	db := &DB{retryDelays: []time.Duration{time.Millisecond, time.Millisecond}}

	t.Run("gives up after the last delay", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.ConnectionFailure)
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("final errors are not retried", func(t *testing.T) {
		calls := 0
		err := db.withRetry(context.Background(), func() error {
			calls++
			return pgError(pgerrcode.UniqueViolation)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops on canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		slow := &DB{retryDelays: []time.Duration{time.Hour}}

		err := slow.withRetry(ctx, func() error {
			return pgError(pgerrcode.ConnectionFailure)
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBuildListProductsQuery_Filters(t *testing.T) {
	active := true
	query, args, err := buildListProductsQuery(models.ProductFilter{
		Search:   "50%_off",
		Category: "drinks",
		Tag:      "cold",
		Active:   &active,
		Sort:     models.ProductSortPriceDesc,
		Page:     1,
		Limit:    20,
	})
	assert.NoError(t, err)
	assert.Contains(t, query, "name ILIKE $1")
	assert.Contains(t, query, "category = $2")
	assert.Contains(t, query, "tags @> $3::jsonb")
	assert.Contains(t, query, "active = $4")
	assert.Contains(t, query, "ORDER BY price DESC, id DESC")
	assert.Equal(t, []any{`%50\%\_off%`, "drinks", `["cold"]`, true}, args)
}

func TestBuildUpdateProductQuery_NullsEmptySKU(t *testing.T) {
	empty := ""
	_, args, err := buildUpdateProductQuery(1, models.ProductUpdate{SKU: &empty})
	assert.NoError(t, err)
	assert.Equal(t, []any{nil, int64(1)}, args)
}
