//go:build !integration

package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/flashe-service/internal/domain/model"
)

// newTestCatalog builds a catalog from the default document after applying edit.
func newTestCatalog(t *testing.T, edit func(*model.CatalogDocument)) *model.Catalog {
	t.Helper()
	doc := model.DefaultCatalogDocument()
	if edit != nil {
		edit(&doc)
	}
	c, err := model.NewCatalog(doc, "test")
	require.NoError(t, err)
	return c
}

func assertAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2))
}
