package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/pagination"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	categories := `
CREATE TABLE IF NOT EXISTS categories (
  id TEXT PRIMARY KEY,
  parent_id TEXT,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT '',
  product_count INTEGER NOT NULL DEFAULT 0,
  sort_order INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL DEFAULT '',
  short_description TEXT NOT NULL DEFAULT '',
  price_cents INTEGER NOT NULL,
  old_price_cents INTEGER,
  category_id TEXT NOT NULL,
  brand TEXT NOT NULL DEFAULT '',
  sku TEXT NOT NULL UNIQUE,
  image_url TEXT NOT NULL DEFAULT '',
  images TEXT,
  attributes TEXT,
  stock INTEGER NOT NULL DEFAULT 0,
  rating REAL NOT NULL DEFAULT 0,
  reviews_count INTEGER NOT NULL DEFAULT 0,
  is_featured INTEGER NOT NULL DEFAULT 0,
  is_available INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(categories).Error)
	require.NoError(t, db.Exec(products).Error)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID uuid.UUID, featured, available bool) models.Product {
	t.Helper()

	p := models.Product{
		ID:          uuid.New(),
		Name:        name,
		Slug:        name + "-" + uuid.NewString()[:8],
		PriceCents:  99999,
		CategoryID:  categoryID,
		SKU:         "SKU-" + uuid.NewString()[:8],
		Stock:       5,
		IsFeatured:  featured,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestRepoListProductsFilters(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	audio := uuid.New()
	wearables := uuid.New()
	seedProduct(t, db, "headphones", audio, true, true)
	seedProduct(t, db, "speaker", audio, false, true)
	seedProduct(t, db, "watch", wearables, false, true)
	seedProduct(t, db, "discontinued", audio, false, false)

	all, total, err := repo.ListProducts(ctx, pagination.PageParams{}, ProductFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)

	byCategory, total, err := repo.ListProducts(ctx, pagination.PageParams{}, ProductFilters{CategoryID: &audio})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, byCategory, 2)

	featured := true
	onlyFeatured, total, err := repo.ListProducts(ctx, pagination.PageParams{}, ProductFilters{Featured: &featured})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, "headphones", onlyFeatured[0].Name)

	byQuery, _, err := repo.ListProducts(ctx, pagination.PageParams{}, ProductFilters{Query: "watch"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "watch", byQuery[0].Name)
}

func TestRepoPersistsUnavailableFlag(t *testing.T) {
	db := setupCatalogTestDB(t)
	ctx := context.Background()

	seeded := seedProduct(t, db, "discontinued", uuid.New(), false, false)

	var stored models.Product
	require.NoError(t, db.WithContext(ctx).Where("id = ?", seeded.ID).First(&stored).Error)
	assert.False(t, stored.IsAvailable)
}

func TestRepoListProductsPagination(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	categoryID := uuid.New()
	for i := 0; i < 5; i++ {
		seedProduct(t, db, fmt.Sprintf("product-%d", i), categoryID, false, true)
	}

	page, total, err := repo.ListProducts(ctx, pagination.PageParams{Page: 2, Limit: 2}, ProductFilters{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)
}

func TestRepoFindProduct(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "headphones", uuid.New(), false, true)

	byID, err := repo.FindProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.SKU, byID.SKU)

	bySlug, err := repo.FindProductBySlug(ctx, p.Slug)
	require.NoError(t, err)
	assert.Equal(t, p.ID, bySlug.ID)

	_, err = repo.FindProductByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoListCategoriesOrdering(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	second := models.Category{ID: uuid.New(), Name: "b-category", Slug: "b-category", SortOrder: 2}
	first := models.Category{ID: uuid.New(), Name: "a-category", Slug: "a-category", SortOrder: 1}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "a-category", categories[0].Name)
}
