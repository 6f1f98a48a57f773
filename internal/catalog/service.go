package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/pagination"
	"github.com/techstore/storefront-backend/pkg/types"
)

// maxCategoryDepth caps how deep the category tree may nest. Rows below the
// guard (or on a parent_id cycle) are dropped rather than recursed into.
const maxCategoryDepth = 6

// ListProductsInput carries the listing filters and pagination.
type ListProductsInput struct {
	Page       int
	Limit      int
	CategoryID *uuid.UUID
	Featured   *bool
	Query      string
}

// Service exposes read operations over the catalog.
type Service interface {
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductList, types.PaginationMeta, error)
	GetProduct(ctx context.Context, idOrSlug string) (*ProductView, error)
	CategoryTree(ctx context.Context) ([]*CategoryNode, error)
}

type service struct {
	repo Repository
}

// NewService builds the catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListProducts(ctx context.Context, input ListProductsInput) (*ProductList, types.PaginationMeta, error) {
	params := pagination.PageParams{Page: input.Page, Limit: input.Limit}.Normalize()
	filters := ProductFilters{
		CategoryID: input.CategoryID,
		Featured:   input.Featured,
		Query:      input.Query,
	}

	products, total, err := s.repo.ListProducts(ctx, params, filters)
	if err != nil {
		return nil, types.PaginationMeta{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return &ProductList{Products: views, Total: total}, params.Meta(total), nil
}

// GetProduct accepts either a product id or its slug.
func (s *service) GetProduct(ctx context.Context, idOrSlug string) (*ProductView, error) {
	if idOrSlug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product identifier required")
	}

	var err error
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		p, findErr := s.repo.FindProductByID(ctx, id)
		if findErr == nil {
			view := toProductView(*p)
			return &view, nil
		}
		err = findErr
	} else {
		p, findErr := s.repo.FindProductBySlug(ctx, idOrSlug)
		if findErr == nil {
			view := toProductView(*p)
			return &view, nil
		}
		err = findErr
	}

	if err == gorm.ErrRecordNotFound {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product")
}

// CategoryTree assembles the flat category rows into nested nodes. A depth
// guard keeps malformed parent chains (including cycles) from recursing
// forever.
func (s *service) CategoryTree(ctx context.Context) ([]*CategoryNode, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing categories")
	}

	children := make(map[uuid.UUID][]int)
	var rootIdx []int
	for i, c := range categories {
		if c.ParentID == nil {
			rootIdx = append(rootIdx, i)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], i)
	}

	var build func(idx int, depth int, seen map[uuid.UUID]bool) *CategoryNode
	build = func(idx int, depth int, seen map[uuid.UUID]bool) *CategoryNode {
		c := categories[idx]
		if depth > maxCategoryDepth || seen[c.ID] {
			return nil
		}
		seen[c.ID] = true

		node := &CategoryNode{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			ImageURL:     c.ImageURL,
			ProductCount: c.ProductCount,
		}
		for _, childIdx := range children[c.ID] {
			if child := build(childIdx, depth+1, seen); child != nil {
				node.Children = append(node.Children, child)
			}
		}
		return node
	}

	seen := make(map[uuid.UUID]bool, len(categories))
	tree := make([]*CategoryNode, 0, len(rootIdx))
	for _, idx := range rootIdx {
		if node := build(idx, 1, seen); node != nil {
			tree = append(tree, node)
		}
	}
	return tree, nil
}
