package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	txScope      TransactionScope
	translator   RowTranslator
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, txScope TransactionScope, translator RowTranslator, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		txScope:      txScope,
		translator:   translator,
		logger:       logger,
	}
}

// Create creates a new category, optionally under a parent
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	var category *catalog.Category
	var err error

	if req.ParentID != nil {
		parent, ferr := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if ferr != nil {
			if errors.Is(ferr, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, ferr
		}
		category, err = catalog.NewSubCategory(req.Name, parent)
	} else {
		category, err = catalog.NewCategory(req.Name)
	}
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", zap.String("category_id", category.ID.String()), zap.String("name", category.Name))

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories
func (s *CategoryService) List(ctx context.Context, language string) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	s.translateNames(ctx, responses, language)

	return responses, nil
}

// GetTree returns root categories with their direct children
func (s *CategoryService) GetTree(ctx context.Context, language string) ([]CategoryTreeNode, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}

	nodes := make([]CategoryTreeNode, 0)
	childrenOf := make(map[uuid.UUID][]CategoryResponse)
	for i := range categories {
		if categories[i].ParentID != nil {
			parentID := *categories[i].ParentID
			childrenOf[parentID] = append(childrenOf[parentID], ToCategoryResponse(&categories[i]))
		}
	}
	for i := range categories {
		if categories[i].ParentID != nil {
			continue
		}
		children := childrenOf[categories[i].ID]
		if children == nil {
			children = []CategoryResponse{}
		}
		nodes = append(nodes, CategoryTreeNode{
			CategoryResponse: ToCategoryResponse(&categories[i]),
			Children:         children,
		})
	}
	s.translateTree(ctx, nodes, language)

	return nodes, nil
}

// translateNames rewrites category names into the requested language
// in one batched provider call. Translation failure is recoverable:
// the source names are served.
func (s *CategoryService) translateNames(ctx context.Context, responses []CategoryResponse, language string) {
	if s.translator == nil || language == "" || len(responses) == 0 {
		return
	}

	rows := make([][]string, len(responses))
	for i := range responses {
		rows[i] = []string{responses[i].Name}
	}

	translated, err := s.translator.TranslateRows(ctx, rows, language)
	if err != nil {
		s.logger.Warn("Serving untranslated category names",
			zap.String("language", language),
			zap.Error(err))
		return
	}

	for i := range responses {
		responses[i].Name = translated[i][0]
	}
}

func (s *CategoryService) translateTree(ctx context.Context, nodes []CategoryTreeNode, language string) {
	if s.translator == nil || language == "" || len(nodes) == 0 {
		return
	}

	flat := make([]CategoryResponse, 0, len(nodes))
	for i := range nodes {
		flat = append(flat, nodes[i].CategoryResponse)
		flat = append(flat, nodes[i].Children...)
	}
	s.translateNames(ctx, flat, language)

	next := 0
	for i := range nodes {
		nodes[i].CategoryResponse = flat[next]
		next++
		for j := range nodes[i].Children {
			nodes[i].Children[j] = flat[next]
			next++
		}
	}
}

// Rename changes a category's name
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, name string) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete removes a category. Its sub-categories become top-level
// categories and its products move to the default category. All three
// steps happen in one transaction, so a failure leaves everything
// unchanged.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if category.IsDefault {
		return shared.NewDomainError("DEFAULT_CATEGORY", "The default category cannot be deleted")
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		fallback, err := repos.CategoryRepo().FindDefault(ctx)
		if err != nil {
			return err
		}

		if err := repos.CategoryRepo().PromoteChildren(ctx, category.ID); err != nil {
			return err
		}
		if err := repos.ProductRepo().ReassignCategory(ctx, category.ID, fallback.ID); err != nil {
			return err
		}
		return repos.CategoryRepo().Delete(ctx, category.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("Category deleted", zap.String("category_id", id.String()), zap.String("name", category.Name))
	return nil
}
