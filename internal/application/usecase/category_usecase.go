package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/lager-api/internal/application/dto"
	"github.com/jhoicas/lager-api/internal/domain"
	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

// SampleCategories categorías iniciales del panel de administración.
func SampleCategories() []entity.Category {
	return []entity.Category{
		{ID: "1", Name: "Burger"},
		{ID: "2", Name: "Beilagen"},
		{ID: "3", Name: "Beverages"},
		{ID: "4", Name: "Sauces"},
	}
}

// CategoryUseCase casos de uso de categorías. Cada mutación reescribe la lista completa.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	mu   sync.Mutex
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve las categorías en el orden persistido.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	cats, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

// Add agrega una categoría al final. No exige nombres únicos.
func (uc *CategoryUseCase) Add(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es obligatorio", domain.ErrValidation)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cats, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generar id: %w", err)
	}
	cat := entity.Category{ID: id.String(), Name: in.Name}
	if err := uc.repo.Save(ctx, append(cats, cat)); err != nil {
		return nil, err
	}
	res := toCategoryResponse(cat)
	return &res, nil
}

// Update renombra la categoría. Devuelve nil, nil si el id no existe (sin cambios).
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: el nombre de la categoría es obligatorio", domain.ErrValidation)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cats, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range cats {
		if cats[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}
	cats[idx].Name = in.Name
	if err := uc.repo.Save(ctx, cats); err != nil {
		return nil, err
	}
	res := toCategoryResponse(cats[idx])
	return &res, nil
}

// Remove quita la categoría. Los artículos que la referencian no se modifican.
func (uc *CategoryUseCase) Remove(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	cats, err := uc.repo.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]entity.Category, 0, len(cats))
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(cats) {
		return nil
	}
	return uc.repo.Save(ctx, kept)
}

// InitializeSamples siembra las categorías de ejemplo si el registro no existe.
func (uc *CategoryUseCase) InitializeSamples(ctx context.Context) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	exists, err := uc.repo.Exists(ctx)
	if err != nil || exists {
		return false, err
	}
	if err := uc.repo.Save(ctx, SampleCategories()); err != nil {
		return false, err
	}
	return true, nil
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}
