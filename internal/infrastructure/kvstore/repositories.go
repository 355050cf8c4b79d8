package kvstore

import (
	"context"

	"github.com/jhoicas/lager-api/internal/domain/entity"
	"github.com/jhoicas/lager-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository   = (*CategoryRepo)(nil)
	_ repository.InventoryRepository  = (*InventoryRepo)(nil)
	_ repository.CredentialRepository = (*CredentialRepo)(nil)
	_ repository.SessionRepository    = (*SessionRepo)(nil)
)

// CategoryRepo lista de categorías bajo la clave "categories".
type CategoryRepo struct {
	b blob[[]entity.Category]
}

// NewCategoryRepository construye el adaptador sobre el almacenamiento dado.
func NewCategoryRepository(kv repository.KeyValueStore) *CategoryRepo {
	return &CategoryRepo{b: blob[[]entity.Category]{kv: kv, key: repository.KeyCategories}}
}

func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	list, _, err := r.b.load(ctx)
	if list == nil {
		list = []entity.Category{}
	}
	return list, err
}

func (r *CategoryRepo) Save(ctx context.Context, categories []entity.Category) error {
	if categories == nil {
		categories = []entity.Category{}
	}
	return r.b.save(ctx, categories)
}

func (r *CategoryRepo) Exists(ctx context.Context) (bool, error) { return r.b.exists(ctx) }

// InventoryRepo lista de artículos bajo la clave "inventory".
type InventoryRepo struct {
	b blob[[]entity.InventoryItem]
}

// NewInventoryRepository construye el adaptador sobre el almacenamiento dado.
func NewInventoryRepository(kv repository.KeyValueStore) *InventoryRepo {
	return &InventoryRepo{b: blob[[]entity.InventoryItem]{kv: kv, key: repository.KeyInventory}}
}

func (r *InventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	list, _, err := r.b.load(ctx)
	if list == nil {
		list = []entity.InventoryItem{}
	}
	return list, err
}

func (r *InventoryRepo) Save(ctx context.Context, items []entity.InventoryItem) error {
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return r.b.save(ctx, items)
}

func (r *InventoryRepo) Exists(ctx context.Context) (bool, error) { return r.b.exists(ctx) }

// CredentialRepo objeto JSON contraseña → rol bajo la clave "passwords".
type CredentialRepo struct {
	b blob[map[string]entity.Role]
}

// NewCredentialRepository construye el adaptador sobre el almacenamiento dado.
func NewCredentialRepository(kv repository.KeyValueStore) *CredentialRepo {
	return &CredentialRepo{b: blob[map[string]entity.Role]{kv: kv, key: repository.KeyPasswords}}
}

func (r *CredentialRepo) Load(ctx context.Context) (map[string]entity.Role, error) {
	m, _, err := r.b.load(ctx)
	if m == nil {
		m = map[string]entity.Role{}
	}
	return m, err
}

func (r *CredentialRepo) Save(ctx context.Context, credentials map[string]entity.Role) error {
	if credentials == nil {
		credentials = map[string]entity.Role{}
	}
	return r.b.save(ctx, credentials)
}

func (r *CredentialRepo) Exists(ctx context.Context) (bool, error) { return r.b.exists(ctx) }

// SessionRepo registro {role, password} bajo la clave "warehouseSession".
type SessionRepo struct {
	b blob[entity.Session]
}

// NewSessionRepository construye el adaptador sobre el almacenamiento dado.
func NewSessionRepository(kv repository.KeyValueStore) *SessionRepo {
	return &SessionRepo{b: blob[entity.Session]{kv: kv, key: repository.KeySession}}
}

func (r *SessionRepo) Get(ctx context.Context) (*entity.Session, error) {
	s, found, err := r.b.load(ctx)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) Set(ctx context.Context, session entity.Session) error {
	return r.b.save(ctx, session)
}

func (r *SessionRepo) Clear(ctx context.Context) error { return r.b.clear(ctx) }
