package asset

import "context"

// AssetRepository persists assets. All lookups are owner-scoped.
type AssetRepository interface {
	GetByID(ctx context.Context, id uint, ownerID uint) (*Asset, error)
	GetByCode(ctx context.Context, code string, ownerID uint) (*Asset, error)
	List(ctx context.Context, ownerID uint) ([]*Asset, error)
	Save(ctx context.Context, a *Asset) error
	Update(ctx context.Context, a *Asset) error
}

// ComponentRepository persists components. All lookups are owner-scoped.
type ComponentRepository interface {
	GetByID(ctx context.Context, id uint, ownerID uint) (*Component, error)
	ListByAssetID(ctx context.Context, assetID uint, ownerID uint) ([]*Component, error)
	ListByIDs(ctx context.Context, ids []uint, ownerID uint) ([]*Component, error)
	List(ctx context.Context, ownerID uint) ([]*Component, error)
	Save(ctx context.Context, c *Component) error
	Update(ctx context.Context, c *Component) error
	DeactivateByAssetID(ctx context.Context, assetID uint, ownerID uint) error
}
