package maintenance

import "context"

// PlanRepository persists maintenance plans. All lookups are owner-scoped.
type PlanRepository interface {
	GetByID(ctx context.Context, id uint, ownerID uint) (*Plan, error)
	List(ctx context.Context, ownerID uint) ([]*Plan, error)
	Save(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
}
