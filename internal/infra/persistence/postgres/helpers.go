package postgres

import (
	"sapphire/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID returns a time-ordered UUID so primary keys index well.
func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func paginate(page entity.Page) func(db *gorm.DB) *gorm.DB {
	p := page.Normalize()

	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}

// matchNone makes an IN filter over an empty, non-nil set select nothing.
func matchNone(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}
