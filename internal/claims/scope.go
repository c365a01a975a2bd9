package claims

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByAuthor returns a GORM scope that filters complaints to one author.
func ByAuthor(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// InCategories filters complaints to a category-name set. An empty set
// matches nothing: an admin with no assigned categories fails closed.
func InCategories(names []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(names) == 0 {
			return db.Where("1 = 0")
		}
		return db.Where("category IN ?", names)
	}
}

// Nothing matches no rows. Used for unrecognized roles.
func Nothing() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("1 = 0")
	}
}

// NewestFirst is the canonical complaint ordering. The id tie-break keeps
// repeated reads of unchanged data stable.
func NewestFirst() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC, id DESC")
	}
}
