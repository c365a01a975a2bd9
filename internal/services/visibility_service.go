package services

import (
	"errors"
	"fmt"

	"github.com/corems/corems-backend/internal/claims"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisibilityService computes which complaints a caller may read and whether
// they may write status. Role and category assignments are resolved from the
// database on every call so superadmin role changes take effect immediately.
type VisibilityService struct {
	db *gorm.DB
}

func NewVisibilityService(db *gorm.DB) *VisibilityService {
	return &VisibilityService{db: db}
}

// ResolveCaller loads the caller's user row. An unknown id fails with
// ErrUnauthorized; it never falls back to any broader visibility.
func (s *VisibilityService) ResolveCaller(callerID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}
	return &user, nil
}

// Scope returns the read-path filter for the caller, without ordering.
func (s *VisibilityService) Scope(caller *models.User) (func(db *gorm.DB) *gorm.DB, error) {
	switch caller.Role {
	case models.RoleSuperadmin, models.RoleObserver:
		return func(db *gorm.DB) *gorm.DB { return db }, nil
	case models.RoleAdmin:
		names, err := assignedCategoryNames(s.db, caller.ID)
		if err != nil {
			return nil, err
		}
		return claims.InCategories(names), nil
	case models.RoleUser:
		return claims.ByAuthor(caller.ID), nil
	}
	return claims.Nothing(), nil
}

// VisibleComplaints lists the caller's visible complaints, newest first.
func (s *VisibilityService) VisibleComplaints(callerID uuid.UUID) ([]models.Complaint, error) {
	caller, err := s.ResolveCaller(callerID)
	if err != nil {
		return nil, err
	}

	scope, err := s.Scope(caller)
	if err != nil {
		return nil, err
	}

	var complaints []models.Complaint
	if err := s.db.Scopes(scope, claims.NewestFirst()).Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return complaints, nil
}

// CanWriteStatus reports whether the caller may change the complaint's
// status: superadmins always, admins only within their assigned categories,
// everyone else never.
func (s *VisibilityService) CanWriteStatus(caller *models.User, complaint *models.Complaint) (bool, error) {
	switch caller.Role {
	case models.RoleSuperadmin:
		return true, nil
	case models.RoleAdmin:
		names, err := assignedCategoryNames(s.db, caller.ID)
		if err != nil {
			return false, err
		}
		for _, name := range names {
			if name == complaint.Category {
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}
