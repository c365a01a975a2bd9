package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles signup and the superadmin user/role administration.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Signup creates a user. Role defaults to "user"; an admin must be assigned
// at least one existing category, any other role must have none. The user row
// and its category assignments are created in one transaction.
func (s *UserService) Signup(req *dto.SignupRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	categoryIDs, err := s.validateAssignments(role, req.Categories)
	if err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hash),
		Role:     role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return createAssignments(tx, user.ID, categoryIDs)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users with resolved category names, for the superadmin
// administration view.
func (s *UserService) List() ([]dto.UserDetail, error) {
	var users []models.User
	if err := s.db.Order("created_at, id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	details := make([]dto.UserDetail, 0, len(users))
	for _, u := range users {
		detail := dto.UserDetail{
			UserID:    u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		}
		if u.Role == models.RoleAdmin {
			names, err := assignedCategoryNames(s.db, u.ID)
			if err != nil {
				return nil, err
			}
			detail.Categories = names
		}
		details = append(details, detail)
	}
	return details, nil
}

// ChangeRole sets a user's role and atomically replaces the full category
// assignment set. There is no partial add/remove: the given set is the new
// truth.
func (s *UserService) ChangeRole(userID uuid.UUID, req *dto.ChangeRoleRequest) (*models.User, error) {
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	categoryIDs, err := s.validateAssignments(req.Role, req.Categories)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("role", req.Role).Error; err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CategoryAssignment{}).Error; err != nil {
			return fmt.Errorf("failed to clear assignments: %w", err)
		}
		return createAssignments(tx, user.ID, categoryIDs)
	})
	if err != nil {
		return nil, err
	}

	user.Role = req.Role
	return &user, nil
}

// validateAssignments enforces the role/category invariant and resolves
// category names to ids: admins need at least one existing category, every
// other role must have an empty set.
func (s *UserService) validateAssignments(role string, names []string) ([]uuid.UUID, error) {
	if role != models.RoleAdmin {
		if len(names) > 0 {
			return nil, fmt.Errorf("%w: role %q cannot have category assignments", ErrValidation, role)
		}
		return nil, nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: an admin requires at least one category", ErrValidation)
	}

	ids := make([]uuid.UUID, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		seen[name] = true

		var cat models.Category
		if err := s.db.Where("name = ?", name).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, name)
			}
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		ids = append(ids, cat.ID)
	}
	return ids, nil
}

func createAssignments(tx *gorm.DB, userID uuid.UUID, categoryIDs []uuid.UUID) error {
	for _, catID := range categoryIDs {
		assignment := models.CategoryAssignment{UserID: userID, CategoryID: catID}
		if err := tx.Create(&assignment).Error; err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}
	}
	return nil
}
