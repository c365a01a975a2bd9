package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corems/corems-backend/internal/claims"
	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComplaintService owns the ticket lifecycle: filing, reads within the
// caller's visibility, and the atomic status-update + audit-row pair.
type ComplaintService struct {
	db         *gorm.DB
	visibility *VisibilityService
	filter     *ContentFilter
}

func NewComplaintService(db *gorm.DB, visibility *VisibilityService, filter *ContentFilter) *ComplaintService {
	return &ComplaintService{db: db, visibility: visibility, filter: filter}
}

// File creates a complaint with status Pending. Title, description and
// category are required; the category must exist in the registry at filing
// time.
func (s *ComplaintService) File(authorID uuid.UUID, req *dto.CreateComplaintRequest) (*models.Complaint, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	category := strings.TrimSpace(req.Category)

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if err := s.filter.Validate(title + " " + description); err != nil {
		return nil, err
	}

	var cat models.Category
	if err := s.db.Where("name = ?", category).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
		}
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	complaint := models.Complaint{
		ID:          uuid.New(),
		UserID:      authorID,
		Title:       title,
		Description: description,
		Category:    cat.Name,
		PhotoURL:    strings.TrimSpace(req.PhotoURL),
		Status:      models.StatusPending,
	}

	if err := s.db.Create(&complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return &complaint, nil
}

// Get fetches one complaint within the caller's visibility and resolves the
// last updating admin's username. Complaints outside the caller's scope look
// identical to missing ones.
func (s *ComplaintService) Get(callerID, complaintID uuid.UUID) (*dto.ComplaintDetail, error) {
	complaint, err := s.visibleComplaint(callerID, complaintID)
	if err != nil {
		return nil, err
	}

	detail := &dto.ComplaintDetail{
		ComplaintID:    complaint.ID,
		UserID:         complaint.UserID,
		Title:          complaint.Title,
		Description:    complaint.Description,
		Category:       complaint.Category,
		PhotoURL:       complaint.PhotoURL,
		Status:         complaint.Status,
		UpdatedByAdmin: complaint.UpdatedByAdmin,
		CreatedAt:      complaint.CreatedAt,
		UpdatedAt:      complaint.UpdatedAt,
	}

	if complaint.UpdatedByAdmin != nil {
		var admin models.User
		if err := s.db.First(&admin, "id = ?", *complaint.UpdatedByAdmin).Error; err == nil {
			detail.AdminUsername = admin.Username
		}
	}
	return detail, nil
}

// Search runs a tokenized match over title and description, restricted to
// the caller's visible set, newest first.
func (s *ComplaintService) Search(callerID uuid.UUID, query string, limit int) ([]models.Complaint, error) {
	caller, err := s.visibility.ResolveCaller(callerID)
	if err != nil {
		return nil, err
	}
	scope, err := s.visibility.Scope(caller)
	if err != nil {
		return nil, err
	}

	terms := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(terms) == 0 {
		return []models.Complaint{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var match *gorm.DB
	for _, term := range terms {
		like := "%" + term + "%"
		cond := "LOWER(title) LIKE ? OR LOWER(description) LIKE ?"
		if match == nil {
			match = s.db.Where(cond, like, like)
		} else {
			match = match.Or(cond, like, like)
		}
	}
	q := s.db.Scopes(scope, claims.NewestFirst()).Limit(limit).Where(match)

	var complaints []models.Complaint
	if err := q.Find(&complaints).Error; err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return complaints, nil
}

// UpdateStatus applies one status transition. The current-state mutation and
// the audit row are written in a single transaction: neither is ever
// observable without the other.
func (s *ComplaintService) UpdateStatus(callerID, complaintID uuid.UUID, newStatus, updateText string) (*models.StatusUpdate, error) {
	newStatus = strings.TrimSpace(newStatus)
	updateText = strings.TrimSpace(updateText)

	if newStatus == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}
	if !models.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}
	if updateText == "" {
		return nil, fmt.Errorf("%w: update_text is required", ErrValidation)
	}
	if err := s.filter.Validate(updateText); err != nil {
		return nil, err
	}

	caller, err := s.visibility.ResolveCaller(callerID)
	if err != nil {
		return nil, err
	}

	var update models.StatusUpdate
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var complaint models.Complaint
		if err := tx.First(&complaint, "id = ?", complaintID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComplaintNotFound
			}
			return fmt.Errorf("failed to load complaint: %w", err)
		}

		ok, err := s.visibility.CanWriteStatus(caller, &complaint)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}

		if !models.ValidTransition(complaint.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, complaint.Status, newStatus)
		}

		if err := tx.Model(&complaint).Updates(map[string]interface{}{
			"status":           newStatus,
			"updated_by_admin": caller.ID,
		}).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		update = models.StatusUpdate{
			ID:          uuid.New(),
			ComplaintID: complaint.ID,
			AdminID:     caller.ID,
			Status:      newStatus,
			UpdateText:  updateText,
		}
		if err := tx.Create(&update).Error; err != nil {
			return fmt.Errorf("failed to append status update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &update, nil
}

// History returns the complaint's audit trail, newest first. Visibility
// follows the read path: whoever may see the complaint may see its history.
func (s *ComplaintService) History(callerID, complaintID uuid.UUID) ([]models.StatusUpdate, error) {
	if _, err := s.visibleComplaint(callerID, complaintID); err != nil {
		return nil, err
	}

	var updates []models.StatusUpdate
	err := s.db.Where("complaint_id = ?", complaintID).
		Order("created_at DESC, id DESC").
		Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load status history: %w", err)
	}
	return updates, nil
}

func (s *ComplaintService) visibleComplaint(callerID, complaintID uuid.UUID) (*models.Complaint, error) {
	caller, err := s.visibility.ResolveCaller(callerID)
	if err != nil {
		return nil, err
	}
	scope, err := s.visibility.Scope(caller)
	if err != nil {
		return nil, err
	}

	var complaint models.Complaint
	if err := s.db.Scopes(scope).First(&complaint, "complaints.id = ?", complaintID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, fmt.Errorf("failed to load complaint: %w", err)
	}
	return &complaint, nil
}
