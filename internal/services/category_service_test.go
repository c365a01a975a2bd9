package services

import (
	"testing"

	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	db := setupDB(t)
	svc := NewCategoryService(db)

	cat, err := svc.Create(&dto.CreateCategoryRequest{Name: "Hostel", Description: "Rooms"})
	require.NoError(t, err)
	assert.Equal(t, "Hostel", cat.Name)

	_, err = svc.Create(&dto.CreateCategoryRequest{Name: "Hostel"})
	assert.ErrorIs(t, err, ErrCategoryExists)

	_, err = svc.Create(&dto.CreateCategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListCategories_SortedByName(t *testing.T) {
	db := setupDB(t)
	createCategory(t, db, "Library")
	createCategory(t, db, "Canteen")
	createCategory(t, db, "Hostel")
	svc := NewCategoryService(db)

	categories, err := svc.List()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Canteen", categories[0].Name)
	assert.Equal(t, "Library", categories[2].Name)
}

func TestDeleteCategory_UnconditionalAndCascadesAssignments(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	author := createUser(t, db, "alice", models.RoleUser)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := NewCategoryService(db)

	require.NoError(t, svc.Delete(hostel.ID))

	var count int64
	db.Model(&models.CategoryAssignment{}).Where("category_id = ?", hostel.ID).Count(&count)
	assert.Zero(t, count)

	// Complaints keep their (now dangling) category name.
	var stored models.Complaint
	require.NoError(t, db.First(&stored, "id = ?", complaint.ID).Error)
	assert.Equal(t, "Hostel", stored.Category)

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrCategoryNotFound)
}
