package services

import (
	"testing"

	"github.com/corems/corems-backend/internal/dto"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newComplaintService(db *gorm.DB) *ComplaintService {
	return NewComplaintService(db, NewVisibilityService(db), NewContentFilter())
}

func TestFile_CreatesPendingComplaint(t *testing.T) {
	db := setupDB(t)
	createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	svc := newComplaintService(db)

	complaint, err := svc.File(author.ID, &dto.CreateComplaintRequest{
		Title:       "AC broken",
		Description: "The AC in room 12 has been dead for a week",
		Category:    "Hostel",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, complaint.Status)
	assert.Equal(t, author.ID, complaint.UserID)
	assert.Nil(t, complaint.UpdatedByAdmin)

	var stored models.Complaint
	require.NoError(t, db.First(&stored, "id = ?", complaint.ID).Error)
	assert.Equal(t, "AC broken", stored.Title)
}

func TestFile_Validation(t *testing.T) {
	db := setupDB(t)
	createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	svc := newComplaintService(db)

	tests := []struct {
		name string
		req  dto.CreateComplaintRequest
	}{
		{"blank title", dto.CreateComplaintRequest{Title: "  ", Description: "d", Category: "Hostel"}},
		{"blank description", dto.CreateComplaintRequest{Title: "t", Description: "", Category: "Hostel"}},
		{"blank category", dto.CreateComplaintRequest{Title: "t", Description: "d", Category: ""}},
		{"unknown category", dto.CreateComplaintRequest{Title: "t", Description: "d", Category: "Parking"}},
		{"profane text", dto.CreateComplaintRequest{Title: "this is bullshit", Description: "d", Category: "Hostel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.File(author.ID, &tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int64
	db.Model(&models.Complaint{}).Count(&count)
	assert.Zero(t, count, "rejected filings must not be stored")
}

func TestUpdateStatus_AtomicPair(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	update, err := svc.UpdateStatus(admin.ID, complaint.ID, models.StatusResolved, "Fixed")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, update.Status)
	assert.Equal(t, "Fixed", update.UpdateText)
	assert.Equal(t, admin.ID, update.AdminID)

	// Consistency law: current status equals the audit row's status, and the
	// accepted call produced exactly one audit row.
	var stored models.Complaint
	require.NoError(t, db.First(&stored, "id = ?", complaint.ID).Error)
	assert.Equal(t, update.Status, stored.Status)
	require.NotNil(t, stored.UpdatedByAdmin)
	assert.Equal(t, admin.ID, *stored.UpdatedByAdmin)

	var history []models.StatusUpdate
	require.NoError(t, db.Where("complaint_id = ?", complaint.ID).Find(&history).Error)
	assert.Len(t, history, 1)
}

func TestUpdateStatus_ForbiddenLeavesNoAuditRow(t *testing.T) {
	db := setupDB(t)
	createCategory(t, db, "Hostel")
	library := createCategory(t, db, "Library")
	author := createUser(t, db, "alice", models.RoleUser)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	libraryAdmin := createUser(t, db, "librarian", models.RoleAdmin)
	assignCategory(t, db, libraryAdmin, library)
	observer := createUser(t, db, "watcher", models.RoleObserver)

	for _, caller := range []*models.User{libraryAdmin, observer, author} {
		_, err := svc.UpdateStatus(caller.ID, complaint.ID, models.StatusResolved, "nope")
		assert.ErrorIs(t, err, ErrForbidden, "caller %s", caller.Username)
	}

	var stored models.Complaint
	require.NoError(t, db.First(&stored, "id = ?", complaint.ID).Error)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Nil(t, stored.UpdatedByAdmin)

	var count int64
	db.Model(&models.StatusUpdate{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateStatus_Errors(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	_, err := svc.UpdateStatus(admin.ID, uuid.New(), models.StatusResolved, "x")
	assert.ErrorIs(t, err, ErrComplaintNotFound)

	_, err = svc.UpdateStatus(uuid.New(), complaint.ID, models.StatusResolved, "x")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.UpdateStatus(admin.ID, complaint.ID, "Escalated", "x")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(admin.ID, complaint.ID, models.StatusResolved, "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatus_TerminalStatesReject(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	_, err := svc.UpdateStatus(admin.ID, complaint.ID, models.StatusInProgress, "Looking into it")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(admin.ID, complaint.ID, models.StatusResolved, "Fixed")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(admin.ID, complaint.ID, models.StatusInProgress, "Reopen")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Two accepted calls, two audit rows.
	var count int64
	db.Model(&models.StatusUpdate{}).Where("complaint_id = ?", complaint.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestHistory_NewestFirstAndVisibilityGated(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	stranger := createUser(t, db, "bob", models.RoleUser)
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	_, err := svc.UpdateStatus(admin.ID, complaint.ID, models.StatusInProgress, "On it")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(admin.ID, complaint.ID, models.StatusResolved, "Fixed")
	require.NoError(t, err)

	history, err := svc.History(author.ID, complaint.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusResolved, history[0].Status)
	assert.Equal(t, models.StatusInProgress, history[1].Status)

	// Another user's complaint is indistinguishable from a missing one.
	_, err = svc.History(stranger.ID, complaint.ID)
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestGet_ResolvesAdminUsernameAndScopesVisibility(t *testing.T) {
	db := setupDB(t)
	hostel := createCategory(t, db, "Hostel")
	author := createUser(t, db, "alice", models.RoleUser)
	stranger := createUser(t, db, "bob", models.RoleUser)
	admin := createUser(t, db, "warden", models.RoleAdmin)
	assignCategory(t, db, admin, hostel)
	complaint := createComplaint(t, db, author, "AC broken", "Hostel")
	svc := newComplaintService(db)

	detail, err := svc.Get(author.ID, complaint.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.AdminUsername)

	_, err = svc.UpdateStatus(admin.ID, complaint.ID, models.StatusResolved, "Fixed")
	require.NoError(t, err)

	detail, err = svc.Get(author.ID, complaint.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, detail.Status)
	assert.Equal(t, "warden", detail.AdminUsername)

	_, err = svc.Get(stranger.ID, complaint.ID)
	assert.ErrorIs(t, err, ErrComplaintNotFound)
}

func TestSearch_ScopedAndTokenized(t *testing.T) {
	db := setupDB(t)
	createCategory(t, db, "Hostel")
	createCategory(t, db, "Library")
	alice := createUser(t, db, "alice", models.RoleUser)
	bob := createUser(t, db, "bob", models.RoleUser)
	createComplaint(t, db, alice, "Broken AC unit", "Hostel")
	createComplaint(t, db, alice, "Flickering light", "Hostel")
	createComplaint(t, db, bob, "Broken chair", "Library")
	svc := newComplaintService(db)

	// A user only finds their own complaints.
	results, err := svc.Search(alice.ID, "broken", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Broken AC unit", results[0].Title)

	// An observer searches everything, any term matches.
	observer := createUser(t, db, "watcher", models.RoleObserver)
	results, err = svc.Search(observer.ID, "broken light", 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = svc.Search(observer.ID, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}
