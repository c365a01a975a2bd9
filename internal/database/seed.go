package database

import (
	"errors"
	"log/slog"

	"github.com/corems/corems-backend/internal/config"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Campus categories created on first boot. Superadmins can add or remove
// categories at runtime; this only covers the empty-database case.
var defaultCategories = []models.Category{
	{Name: "Hostel", Description: "Hostel and accommodation issues"},
	{Name: "Canteen", Description: "Canteen and food services"},
	{Name: "Academic", Description: "Courses, exams and academic matters"},
	{Name: "Sports", Description: "Sports facilities and events"},
	{Name: "Maintenance", Description: "Buildings, electricity and plumbing"},
	{Name: "Library", Description: "Library services and resources"},
	{Name: "Security", Description: "Campus security"},
	{Name: "Documentation", Description: "Certificates and records"},
}

// Seed creates the default categories and, when configured, a bootstrap
// superadmin account. Existing rows are left untouched.
func Seed(db *gorm.DB, cfg *config.Config) error {
	for _, cat := range defaultCategories {
		var existing models.Category
		err := db.Where("name = ?", cat.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		cat.ID = uuid.New()
		if err := db.Create(&cat).Error; err != nil {
			return err
		}
	}

	if cfg.SuperadminUsername == "" || cfg.SuperadminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.SuperadminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperadminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:       uuid.New(),
		Username: cfg.SuperadminUsername,
		Password: string(hash),
		Role:     models.RoleSuperadmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	slog.Info("bootstrap superadmin created", "username", admin.Username)
	return nil
}
