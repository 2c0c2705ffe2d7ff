package middleware

import (
	"log"
	"time"

	"staffmis_backend/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaults creates the default admin account and office location on
// a fresh database. Existing rows are left untouched.
func SeedDefaults() error {
	adminEmail := GetEnv("ADMIN_EMAIL", "admin@ykvm.local")

	var existing model.User
	err := DBConn.Where("email = ?", adminEmail).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		hashed, err := bcrypt.GenerateFromPassword(
			[]byte(GetEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		now := time.Now()
		admin := model.User{
			Name:     "Admin",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		err = DBConn.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			profile := model.StaffProfile{
				UserID:      admin.ID,
				Designation: "System Administrator",
				Department:  "IT",
				JoiningDate: &now,
				Status:      "Active",
			}
			return tx.Create(&profile).Error
		})
		if err != nil {
			return err
		}
		log.Println("Default admin user created:", adminEmail)
	} else if err != nil {
		return err
	}

	var officeCount int64
	if err := DBConn.Model(&model.OfficeLocation{}).Count(&officeCount).Error; err != nil {
		return err
	}
	if officeCount == 0 {
		office := model.OfficeLocation{
			Name:         "Head Office",
			Lat:          26.8467,
			Lng:          80.9462,
			RadiusMeters: 10,
			Active:       true,
		}
		if err := DBConn.Create(&office).Error; err != nil {
			return err
		}
		log.Println("Default office location created")
	}

	return nil
}
