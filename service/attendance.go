package service

import (
	"bytes"
	"time"

	"staffmis_backend/geo"
	"staffmis_backend/model"
	"staffmis_backend/storage"

	"github.com/disintegration/imaging"
	"gorm.io/gorm"

	// Registers the webp decoder so webp selfies pass image validation.
	_ "github.com/chai2010/webp"
)

// AttendanceService records geofence-validated attendance submissions.
type AttendanceService struct {
	DB    *gorm.DB
	Store *storage.LocalStorage
}

// ActiveOffice resolves the office location used for the geofence check.
// When several locations are flagged active the one nearest to the
// submission wins, which keeps the choice deterministic.
func (s *AttendanceService) ActiveOffice(lat, lng float64) (*model.OfficeLocation, error) {
	var offices []model.OfficeLocation
	if err := s.DB.Where("active = ?", true).Find(&offices).Error; err != nil {
		return nil, err
	}
	if len(offices) == 0 {
		return nil, ErrOfficeNotConfigured
	}

	best := &offices[0]
	bestDist := geo.Haversine(lat, lng, best.Lat, best.Lng)
	for i := 1; i < len(offices); i++ {
		if d := geo.Haversine(lat, lng, offices[i].Lat, offices[i].Lng); d < bestDist {
			best, bestDist = &offices[i], d
		}
	}
	return best, nil
}

// Record validates the selfie and coordinates, runs the geofence check
// against the active office, stores the proof and creates an immutable
// PRESENT attendance row. No record is created when any step fails.
func (s *AttendanceService) Record(userID uint, selfie []byte, ext string, lat, lng float64, deviceInfo string) (*model.Attendance, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, &ValidationError{Msg: "coordinates out of range"}
	}
	if len(selfie) == 0 {
		return nil, &ValidationError{Msg: "selfie is required"}
	}
	if _, err := imaging.Decode(bytes.NewReader(selfie)); err != nil {
		return nil, &ValidationError{Msg: "selfie is not a valid image"}
	}

	var staff model.StaffProfile
	if err := s.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	office, err := s.ActiveOffice(lat, lng)
	if err != nil {
		return nil, err
	}

	within, distance := geo.WithinFence(lat, lng, office.Lat, office.Lng, office.RadiusMeters)
	if !within {
		return nil, &GeofenceError{Distance: distance, Radius: office.RadiusMeters}
	}

	fileName, err := s.Store.SaveFile(selfie, ext)
	if err != nil {
		return nil, err
	}

	record := model.Attendance{
		StaffID:          staff.ID,
		Datetime:         time.Now(),
		SelfieFile:       fileName,
		Lat:              lat,
		Lng:              lng,
		DistanceToOffice: distance,
		Status:           model.AttendancePresent,
		DeviceInfo:       deviceInfo,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, err
	}

	LogAction(s.DB, userID, ActionAttendanceSubmit, "Attendance", record.ID, map[string]interface{}{
		"distance": distance,
	})

	return &record, nil
}

// ListForStaff returns the staff member's own latest submissions.
func (s *AttendanceService) ListForStaff(userID uint, limit int) ([]model.Attendance, error) {
	var staff model.StaffProfile
	if err := s.DB.Where("user_id = ?", userID).First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []model.Attendance{}, nil
		}
		return nil, err
	}

	var records []model.Attendance
	err := s.DB.Where("staff_id = ?", staff.ID).
		Order("datetime DESC").Limit(limit).Find(&records).Error
	return records, err
}

// ListAll returns the latest submissions across all staff for admins.
func (s *AttendanceService) ListAll(limit int) ([]model.Attendance, error) {
	var records []model.Attendance
	err := s.DB.Preload("Staff").Preload("Staff.User").
		Order("datetime DESC").Limit(limit).Find(&records).Error
	return records, err
}
