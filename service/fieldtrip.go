package service

import (
	"time"

	"staffmis_backend/model"

	"gorm.io/gorm"
)

// FieldTripService drives the trip state machine
// NONE -> ONGOING -> {COMPLETED | CANCELLED}.
type FieldTripService struct {
	DB *gorm.DB
}

// Start opens a new ONGOING trip for the staff member. The insert is a
// single conditional write so two concurrent starts cannot both succeed;
// on postgres the partial unique index backs this up.
func (s *FieldTripService) Start(staffID uint, lat, lng float64, startOdometer *float64) (*model.FieldTrip, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, &ValidationError{Msg: "coordinates out of range"}
	}

	now := time.Now()
	res := s.DB.Exec(
		`INSERT INTO field_trips
		   (created_at, updated_at, staff_id, start_time, start_lat, start_lng, start_odometer, status)
		 SELECT ?, ?, ?, ?, ?, ?, ?, ?
		 WHERE NOT EXISTS (
		   SELECT 1 FROM field_trips
		   WHERE staff_id = ? AND status = ? AND deleted_at IS NULL
		 )`,
		now, now, staffID, now, lat, lng, startOdometer, model.TripOngoing,
		staffID, model.TripOngoing,
	)
	if res.Error != nil {
		// A unique violation from the partial index means a concurrent
		// start won the race. Anything else is a real DB failure.
		if isUniqueViolation(res.Error) {
			return nil, ErrTripOngoing
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrTripOngoing
	}

	var trip model.FieldTrip
	if err := s.DB.Where("staff_id = ? AND status = ?", staffID, model.TripOngoing).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// End completes the caller's ONGOING trip, recording the end position
// and, when both odometer readings exist, the traveled distance.
// computedKm is clamped to zero so a misentered or rolled-over odometer
// never yields a negative distance.
func (s *FieldTripService) End(staffID, tripID uint, lat, lng float64, endOdometer *float64) (*model.FieldTrip, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, &ValidationError{Msg: "coordinates out of range"}
	}

	var trip model.FieldTrip
	err := s.DB.Where("id = ? AND staff_id = ? AND status = ?", tripID, staffID, model.TripOngoing).
		First(&trip).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	var computedKm *float64
	if endOdometer != nil && trip.StartOdometer != nil {
		km := *endOdometer - *trip.StartOdometer
		if km < 0 {
			km = 0
		}
		computedKm = &km
	}

	now := time.Now()
	res := s.DB.Model(&model.FieldTrip{}).
		Where("id = ? AND status = ?", tripID, model.TripOngoing).
		Updates(map[string]interface{}{
			"end_time":     now,
			"end_lat":      lat,
			"end_lng":      lng,
			"end_odometer": endOdometer,
			"computed_km":  computedKm,
			"status":       model.TripCompleted,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost a race with another end call.
		return nil, ErrTripNotFound
	}

	if err := s.DB.First(&trip, tripID).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListForStaff returns the staff member's trips, newest first.
func (s *FieldTripService) ListForStaff(staffID uint) ([]model.FieldTrip, error) {
	var trips []model.FieldTrip
	err := s.DB.Where("staff_id = ?", staffID).
		Order("start_time DESC").Find(&trips).Error
	return trips, err
}

// ListAll returns every trip with staff details for admins.
func (s *FieldTripService) ListAll() ([]model.FieldTrip, error) {
	var trips []model.FieldTrip
	err := s.DB.Preload("Staff").Preload("Staff.User").
		Order("start_time DESC").Find(&trips).Error
	return trips, err
}
