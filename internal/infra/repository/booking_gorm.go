package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/fswbarber/booking-api/internal/domain/booking"
	"github.com/fswbarber/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service.Barbershop").
		Preload("User").
		First(&bk, id).Error; err != nil {
		return nil, err
	}

	return &bk, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if filter.BarbershopID != 0 {
		q = q.Joins("JOIN services ON services.id = bookings.service_id").
			Where("services.barbershop_id = ?", filter.BarbershopID)
	}

	if filter.From != nil && filter.To != nil {
		q = q.Where("bookings.date >= ? AND bookings.date <= ?", *filter.From, *filter.To)
	}

	var bookings []models.Booking
	if err := q.
		Preload("Service.Barbershop").
		Preload("User").
		Order("bookings.date DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CancelBooking(
	ctx context.Context,
	bookingID uint,
	entry *models.Log,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Booking{}, bookingID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// outro chamador cancelou no meio do caminho
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
