package handler

import (
	"context"

	"github.com/iliyamo/residence-hall-booking/internal/model"
	"github.com/iliyamo/residence-hall-booking/internal/repository"
)

// The handlers hold their persistence as narrow interfaces, the same way
// they hold directory.Service: the MySQL repositories satisfy them in
// production and in-memory fakes satisfy them in tests.

// FacilityStore is the persistence capability behind the facility routes.
type FacilityStore interface {
	Create(ctx context.Context, f *model.Facility) error
	GetByID(ctx context.Context, id uint64) (*model.Facility, error)
	List(ctx context.Context) ([]model.Facility, error)
	Delete(ctx context.Context, id uint64) error
}

// BookingStore is the persistence capability behind the booking routes and
// the facility detail's bookings include.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ListByFacility(ctx context.Context, facilityID uint64) ([]model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	Delete(ctx context.Context, id uint64) error
}

// EventStore is the persistence capability behind the event routes.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	GetByID(ctx context.Context, id uint64) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	Update(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id uint64) error
}

var (
	_ FacilityStore = (*repository.FacilityRepo)(nil)
	_ BookingStore  = (*repository.BookingRepo)(nil)
	_ EventStore    = (*repository.EventRepo)(nil)
)
