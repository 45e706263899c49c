package repositories

import (
	"context"
	"fmt"

	"gestor-backend/internal/models"
	"gestor-backend/internal/store"
)

type AppointmentRepository struct {
	Store store.Store
}

func NewAppointmentRepository(s store.Store) *AppointmentRepository {
	return &AppointmentRepository{Store: s}
}

func (r *AppointmentRepository) List(ctx context.Context) ([]*models.Appointment, error) {
	appointments := []*models.Appointment{}
	if err := loadInto(ctx, r.Store, store.KeyAppointments, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	appointments, err := r.List(ctx)
	if err != nil {
		return err
	}
	appointments = append([]*models.Appointment{appointment}, appointments...)
	return saveAll(ctx, r.Store, store.KeyAppointments, appointments)
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	appointments, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, a := range appointments {
		if a.ID == appointment.ID {
			appointments[i] = appointment
			return saveAll(ctx, r.Store, store.KeyAppointments, appointments)
		}
	}
	return fmt.Errorf("appointment %s not found", appointment.ID)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	appointments, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := appointments[:0]
	for _, a := range appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return saveAll(ctx, r.Store, store.KeyAppointments, kept)
}
