package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// FallbackClientName labels records whose client was deleted.
const FallbackClientName = "Cliente"

// ClientService manages the customer book and appointments.
type ClientService struct {
	clients      *repositories.ClientRepository
	appointments *repositories.AppointmentRepository
	validate     *validator.Validate
}

func NewClientService(clients *repositories.ClientRepository, appointments *repositories.AppointmentRepository) *ClientService {
	return &ClientService{
		clients:      clients,
		appointments: appointments,
		validate:     validator.New(),
	}
}

type ClientInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *ClientService) Create(ctx context.Context, input ClientInput) (*models.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	client := &models.Client{
		ID:      models.NewID(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id string, input ClientInput) (*models.Client, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return nil, err
	}
	client := &models.Client{
		ID:      id,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// Delete removes the client only. Quotes and receipts keep the dangling id
// and render with a placeholder name.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

type AppointmentInput struct {
	ServiceID string `json:"serviceId"`
	ClientID  string `json:"clientId" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Notes     string `json:"notes"`
}

func (s *ClientService) CreateAppointment(ctx context.Context, input AppointmentInput) (*models.Appointment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid appointment: %w", err)
	}
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	appointment := &models.Appointment{
		ID:        models.NewID(),
		ServiceID: input.ServiceID,
		ClientID:  input.ClientID,
		Date:      input.Date,
		Time:      input.Time,
		Notes:     input.Notes,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *ClientService) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *ClientService) DeleteAppointment(ctx context.Context, id string) error {
	return s.appointments.Delete(ctx, id)
}
