package service

import (
	"context"
	"strings"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"
	"kapm/internal/validation"
)

// ClientService handles the firm's client registry.
type ClientService struct {
	clients repository.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(clients repository.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// ClientInput carries client create/update fields.
type ClientInput struct {
	Actor      policy.Actor
	ClientID   uint
	Name       string            `json:"name"`
	ClientType models.ClientType `json:"client_type"`
	NIP        string            `json:"nip"`
	REGON      string            `json:"regon"`
	KRS        string            `json:"krs"`
	PESEL      string            `json:"pesel"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	PostalCode string            `json:"postal_code"`
	Notes      string            `json:"notes"`
	IsActive   *bool             `json:"is_active"`
}

func (s *ClientService) validate(input ClientInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return models.NewValidationError("Name is required")
	}
	if !input.ClientType.Valid() {
		return models.NewValidationError("Invalid client type")
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return models.NewValidationError(err.Error())
	}
	// Registry identifiers cross the person/company line.
	if input.ClientType == models.ClientTypeIndividual && (input.KRS != "" || input.REGON != "") {
		return models.NewValidationError("Individuals do not carry KRS or REGON numbers")
	}
	if input.ClientType == models.ClientTypeCompany && input.PESEL != "" {
		return models.NewValidationError("Companies do not carry a PESEL number")
	}
	return nil
}

// CreateClient registers a client. Staff only.
func (s *ClientService) CreateClient(ctx context.Context, input ClientInput) (*models.Client, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage clients")
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	client := &models.Client{
		Name:       strings.TrimSpace(input.Name),
		ClientType: input.ClientType,
		NIP:        input.NIP,
		REGON:      input.REGON,
		KRS:        input.KRS,
		PESEL:      input.PESEL,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		City:       input.City,
		PostalCode: input.PostalCode,
		Notes:      input.Notes,
		IsActive:   active,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, models.NewInternalError(err)
	}
	return client, nil
}

// UpdateClient replaces a client's editable fields.
func (s *ClientService) UpdateClient(ctx context.Context, input ClientInput) (*models.Client, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage clients")
	}
	client, err := s.clients.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, notFoundOr(err, "Client", input.ClientID)
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	client.Name = strings.TrimSpace(input.Name)
	client.ClientType = input.ClientType
	client.NIP = input.NIP
	client.REGON = input.REGON
	client.KRS = input.KRS
	client.PESEL = input.PESEL
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address
	client.City = input.City
	client.PostalCode = input.PostalCode
	client.Notes = input.Notes
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, models.NewInternalError(err)
	}
	return client, nil
}

// DeactivateClient flags a client inactive instead of deleting them, so
// their case history stays intact.
func (s *ClientService) DeactivateClient(ctx context.Context, actor policy.Actor, id uint) (*models.Client, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot manage clients")
	}
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Client", id)
	}
	client.IsActive = false
	if err := s.clients.Update(ctx, client); err != nil {
		return nil, models.NewInternalError(err)
	}
	return client, nil
}

// GetClient returns one client.
func (s *ClientService) GetClient(ctx context.Context, actor policy.Actor, id uint) (*models.Client, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view clients")
	}
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Client", id)
	}
	return client, nil
}

// ListClients returns the client registry.
func (s *ClientService) ListClients(ctx context.Context, actor policy.Actor, activeOnly bool, limit, offset int) ([]*models.Client, int64, error) {
	if !policy.CanManageCases(actor) {
		return nil, 0, models.NewForbiddenError("You cannot view clients")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	clients, total, err := s.clients.List(ctx, activeOnly, limit, offset)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return clients, total, nil
}
