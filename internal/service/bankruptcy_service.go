package service

import (
	"context"
	"strings"
	"time"

	"kapm/internal/models"
	"kapm/internal/observability"
	"kapm/internal/policy"
	"kapm/internal/repository"
)

// BankruptcyService handles bankruptcy case records.
type BankruptcyService struct {
	cases   repository.BankruptcyRepository
	clients repository.ClientRepository
}

// NewBankruptcyService creates a new BankruptcyService.
func NewBankruptcyService(cases repository.BankruptcyRepository, clients repository.ClientRepository) *BankruptcyService {
	return &BankruptcyService{cases: cases, clients: clients}
}

// CreateBankruptcyCaseInput carries the fields needed to open a case record.
type CreateBankruptcyCaseInput struct {
	Actor            policy.Actor
	CaseNumber       string                    `json:"case_number"`
	ClientID         uint                      `json:"client_id"`
	CaseType         models.BankruptcyCaseType `json:"case_type"`
	Status           models.BankruptcyStatus   `json:"status"`
	Court            string                    `json:"court"`
	Judge            string                    `json:"judge"`
	Trustee          string                    `json:"trustee"`
	FilingDate       *time.Time                `json:"filing_date"`
	DebtAmount       *float64                  `json:"debt_amount"`
	AssetsValue      *float64                  `json:"assets_value"`
	Description      string                    `json:"description"`
	Notes            string                    `json:"notes"`
	AssignedLawyerID *uint                     `json:"assigned_lawyer_id"`
}

// CreateCase opens a bankruptcy case record. The case number is the
// court's docket number and must be unique across the firm.
func (s *BankruptcyService) CreateCase(ctx context.Context, input CreateBankruptcyCaseInput) (*models.BankruptcyCase, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if strings.TrimSpace(input.CaseNumber) == "" {
		return nil, models.NewValidationError("Case number is required")
	}
	if !input.CaseType.Valid() {
		return nil, models.NewValidationError("Invalid case type")
	}
	status := input.Status
	if status == "" {
		status = models.BankruptcyStatusPreparation
	}
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid case status")
	}
	if strings.TrimSpace(input.Court) == "" {
		return nil, models.NewValidationError("Court is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if input.DebtAmount != nil && *input.DebtAmount < 0 {
		return nil, models.NewValidationError("Debt amount cannot be negative")
	}

	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		return nil, notFoundOr(err, "Client", input.ClientID)
	}
	exists, err := s.cases.CaseNumberExists(ctx, input.CaseNumber)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if exists {
		return nil, models.NewValidationError("Case number already registered")
	}

	bc := &models.BankruptcyCase{
		CaseNumber:       strings.TrimSpace(input.CaseNumber),
		ClientID:         input.ClientID,
		CaseType:         input.CaseType,
		Status:           status,
		Court:            input.Court,
		Judge:            input.Judge,
		Trustee:          input.Trustee,
		FilingDate:       input.FilingDate,
		DebtAmount:       input.DebtAmount,
		AssetsValue:      input.AssetsValue,
		Description:      input.Description,
		Notes:            input.Notes,
		AssignedLawyerID: input.AssignedLawyerID,
	}
	if err := s.cases.Create(ctx, bc); err != nil {
		return nil, models.NewInternalError(err)
	}
	return bc, nil
}

// UpdateBankruptcyCaseInput carries partial updates. The case number is
// deliberately absent: docket numbers never change.
type UpdateBankruptcyCaseInput struct {
	Actor            policy.Actor
	CaseID           uint
	Status           *models.BankruptcyStatus `json:"status"`
	Court            *string                  `json:"court"`
	Judge            *string                  `json:"judge"`
	Trustee          *string                  `json:"trustee"`
	FilingDate       *time.Time               `json:"filing_date"`
	DeclarationDate  *time.Time               `json:"declaration_date"`
	CompletionDate   *time.Time               `json:"completion_date"`
	DebtAmount       *float64                 `json:"debt_amount"`
	AssetsValue      *float64                 `json:"assets_value"`
	Description      *string                  `json:"description"`
	Notes            *string                  `json:"notes"`
	AssignedLawyerID *uint                    `json:"assigned_lawyer_id"`
}

// UpdateCase applies partial updates. Any status may be assigned
// directly; the stages form an implied progression but courts do move
// cases backwards.
func (s *BankruptcyService) UpdateCase(ctx context.Context, input UpdateBankruptcyCaseInput) (*models.BankruptcyCase, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	bc, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, notFoundOr(err, "Bankruptcy case", input.CaseID)
	}

	statusChanged := false
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, models.NewValidationError("Invalid case status")
		}
		statusChanged = *input.Status != bc.Status
		bc.Status = *input.Status
	}
	if input.Court != nil {
		if strings.TrimSpace(*input.Court) == "" {
			return nil, models.NewValidationError("Court cannot be empty")
		}
		bc.Court = *input.Court
	}
	if input.Judge != nil {
		bc.Judge = *input.Judge
	}
	if input.Trustee != nil {
		bc.Trustee = *input.Trustee
	}
	if input.FilingDate != nil {
		bc.FilingDate = input.FilingDate
	}
	if input.DeclarationDate != nil {
		bc.DeclarationDate = input.DeclarationDate
	}
	if input.CompletionDate != nil {
		bc.CompletionDate = input.CompletionDate
	}
	if input.DebtAmount != nil {
		if *input.DebtAmount < 0 {
			return nil, models.NewValidationError("Debt amount cannot be negative")
		}
		bc.DebtAmount = input.DebtAmount
	}
	if input.AssetsValue != nil {
		bc.AssetsValue = input.AssetsValue
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, models.NewValidationError("Description cannot be empty")
		}
		bc.Description = *input.Description
	}
	if input.Notes != nil {
		bc.Notes = *input.Notes
	}
	if input.AssignedLawyerID != nil {
		bc.AssignedLawyerID = input.AssignedLawyerID
	}

	if err := s.cases.Update(ctx, bc); err != nil {
		return nil, models.NewInternalError(err)
	}
	if statusChanged {
		observability.CaseStatusChanges.WithLabelValues("bankruptcy").Inc()
	}
	return bc, nil
}

// GetCase returns a case with its client, creditors, timeline, and
// consumer details preloaded.
func (s *BankruptcyService) GetCase(ctx context.Context, actor policy.Actor, id uint) (*models.BankruptcyCase, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	bc, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Bankruptcy case", id)
	}
	return bc, nil
}

// ListCasesInput narrows the case listing.
type ListCasesInput struct {
	Actor    policy.Actor
	ClientID uint
	Status   string
	LawyerID uint
	Limit    int
	Offset   int
}

// ListCases returns the bankruptcy case listing.
func (s *BankruptcyService) ListCases(ctx context.Context, input ListCasesInput) ([]*models.BankruptcyCase, int64, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, 0, models.NewForbiddenError("You cannot view case records")
	}
	if input.Status != "" && !models.BankruptcyStatus(input.Status).Valid() {
		return nil, 0, models.NewValidationError("Invalid case status")
	}
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	cases, total, err := s.cases.List(ctx, repository.CaseFilter{
		ClientID: input.ClientID,
		Status:   input.Status,
		LawyerID: input.LawyerID,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return cases, total, nil
}

// DeleteCase removes a case together with its creditors, events, and
// consumer details. Admin only; lawyers archive by status instead.
func (s *BankruptcyService) DeleteCase(ctx context.Context, actor policy.Actor, id uint) error {
	if !actor.IsSuperuser && actor.Role != models.RoleAdmin {
		return models.NewForbiddenError("Only administrators can delete case records")
	}
	if _, err := s.cases.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Bankruptcy case", id)
	}
	if err := s.cases.DeleteCascade(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CreditorInput carries creditor create/update fields.
type CreditorInput struct {
	Actor               policy.Actor
	CaseID              uint
	CreditorID          uint
	Name                string              `json:"name"`
	CreditorType        models.CreditorType `json:"creditor_type"`
	ClaimAmount         float64             `json:"claim_amount"`
	ClaimCategory       int                 `json:"claim_category"`
	IsSecured           bool                `json:"is_secured"`
	SecurityDescription string              `json:"security_description"`
	ContactPerson       string              `json:"contact_person"`
	ContactEmail        string              `json:"contact_email"`
	ContactPhone        string              `json:"contact_phone"`
}

func validateCreditorInput(input CreditorInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return models.NewValidationError("Creditor name is required")
	}
	if !input.CreditorType.Valid() {
		return models.NewValidationError("Invalid creditor type")
	}
	if input.ClaimAmount < 0 {
		return models.NewValidationError("Claim amount cannot be negative")
	}
	if !models.ValidClaimCategory(input.ClaimCategory) {
		return models.NewValidationError("Claim category must be between 1 and 4")
	}
	return nil
}

// AddCreditor registers a creditor's claim on a case.
func (s *BankruptcyService) AddCreditor(ctx context.Context, input CreditorInput) (*models.Creditor, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if err := validateCreditorInput(input); err != nil {
		return nil, err
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, notFoundOr(err, "Bankruptcy case", input.CaseID)
	}

	creditor := &models.Creditor{
		BankruptcyCaseID:    input.CaseID,
		Name:                strings.TrimSpace(input.Name),
		CreditorType:        input.CreditorType,
		ClaimAmount:         input.ClaimAmount,
		ClaimCategory:       input.ClaimCategory,
		IsSecured:           input.IsSecured,
		SecurityDescription: input.SecurityDescription,
		ContactPerson:       input.ContactPerson,
		ContactEmail:        input.ContactEmail,
		ContactPhone:        input.ContactPhone,
	}
	if err := s.cases.AddCreditor(ctx, creditor); err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditor, nil
}

// UpdateCreditor replaces a creditor's claim fields. The creditor stays
// bound to its original case.
func (s *BankruptcyService) UpdateCreditor(ctx context.Context, input CreditorInput) (*models.Creditor, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	creditor, err := s.cases.GetCreditor(ctx, input.CreditorID)
	if err != nil {
		return nil, notFoundOr(err, "Creditor", input.CreditorID)
	}
	if input.CaseID != 0 && creditor.BankruptcyCaseID != input.CaseID {
		return nil, models.NewNotFoundError("Creditor", input.CreditorID)
	}
	if err := validateCreditorInput(input); err != nil {
		return nil, err
	}

	creditor.Name = strings.TrimSpace(input.Name)
	creditor.CreditorType = input.CreditorType
	creditor.ClaimAmount = input.ClaimAmount
	creditor.ClaimCategory = input.ClaimCategory
	creditor.IsSecured = input.IsSecured
	creditor.SecurityDescription = input.SecurityDescription
	creditor.ContactPerson = input.ContactPerson
	creditor.ContactEmail = input.ContactEmail
	creditor.ContactPhone = input.ContactPhone

	if err := s.cases.UpdateCreditor(ctx, creditor); err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditor, nil
}

// DeleteCreditor removes a creditor from a case.
func (s *BankruptcyService) DeleteCreditor(ctx context.Context, actor policy.Actor, caseID, creditorID uint) error {
	if !policy.CanManageCases(actor) {
		return models.NewForbiddenError("You cannot manage case records")
	}
	creditor, err := s.cases.GetCreditor(ctx, creditorID)
	if err != nil {
		return notFoundOr(err, "Creditor", creditorID)
	}
	if caseID != 0 && creditor.BankruptcyCaseID != caseID {
		return models.NewNotFoundError("Creditor", creditorID)
	}
	if err := s.cases.DeleteCreditor(ctx, creditorID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListCreditors returns a case's creditors, largest claims first.
func (s *BankruptcyService) ListCreditors(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.Creditor, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	creditors, err := s.cases.ListCreditors(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditors, nil
}

// BankruptcyEventInput carries a timeline entry.
type BankruptcyEventInput struct {
	Actor        policy.Actor
	CaseID       uint
	EventType    models.BankruptcyEventType `json:"event_type"`
	EventDate    time.Time                  `json:"event_date"`
	Title        string                     `json:"title"`
	Description  string                     `json:"description"`
	IsPublic     bool                       `json:"is_public"`
	ReminderDate *time.Time                 `json:"reminder_date"`
}

// AddEvent appends an entry to a case's timeline. The timeline is
// append-only; corrections happen with further entries.
func (s *BankruptcyService) AddEvent(ctx context.Context, input BankruptcyEventInput) (*models.BankruptcyEvent, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if !input.EventType.Valid() {
		return nil, models.NewValidationError("Invalid event type")
	}
	if input.EventDate.IsZero() {
		return nil, models.NewValidationError("Event date is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, models.NewValidationError("Description is required")
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, notFoundOr(err, "Bankruptcy case", input.CaseID)
	}

	createdBy := input.Actor.ID
	event := &models.BankruptcyEvent{
		BankruptcyCaseID: input.CaseID,
		EventType:        input.EventType,
		EventDate:        input.EventDate,
		Title:            input.Title,
		Description:      input.Description,
		IsPublic:         input.IsPublic,
		ReminderDate:     input.ReminderDate,
		CreatedByID:      &createdBy,
	}
	if err := s.cases.AddEvent(ctx, event); err != nil {
		return nil, models.NewInternalError(err)
	}
	return event, nil
}

// ListEvents returns a case's timeline, newest first.
func (s *BankruptcyService) ListEvents(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.BankruptcyEvent, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	events, err := s.cases.ListEvents(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

// ConsumerDetailsInput carries the consumer-specific extension fields.
type ConsumerDetailsInput struct {
	Actor                  policy.Actor
	CaseID                 uint
	MonthlyIncome          float64    `json:"monthly_income"`
	FamilySize             int        `json:"family_size"`
	HasRealEstate          bool       `json:"has_real_estate"`
	RepaymentPlanDuration  *int       `json:"repayment_plan_duration"`
	RepaymentPercentage    *float64   `json:"repayment_percentage"`
	ReasonForDebt          string     `json:"reason_for_debt"`
	PreviousBankruptcy     bool       `json:"previous_bankruptcy"`
	PreviousBankruptcyDate *time.Time `json:"previous_bankruptcy_date"`
}

// UpsertConsumerDetails sets or replaces the consumer extension of a
// case. Only consumer cases carry these details.
func (s *BankruptcyService) UpsertConsumerDetails(ctx context.Context, input ConsumerDetailsInput) (*models.ConsumerBankruptcyDetails, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	bc, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, notFoundOr(err, "Bankruptcy case", input.CaseID)
	}
	if bc.CaseType != models.BankruptcyTypeConsumer {
		return nil, models.NewValidationError("Consumer details only apply to consumer cases")
	}
	if input.MonthlyIncome < 0 {
		return nil, models.NewValidationError("Monthly income cannot be negative")
	}
	if input.FamilySize < 1 {
		return nil, models.NewValidationError("Family size must be at least 1")
	}
	if strings.TrimSpace(input.ReasonForDebt) == "" {
		return nil, models.NewValidationError("Reason for debt is required")
	}
	if input.RepaymentPercentage != nil && (*input.RepaymentPercentage < 0 || *input.RepaymentPercentage > 100) {
		return nil, models.NewValidationError("Repayment percentage must be between 0 and 100")
	}

	details := bc.ConsumerDetails
	if details == nil {
		details = &models.ConsumerBankruptcyDetails{BankruptcyCaseID: input.CaseID}
	}
	details.MonthlyIncome = input.MonthlyIncome
	details.FamilySize = input.FamilySize
	details.HasRealEstate = input.HasRealEstate
	details.RepaymentPlanDuration = input.RepaymentPlanDuration
	details.RepaymentPercentage = input.RepaymentPercentage
	details.ReasonForDebt = input.ReasonForDebt
	details.PreviousBankruptcy = input.PreviousBankruptcy
	details.PreviousBankruptcyDate = input.PreviousBankruptcyDate

	if err := s.cases.UpsertConsumerDetails(ctx, details); err != nil {
		return nil, models.NewInternalError(err)
	}
	return details, nil
}
