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

// RestructuringService handles restructuring case records.
type RestructuringService struct {
	cases   repository.RestructuringRepository
	clients repository.ClientRepository
}

// NewRestructuringService creates a new RestructuringService.
func NewRestructuringService(cases repository.RestructuringRepository, clients repository.ClientRepository) *RestructuringService {
	return &RestructuringService{cases: cases, clients: clients}
}

// CreateRestructuringCaseInput carries the fields needed to open a case record.
type CreateRestructuringCaseInput struct {
	Actor                policy.Actor
	CaseNumber           string                     `json:"case_number"`
	ClientID             uint                       `json:"client_id"`
	ProceedingType       models.ProceedingType      `json:"proceeding_type"`
	Status               models.RestructuringStatus `json:"status"`
	Court                string                     `json:"court"`
	JudgeCommissioner    string                     `json:"judge_commissioner"`
	CourtSupervisor      string                     `json:"court_supervisor"`
	RestructuringAdvisor string                     `json:"restructuring_advisor"`
	FilingDate           *time.Time                 `json:"filing_date"`
	TotalDebt            *float64                   `json:"total_debt"`
	Description          string                     `json:"description"`
	RestructuringPlan    string                     `json:"restructuring_plan"`
	Notes                string                     `json:"notes"`
	AssignedLawyerID     *uint                      `json:"assigned_lawyer_id"`
}

// CreateCase opens a restructuring case record.
func (s *RestructuringService) CreateCase(ctx context.Context, input CreateRestructuringCaseInput) (*models.RestructuringCase, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if strings.TrimSpace(input.CaseNumber) == "" {
		return nil, models.NewValidationError("Case number is required")
	}
	if !input.ProceedingType.Valid() {
		return nil, models.NewValidationError("Invalid proceeding type")
	}
	status := input.Status
	if status == "" {
		status = models.RestructuringStatusPreparation
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
	if input.TotalDebt != nil && *input.TotalDebt < 0 {
		return nil, models.NewValidationError("Total debt cannot be negative")
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

	rc := &models.RestructuringCase{
		CaseNumber:           strings.TrimSpace(input.CaseNumber),
		ClientID:             input.ClientID,
		ProceedingType:       input.ProceedingType,
		Status:               status,
		Court:                input.Court,
		JudgeCommissioner:    input.JudgeCommissioner,
		CourtSupervisor:      input.CourtSupervisor,
		RestructuringAdvisor: input.RestructuringAdvisor,
		FilingDate:           input.FilingDate,
		TotalDebt:            input.TotalDebt,
		Description:          input.Description,
		RestructuringPlan:    input.RestructuringPlan,
		Notes:                input.Notes,
		AssignedLawyerID:     input.AssignedLawyerID,
	}
	if err := s.cases.Create(ctx, rc); err != nil {
		return nil, models.NewInternalError(err)
	}
	return rc, nil
}

// UpdateRestructuringCaseInput carries partial updates. The case number
// is deliberately absent: docket numbers never change.
type UpdateRestructuringCaseInput struct {
	Actor                policy.Actor
	CaseID               uint
	Status               *models.RestructuringStatus `json:"status"`
	Court                *string                     `json:"court"`
	JudgeCommissioner    *string                     `json:"judge_commissioner"`
	CourtSupervisor      *string                     `json:"court_supervisor"`
	RestructuringAdvisor *string                     `json:"restructuring_advisor"`
	FilingDate           *time.Time                  `json:"filing_date"`
	OpeningDate          *time.Time                  `json:"opening_date"`
	ArrangementDate      *time.Time                  `json:"arrangement_date"`
	CompletionDate       *time.Time                  `json:"completion_date"`
	TotalDebt            *float64                    `json:"total_debt"`
	RestructuredDebt     *float64                    `json:"restructured_debt"`
	Description          *string                     `json:"description"`
	RestructuringPlan    *string                     `json:"restructuring_plan"`
	Notes                *string                     `json:"notes"`
	AssignedLawyerID     *uint                       `json:"assigned_lawyer_id"`
}

// UpdateCase applies partial updates to a case record.
func (s *RestructuringService) UpdateCase(ctx context.Context, input UpdateRestructuringCaseInput) (*models.RestructuringCase, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	rc, err := s.cases.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, notFoundOr(err, "Restructuring case", input.CaseID)
	}

	statusChanged := false
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, models.NewValidationError("Invalid case status")
		}
		statusChanged = *input.Status != rc.Status
		rc.Status = *input.Status
	}
	if input.Court != nil {
		if strings.TrimSpace(*input.Court) == "" {
			return nil, models.NewValidationError("Court cannot be empty")
		}
		rc.Court = *input.Court
	}
	if input.JudgeCommissioner != nil {
		rc.JudgeCommissioner = *input.JudgeCommissioner
	}
	if input.CourtSupervisor != nil {
		rc.CourtSupervisor = *input.CourtSupervisor
	}
	if input.RestructuringAdvisor != nil {
		rc.RestructuringAdvisor = *input.RestructuringAdvisor
	}
	if input.FilingDate != nil {
		rc.FilingDate = input.FilingDate
	}
	if input.OpeningDate != nil {
		rc.OpeningDate = input.OpeningDate
	}
	if input.ArrangementDate != nil {
		rc.ArrangementDate = input.ArrangementDate
	}
	if input.CompletionDate != nil {
		rc.CompletionDate = input.CompletionDate
	}
	if input.TotalDebt != nil {
		if *input.TotalDebt < 0 {
			return nil, models.NewValidationError("Total debt cannot be negative")
		}
		rc.TotalDebt = input.TotalDebt
	}
	if input.RestructuredDebt != nil {
		rc.RestructuredDebt = input.RestructuredDebt
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, models.NewValidationError("Description cannot be empty")
		}
		rc.Description = *input.Description
	}
	if input.RestructuringPlan != nil {
		rc.RestructuringPlan = *input.RestructuringPlan
	}
	if input.Notes != nil {
		rc.Notes = *input.Notes
	}
	if input.AssignedLawyerID != nil {
		rc.AssignedLawyerID = input.AssignedLawyerID
	}

	if err := s.cases.Update(ctx, rc); err != nil {
		return nil, models.NewInternalError(err)
	}
	if statusChanged {
		observability.CaseStatusChanges.WithLabelValues("restructuring").Inc()
	}
	return rc, nil
}

// GetCase returns a case with proposals, creditors, timeline, and
// payment schedule preloaded.
func (s *RestructuringService) GetCase(ctx context.Context, actor policy.Actor, id uint) (*models.RestructuringCase, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	rc, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Restructuring case", id)
	}
	return rc, nil
}

// ListCases returns the restructuring case listing.
func (s *RestructuringService) ListCases(ctx context.Context, input ListCasesInput) ([]*models.RestructuringCase, int64, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, 0, models.NewForbiddenError("You cannot view case records")
	}
	if input.Status != "" && !models.RestructuringStatus(input.Status).Valid() {
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

// DeleteCase removes a case together with its proposals, creditors,
// events, and payments. Admin only.
func (s *RestructuringService) DeleteCase(ctx context.Context, actor policy.Actor, id uint) error {
	if !actor.IsSuperuser && actor.Role != models.RoleAdmin {
		return models.NewForbiddenError("Only administrators can delete case records")
	}
	if _, err := s.cases.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Restructuring case", id)
	}
	if err := s.cases.DeleteCascade(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ProposalInput carries an arrangement proposal.
type ProposalInput struct {
	Actor               policy.Actor
	CaseID              uint
	ReductionPercentage float64    `json:"reduction_percentage"`
	PaymentInstallments int        `json:"payment_installments"`
	PaymentPeriodMonths int        `json:"payment_period_months"`
	GracePeriodMonths   int        `json:"grace_period_months"`
	InterestRate        float64    `json:"interest_rate"`
	SpecialConditions   string     `json:"special_conditions"`
	CreditorGroups      string     `json:"creditor_groups"`
	SubmissionDate      *time.Time `json:"submission_date"`
}

func validateProposalInput(input ProposalInput) error {
	if input.ReductionPercentage < 0 || input.ReductionPercentage > 100 {
		return models.NewValidationError("Reduction percentage must be between 0 and 100")
	}
	if input.PaymentInstallments < 1 {
		return models.NewValidationError("Proposal needs at least one installment")
	}
	if input.PaymentPeriodMonths < 1 {
		return models.NewValidationError("Payment period must be at least one month")
	}
	if input.GracePeriodMonths < 0 {
		return models.NewValidationError("Grace period cannot be negative")
	}
	if strings.TrimSpace(input.CreditorGroups) == "" {
		return models.NewValidationError("Creditor groups description is required")
	}
	return nil
}

// AddProposal files a new arrangement proposal version. The new version
// becomes the active one; earlier versions stay on record deactivated.
func (s *RestructuringService) AddProposal(ctx context.Context, input ProposalInput) (*models.ArrangementProposal, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if err := validateProposalInput(input); err != nil {
		return nil, err
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, notFoundOr(err, "Restructuring case", input.CaseID)
	}

	existing, err := s.cases.ListProposals(ctx, input.CaseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	version := 1
	for _, p := range existing {
		if p.Version >= version {
			version = p.Version + 1
		}
	}

	proposal := &models.ArrangementProposal{
		RestructuringCaseID: input.CaseID,
		Version:             version,
		ReductionPercentage: input.ReductionPercentage,
		PaymentInstallments: input.PaymentInstallments,
		PaymentPeriodMonths: input.PaymentPeriodMonths,
		GracePeriodMonths:   input.GracePeriodMonths,
		InterestRate:        input.InterestRate,
		SpecialConditions:   input.SpecialConditions,
		CreditorGroups:      input.CreditorGroups,
		IsActive:            true,
		SubmissionDate:      input.SubmissionDate,
	}
	if err := s.cases.AddProposal(ctx, proposal); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.cases.DeactivateProposals(ctx, input.CaseID, proposal.ID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return proposal, nil
}

// ListProposals returns a case's proposal history, newest version first.
func (s *RestructuringService) ListProposals(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.ArrangementProposal, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	proposals, err := s.cases.ListProposals(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return proposals, nil
}

// RestructuringCreditorInput carries creditor create/update fields.
type RestructuringCreditorInput struct {
	Actor              policy.Actor
	CaseID             uint
	CreditorID         uint
	Name               string      `json:"name"`
	CreditorGroup      int         `json:"creditor_group"`
	OriginalClaim      float64     `json:"original_claim"`
	VerifiedClaim      *float64    `json:"verified_claim"`
	RestructuredClaim  *float64    `json:"restructured_claim"`
	VotingPower        *float64    `json:"voting_power"`
	VoteCast           models.Vote `json:"vote_cast"`
	IsDisputed         bool        `json:"is_disputed"`
	DisputeDescription string      `json:"dispute_description"`
	ContactPerson      string      `json:"contact_person"`
	ContactEmail       string      `json:"contact_email"`
	ContactPhone       string      `json:"contact_phone"`
}

func validateRestructuringCreditorInput(input RestructuringCreditorInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return models.NewValidationError("Creditor name is required")
	}
	if !models.ValidCreditorGroup(input.CreditorGroup) {
		return models.NewValidationError("Creditor group must be between 1 and 5")
	}
	if input.OriginalClaim < 0 {
		return models.NewValidationError("Original claim cannot be negative")
	}
	if input.VoteCast != "" && !input.VoteCast.Valid() {
		return models.NewValidationError("Invalid vote")
	}
	return nil
}

// AddCreditor registers a creditor on the case's voting list.
func (s *RestructuringService) AddCreditor(ctx context.Context, input RestructuringCreditorInput) (*models.RestructuringCreditor, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if err := validateRestructuringCreditorInput(input); err != nil {
		return nil, err
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, notFoundOr(err, "Restructuring case", input.CaseID)
	}

	vote := input.VoteCast
	if vote == "" {
		vote = models.VoteNotVoted
	}
	creditor := &models.RestructuringCreditor{
		RestructuringCaseID: input.CaseID,
		Name:                strings.TrimSpace(input.Name),
		CreditorGroup:       input.CreditorGroup,
		OriginalClaim:       input.OriginalClaim,
		VerifiedClaim:       input.VerifiedClaim,
		RestructuredClaim:   input.RestructuredClaim,
		VotingPower:         input.VotingPower,
		VoteCast:            vote,
		IsDisputed:          input.IsDisputed,
		DisputeDescription:  input.DisputeDescription,
		ContactPerson:       input.ContactPerson,
		ContactEmail:        input.ContactEmail,
		ContactPhone:        input.ContactPhone,
	}
	if err := s.cases.AddCreditor(ctx, creditor); err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditor, nil
}

// UpdateCreditor replaces a creditor's claim and voting fields.
func (s *RestructuringService) UpdateCreditor(ctx context.Context, input RestructuringCreditorInput) (*models.RestructuringCreditor, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	creditor, err := s.cases.GetCreditor(ctx, input.CreditorID)
	if err != nil {
		return nil, notFoundOr(err, "Creditor", input.CreditorID)
	}
	if input.CaseID != 0 && creditor.RestructuringCaseID != input.CaseID {
		return nil, models.NewNotFoundError("Creditor", input.CreditorID)
	}
	if err := validateRestructuringCreditorInput(input); err != nil {
		return nil, err
	}

	creditor.Name = strings.TrimSpace(input.Name)
	creditor.CreditorGroup = input.CreditorGroup
	creditor.OriginalClaim = input.OriginalClaim
	creditor.VerifiedClaim = input.VerifiedClaim
	creditor.RestructuredClaim = input.RestructuredClaim
	creditor.VotingPower = input.VotingPower
	if input.VoteCast != "" {
		creditor.VoteCast = input.VoteCast
	}
	creditor.IsDisputed = input.IsDisputed
	creditor.DisputeDescription = input.DisputeDescription
	creditor.ContactPerson = input.ContactPerson
	creditor.ContactEmail = input.ContactEmail
	creditor.ContactPhone = input.ContactPhone

	if err := s.cases.UpdateCreditor(ctx, creditor); err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditor, nil
}

// DeleteCreditor removes a creditor from the voting list.
func (s *RestructuringService) DeleteCreditor(ctx context.Context, actor policy.Actor, caseID, creditorID uint) error {
	if !policy.CanManageCases(actor) {
		return models.NewForbiddenError("You cannot manage case records")
	}
	creditor, err := s.cases.GetCreditor(ctx, creditorID)
	if err != nil {
		return notFoundOr(err, "Creditor", creditorID)
	}
	if caseID != 0 && creditor.RestructuringCaseID != caseID {
		return models.NewNotFoundError("Creditor", creditorID)
	}
	if err := s.cases.DeleteCreditor(ctx, creditorID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListCreditors returns a case's creditors grouped for voting.
func (s *RestructuringService) ListCreditors(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.RestructuringCreditor, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	creditors, err := s.cases.ListCreditors(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return creditors, nil
}

// RestructuringEventInput carries a timeline entry.
type RestructuringEventInput struct {
	Actor        policy.Actor
	CaseID       uint
	EventType    models.RestructuringEventType `json:"event_type"`
	EventDate    time.Time                     `json:"event_date"`
	Title        string                        `json:"title"`
	Description  string                        `json:"description"`
	IsPublic     bool                          `json:"is_public"`
	IsMandatory  bool                          `json:"is_mandatory"`
	ReminderDate *time.Time                    `json:"reminder_date"`
}

// AddEvent appends an entry to a case's timeline.
func (s *RestructuringService) AddEvent(ctx context.Context, input RestructuringEventInput) (*models.RestructuringEvent, error) {
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
		return nil, notFoundOr(err, "Restructuring case", input.CaseID)
	}

	createdBy := input.Actor.ID
	event := &models.RestructuringEvent{
		RestructuringCaseID: input.CaseID,
		EventType:           input.EventType,
		EventDate:           input.EventDate,
		Title:               input.Title,
		Description:         input.Description,
		IsPublic:            input.IsPublic,
		IsMandatory:         input.IsMandatory,
		ReminderDate:        input.ReminderDate,
		CreatedByID:         &createdBy,
	}
	if err := s.cases.AddEvent(ctx, event); err != nil {
		return nil, models.NewInternalError(err)
	}
	return event, nil
}

// ListEvents returns a case's timeline, newest first.
func (s *RestructuringService) ListEvents(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.RestructuringEvent, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	events, err := s.cases.ListEvents(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

// PaymentInput carries a scheduled installment.
type PaymentInput struct {
	Actor             policy.Actor
	CaseID            uint
	InstallmentNumber int       `json:"installment_number"`
	DueDate           time.Time `json:"due_date"`
	Amount            float64   `json:"amount"`
	Notes             string    `json:"notes"`
}

// AddPayment schedules an installment. The installment number is unique
// within its case.
func (s *RestructuringService) AddPayment(ctx context.Context, input PaymentInput) (*models.ArrangementPayment, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	if input.InstallmentNumber < 1 {
		return nil, models.NewValidationError("Installment number must be at least 1")
	}
	if input.DueDate.IsZero() {
		return nil, models.NewValidationError("Due date is required")
	}
	if input.Amount <= 0 {
		return nil, models.NewValidationError("Amount must be positive")
	}
	if _, err := s.cases.GetByID(ctx, input.CaseID); err != nil {
		return nil, notFoundOr(err, "Restructuring case", input.CaseID)
	}

	payment := &models.ArrangementPayment{
		RestructuringCaseID: input.CaseID,
		InstallmentNumber:   input.InstallmentNumber,
		DueDate:             input.DueDate,
		Amount:              input.Amount,
		Notes:               input.Notes,
	}
	if err := s.cases.AddPayment(ctx, payment); err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewValidationError("Installment number already scheduled for this case")
		}
		return nil, models.NewInternalError(err)
	}
	return payment, nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint
// violation (PostgreSQL SQLSTATE 23505, or sqlite's message in tests).
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// RecordPaymentInput marks an installment as paid.
type RecordPaymentInput struct {
	Actor       policy.Actor
	CaseID      uint
	PaymentID   uint
	PaymentDate time.Time `json:"payment_date"`
	PaidAmount  float64   `json:"paid_amount"`
	Notes       string    `json:"notes"`
}

// RecordPayment marks an installment paid with the actual date and
// amount. Partial payments are recorded as paid with the lower amount
// and explained in the notes.
func (s *RestructuringService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*models.ArrangementPayment, error) {
	if !policy.CanManageCases(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage case records")
	}
	payment, err := s.cases.GetPayment(ctx, input.PaymentID)
	if err != nil {
		return nil, notFoundOr(err, "Payment", input.PaymentID)
	}
	if input.CaseID != 0 && payment.RestructuringCaseID != input.CaseID {
		return nil, models.NewNotFoundError("Payment", input.PaymentID)
	}
	if input.PaymentDate.IsZero() {
		return nil, models.NewValidationError("Payment date is required")
	}
	if input.PaidAmount <= 0 {
		return nil, models.NewValidationError("Paid amount must be positive")
	}

	paymentDate := input.PaymentDate
	paidAmount := input.PaidAmount
	payment.IsPaid = true
	payment.PaymentDate = &paymentDate
	payment.PaidAmount = &paidAmount
	if input.Notes != "" {
		payment.Notes = input.Notes
	}

	if err := s.cases.UpdatePayment(ctx, payment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return payment, nil
}

// DeletePayment removes a scheduled installment that was never paid.
func (s *RestructuringService) DeletePayment(ctx context.Context, actor policy.Actor, caseID, paymentID uint) error {
	if !policy.CanManageCases(actor) {
		return models.NewForbiddenError("You cannot manage case records")
	}
	payment, err := s.cases.GetPayment(ctx, paymentID)
	if err != nil {
		return notFoundOr(err, "Payment", paymentID)
	}
	if caseID != 0 && payment.RestructuringCaseID != caseID {
		return models.NewNotFoundError("Payment", paymentID)
	}
	if payment.IsPaid {
		return models.NewValidationError("Paid installments cannot be deleted")
	}
	if err := s.cases.DeletePayment(ctx, paymentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListPayments returns a case's payment schedule in installment order.
func (s *RestructuringService) ListPayments(ctx context.Context, actor policy.Actor, caseID uint) ([]*models.ArrangementPayment, error) {
	if !policy.CanManageCases(actor) {
		return nil, models.NewForbiddenError("You cannot view case records")
	}
	payments, err := s.cases.ListPayments(ctx, caseID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return payments, nil
}
