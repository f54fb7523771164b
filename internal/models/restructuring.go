package models

import "time"

// ProceedingType is the closed set of restructuring proceeding kinds.
type ProceedingType string

const (
	ProceedingArrangementApproval    ProceedingType = "arrangement_approval"
	ProceedingAcceleratedArrangement ProceedingType = "accelerated_arrangement"
	ProceedingArrangement            ProceedingType = "arrangement"
	ProceedingSanation               ProceedingType = "sanation"
)

// Valid reports whether t is a member of the proceeding type set.
func (t ProceedingType) Valid() bool {
	switch t {
	case ProceedingArrangementApproval, ProceedingAcceleratedArrangement,
		ProceedingArrangement, ProceedingSanation:
		return true
	}
	return false
}

// RestructuringStatus is the closed set of procedural stages of a
// restructuring case. Like BankruptcyStatus, any member is directly
// assignable.
type RestructuringStatus string

const (
	RestructuringStatusPreparation         RestructuringStatus = "preparation"
	RestructuringStatusFiled               RestructuringStatus = "filed"
	RestructuringStatusOpened              RestructuringStatus = "opened"
	RestructuringStatusArrangementProposed RestructuringStatus = "arrangement_proposed"
	RestructuringStatusVoting              RestructuringStatus = "voting"
	RestructuringStatusArrangementAccepted RestructuringStatus = "arrangement_accepted"
	RestructuringStatusArrangementApproved RestructuringStatus = "arrangement_approved"
	RestructuringStatusExecution           RestructuringStatus = "execution"
	RestructuringStatusCompleted           RestructuringStatus = "completed"
	RestructuringStatusDiscontinued        RestructuringStatus = "discontinued"
)

// Valid reports whether s is a member of the status set.
func (s RestructuringStatus) Valid() bool {
	switch s {
	case RestructuringStatusPreparation, RestructuringStatusFiled,
		RestructuringStatusOpened, RestructuringStatusArrangementProposed,
		RestructuringStatusVoting, RestructuringStatusArrangementAccepted,
		RestructuringStatusArrangementApproved, RestructuringStatusExecution,
		RestructuringStatusCompleted, RestructuringStatusDiscontinued:
		return true
	}
	return false
}

// Vote is a creditor's vote on an arrangement proposal.
type Vote string

const (
	VoteFor      Vote = "for"
	VoteAgainst  Vote = "against"
	VoteAbstain  Vote = "abstain"
	VoteNotVoted Vote = "not_voted"
)

// Valid reports whether v is a member of the vote set.
func (v Vote) Valid() bool {
	switch v {
	case VoteFor, VoteAgainst, VoteAbstain, VoteNotVoted:
		return true
	}
	return false
}

// RestructuringEventType classifies events in a restructuring case.
type RestructuringEventType string

const (
	RestructuringEventFiling              RestructuringEventType = "filing"
	RestructuringEventOpening             RestructuringEventType = "opening"
	RestructuringEventCreditorsList       RestructuringEventType = "creditors_list"
	RestructuringEventArrangementProposal RestructuringEventType = "arrangement_proposal"
	RestructuringEventCreditorsMeeting    RestructuringEventType = "creditors_meeting"
	RestructuringEventVoting              RestructuringEventType = "voting"
	RestructuringEventCourtHearing        RestructuringEventType = "court_hearing"
	RestructuringEventArrangementApproval RestructuringEventType = "arrangement_approval"
	RestructuringEventReport              RestructuringEventType = "report"
	RestructuringEventPayment             RestructuringEventType = "payment"
	RestructuringEventOther               RestructuringEventType = "other"
)

// Valid reports whether t is a member of the event type set.
func (t RestructuringEventType) Valid() bool {
	switch t {
	case RestructuringEventFiling, RestructuringEventOpening,
		RestructuringEventCreditorsList, RestructuringEventArrangementProposal,
		RestructuringEventCreditorsMeeting, RestructuringEventVoting,
		RestructuringEventCourtHearing, RestructuringEventArrangementApproval,
		RestructuringEventReport, RestructuringEventPayment,
		RestructuringEventOther:
		return true
	}
	return false
}

// RestructuringCase is a restructuring proceeding. CaseNumber is
// immutable after creation; deleting a case removes its proposals,
// creditors, events, and payments in one transaction.
type RestructuringCase struct {
	ID                   uint                    `gorm:"primaryKey" json:"id"`
	CaseNumber           string                  `gorm:"uniqueIndex;not null;size:50" json:"case_number"`
	ClientID             uint                    `gorm:"not null;index" json:"client_id"`
	Client               *Client                 `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ProceedingType       ProceedingType          `gorm:"type:varchar(30);not null" json:"proceeding_type"`
	Status               RestructuringStatus     `gorm:"type:varchar(25);not null;default:preparation;index" json:"status"`
	Court                string                  `gorm:"not null" json:"court"`
	JudgeCommissioner    string                  `json:"judge_commissioner"`
	CourtSupervisor      string                  `json:"court_supervisor"`
	RestructuringAdvisor string                  `json:"restructuring_advisor"`
	FilingDate           *time.Time              `json:"filing_date"`
	OpeningDate          *time.Time              `json:"opening_date"`
	ArrangementDate      *time.Time              `json:"arrangement_date"`
	CompletionDate       *time.Time              `json:"completion_date"`
	TotalDebt            *float64                `json:"total_debt"`
	RestructuredDebt     *float64                `json:"restructured_debt"`
	Description          string                  `gorm:"type:text;not null" json:"description"`
	RestructuringPlan    string                  `gorm:"type:text" json:"restructuring_plan"`
	Notes                string                  `gorm:"type:text" json:"notes"`
	AssignedLawyerID     *uint                   `gorm:"index" json:"assigned_lawyer_id"`
	AssignedLawyer       *User                   `gorm:"foreignKey:AssignedLawyerID;constraint:OnDelete:SET NULL" json:"assigned_lawyer,omitempty"`
	Proposals            []ArrangementProposal   `gorm:"foreignKey:RestructuringCaseID" json:"proposals,omitempty"`
	Creditors            []RestructuringCreditor `gorm:"foreignKey:RestructuringCaseID" json:"creditors,omitempty"`
	Events               []RestructuringEvent    `gorm:"foreignKey:RestructuringCaseID" json:"events,omitempty"`
	Payments             []ArrangementPayment    `gorm:"foreignKey:RestructuringCaseID" json:"payments,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

// ArrangementProposal is a versioned repayment proposal within a case.
type ArrangementProposal struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	RestructuringCaseID uint       `gorm:"not null;index" json:"restructuring_case_id"`
	Version             int        `gorm:"not null;default:1" json:"version"`
	ReductionPercentage float64    `gorm:"not null" json:"reduction_percentage"`
	PaymentInstallments int        `gorm:"not null" json:"payment_installments"`
	PaymentPeriodMonths int        `gorm:"not null" json:"payment_period_months"`
	GracePeriodMonths   int        `json:"grace_period_months"`
	InterestRate        float64    `json:"interest_rate"`
	SpecialConditions   string     `gorm:"type:text" json:"special_conditions"`
	CreditorGroups      string     `gorm:"type:text;not null" json:"creditor_groups"`
	IsActive            bool       `gorm:"default:true" json:"is_active"`
	SubmissionDate      *time.Time `json:"submission_date"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// RestructuringCreditor is a claim holder grouped for arrangement voting.
type RestructuringCreditor struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	RestructuringCaseID uint       `gorm:"not null;index" json:"restructuring_case_id"`
	Name                string     `gorm:"not null" json:"name"`
	CreditorGroup       int        `gorm:"not null" json:"creditor_group"`
	OriginalClaim       float64    `gorm:"not null" json:"original_claim"`
	VerifiedClaim       *float64   `json:"verified_claim"`
	RestructuredClaim   *float64   `json:"restructured_claim"`
	VotingPower         *float64   `json:"voting_power"`
	VoteCast            Vote       `gorm:"type:varchar(10);not null;default:not_voted" json:"vote_cast"`
	IsDisputed          bool       `json:"is_disputed"`
	DisputeDescription  string     `gorm:"type:text" json:"dispute_description"`
	ContactPerson       string     `gorm:"size:100" json:"contact_person"`
	ContactEmail        string     `json:"contact_email"`
	ContactPhone        string     `gorm:"size:20" json:"contact_phone"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// ValidCreditorGroup reports whether g is one of the five voting groups.
func ValidCreditorGroup(g int) bool {
	return g >= 1 && g <= 5
}

// RestructuringEvent is an append-only timeline entry scoped to one case.
type RestructuringEvent struct {
	ID                  uint                   `gorm:"primaryKey" json:"id"`
	RestructuringCaseID uint                   `gorm:"not null;index" json:"restructuring_case_id"`
	EventType           RestructuringEventType `gorm:"type:varchar(30);not null" json:"event_type"`
	EventDate           time.Time              `gorm:"not null" json:"event_date"`
	Title               string                 `gorm:"not null" json:"title"`
	Description         string                 `gorm:"type:text;not null" json:"description"`
	IsPublic            bool                   `json:"is_public"`
	IsMandatory         bool                   `json:"is_mandatory"`
	ReminderDate        *time.Time             `json:"reminder_date"`
	CreatedByID         *uint                  `json:"created_by_id"`
	CreatedAt           time.Time              `json:"created_at"`
	UpdatedAt           time.Time              `json:"updated_at"`
}

// ArrangementPayment is one installment of an approved arrangement.
// (case, installment number) is unique.
type ArrangementPayment struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	RestructuringCaseID uint       `gorm:"not null;uniqueIndex:idx_case_installment" json:"restructuring_case_id"`
	InstallmentNumber   int        `gorm:"not null;uniqueIndex:idx_case_installment" json:"installment_number"`
	DueDate             time.Time  `gorm:"not null" json:"due_date"`
	Amount              float64    `gorm:"not null" json:"amount"`
	IsPaid              bool       `json:"is_paid"`
	PaymentDate         *time.Time `json:"payment_date"`
	PaidAmount          *float64   `json:"paid_amount"`
	Notes               string     `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
