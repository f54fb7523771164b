package models

import "time"

// BankruptcyCaseType is the closed set of bankruptcy proceeding kinds.
type BankruptcyCaseType string

const (
	BankruptcyTypeConsumer    BankruptcyCaseType = "consumer"
	BankruptcyTypeBusiness    BankruptcyCaseType = "business"
	BankruptcyTypeLiquidation BankruptcyCaseType = "liquidation"
	BankruptcyTypeArrangement BankruptcyCaseType = "arrangement"
)

// Valid reports whether t is a member of the case type set.
func (t BankruptcyCaseType) Valid() bool {
	switch t {
	case BankruptcyTypeConsumer, BankruptcyTypeBusiness,
		BankruptcyTypeLiquidation, BankruptcyTypeArrangement:
		return true
	}
	return false
}

// BankruptcyStatus is the closed set of procedural stages of a
// bankruptcy case. The stages form an implied progression but any member
// may be assigned directly; no transition graph is enforced.
type BankruptcyStatus string

const (
	BankruptcyStatusPreparation BankruptcyStatus = "preparation"
	BankruptcyStatusFiled       BankruptcyStatus = "filed"
	BankruptcyStatusHearing     BankruptcyStatus = "hearing"
	BankruptcyStatusDeclared    BankruptcyStatus = "declared"
	BankruptcyStatusOngoing     BankruptcyStatus = "ongoing"
	BankruptcyStatusCompleted   BankruptcyStatus = "completed"
	BankruptcyStatusRejected    BankruptcyStatus = "rejected"
)

// Valid reports whether s is a member of the status set.
func (s BankruptcyStatus) Valid() bool {
	switch s {
	case BankruptcyStatusPreparation, BankruptcyStatusFiled,
		BankruptcyStatusHearing, BankruptcyStatusDeclared,
		BankruptcyStatusOngoing, BankruptcyStatusCompleted,
		BankruptcyStatusRejected:
		return true
	}
	return false
}

// CreditorType classifies bankruptcy creditors.
type CreditorType string

const (
	CreditorTypeBank      CreditorType = "bank"
	CreditorTypeTaxOffice CreditorType = "tax_office"
	CreditorTypeZUS       CreditorType = "zus"
	CreditorTypeSupplier  CreditorType = "supplier"
	CreditorTypeEmployee  CreditorType = "employee"
	CreditorTypeOther     CreditorType = "other"
)

// Valid reports whether t is a member of the creditor type set.
func (t CreditorType) Valid() bool {
	switch t {
	case CreditorTypeBank, CreditorTypeTaxOffice, CreditorTypeZUS,
		CreditorTypeSupplier, CreditorTypeEmployee, CreditorTypeOther:
		return true
	}
	return false
}

// BankruptcyEventType classifies events in a bankruptcy case.
type BankruptcyEventType string

const (
	BankruptcyEventFiling           BankruptcyEventType = "filing"
	BankruptcyEventHearing          BankruptcyEventType = "hearing"
	BankruptcyEventDecision         BankruptcyEventType = "decision"
	BankruptcyEventCreditorsMeeting BankruptcyEventType = "creditors_meeting"
	BankruptcyEventAssetSale        BankruptcyEventType = "asset_sale"
	BankruptcyEventDistribution     BankruptcyEventType = "distribution"
	BankruptcyEventReport           BankruptcyEventType = "report"
	BankruptcyEventOther            BankruptcyEventType = "other"
)

// Valid reports whether t is a member of the event type set.
func (t BankruptcyEventType) Valid() bool {
	switch t {
	case BankruptcyEventFiling, BankruptcyEventHearing,
		BankruptcyEventDecision, BankruptcyEventCreditorsMeeting,
		BankruptcyEventAssetSale, BankruptcyEventDistribution,
		BankruptcyEventReport, BankruptcyEventOther:
		return true
	}
	return false
}

// BankruptcyCase is a bankruptcy proceeding. CaseNumber is immutable
// after creation; deleting a case removes its creditors, events, and
// consumer details in one transaction.
type BankruptcyCase struct {
	ID               uint                       `gorm:"primaryKey" json:"id"`
	CaseNumber       string                     `gorm:"uniqueIndex;not null;size:50" json:"case_number"`
	ClientID         uint                       `gorm:"not null;index" json:"client_id"`
	Client           *Client                    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	CaseType         BankruptcyCaseType         `gorm:"type:varchar(20);not null" json:"case_type"`
	Status           BankruptcyStatus           `gorm:"type:varchar(20);not null;default:preparation;index" json:"status"`
	Court            string                     `gorm:"not null" json:"court"`
	Judge            string                     `json:"judge"`
	Trustee          string                     `json:"trustee"`
	FilingDate       *time.Time                 `json:"filing_date"`
	DeclarationDate  *time.Time                 `json:"declaration_date"`
	CompletionDate   *time.Time                 `json:"completion_date"`
	DebtAmount       *float64                   `json:"debt_amount"`
	AssetsValue      *float64                   `json:"assets_value"`
	Description      string                     `gorm:"type:text;not null" json:"description"`
	Notes            string                     `gorm:"type:text" json:"notes"`
	AssignedLawyerID *uint                      `gorm:"index" json:"assigned_lawyer_id"`
	AssignedLawyer   *User                      `gorm:"foreignKey:AssignedLawyerID;constraint:OnDelete:SET NULL" json:"assigned_lawyer,omitempty"`
	Creditors        []Creditor                 `gorm:"foreignKey:BankruptcyCaseID" json:"creditors,omitempty"`
	Events           []BankruptcyEvent          `gorm:"foreignKey:BankruptcyCaseID" json:"events,omitempty"`
	ConsumerDetails  *ConsumerBankruptcyDetails `gorm:"foreignKey:BankruptcyCaseID" json:"consumer_details,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// Creditor is a claim holder in a bankruptcy case.
type Creditor struct {
	ID                  uint         `gorm:"primaryKey" json:"id"`
	BankruptcyCaseID    uint         `gorm:"not null;index" json:"bankruptcy_case_id"`
	Name                string       `gorm:"not null" json:"name"`
	CreditorType        CreditorType `gorm:"type:varchar(50);not null" json:"creditor_type"`
	ClaimAmount         float64      `gorm:"not null" json:"claim_amount"`
	ClaimCategory       int          `gorm:"not null" json:"claim_category"`
	IsSecured           bool         `json:"is_secured"`
	SecurityDescription string       `gorm:"type:text" json:"security_description"`
	ContactPerson       string       `gorm:"size:100" json:"contact_person"`
	ContactEmail        string       `json:"contact_email"`
	ContactPhone        string       `gorm:"size:20" json:"contact_phone"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// ValidClaimCategory reports whether c is one of the four statutory
// claim categories.
func ValidClaimCategory(c int) bool {
	return c >= 1 && c <= 4
}

// BankruptcyEvent is an append-only timeline entry scoped to one case.
type BankruptcyEvent struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	BankruptcyCaseID uint                `gorm:"not null;index" json:"bankruptcy_case_id"`
	EventType        BankruptcyEventType `gorm:"type:varchar(30);not null" json:"event_type"`
	EventDate        time.Time           `gorm:"not null" json:"event_date"`
	Title            string              `gorm:"not null" json:"title"`
	Description      string              `gorm:"type:text;not null" json:"description"`
	IsPublic         bool                `json:"is_public"`
	ReminderDate     *time.Time          `json:"reminder_date"`
	CreatedByID      *uint               `json:"created_by_id"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// ConsumerBankruptcyDetails holds the extra fields of consumer cases.
type ConsumerBankruptcyDetails struct {
	ID                     uint       `gorm:"primaryKey" json:"id"`
	BankruptcyCaseID       uint       `gorm:"uniqueIndex;not null" json:"bankruptcy_case_id"`
	MonthlyIncome          float64    `gorm:"not null" json:"monthly_income"`
	FamilySize             int        `gorm:"not null" json:"family_size"`
	HasRealEstate          bool       `json:"has_real_estate"`
	RepaymentPlanDuration  *int       `json:"repayment_plan_duration"`
	RepaymentPercentage    *float64   `json:"repayment_percentage"`
	ReasonForDebt          string     `gorm:"type:text;not null" json:"reason_for_debt"`
	PreviousBankruptcy     bool       `json:"previous_bankruptcy"`
	PreviousBankruptcyDate *time.Time `json:"previous_bankruptcy_date"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}
