package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// CaseFilter narrows case listings for both proceeding kinds.
type CaseFilter struct {
	ClientID uint
	Status   string
	LawyerID uint
	Limit    int
	Offset   int
}

// BankruptcyRepository defines interface for bankruptcy case operations
type BankruptcyRepository interface {
	Create(ctx context.Context, bc *models.BankruptcyCase) error
	GetByID(ctx context.Context, id uint) (*models.BankruptcyCase, error)
	CaseNumberExists(ctx context.Context, caseNumber string) (bool, error)
	List(ctx context.Context, filter CaseFilter) ([]*models.BankruptcyCase, int64, error)
	Update(ctx context.Context, bc *models.BankruptcyCase) error
	DeleteCascade(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status models.BankruptcyStatus) (int64, error)
	Count(ctx context.Context) (int64, error)

	AddCreditor(ctx context.Context, creditor *models.Creditor) error
	GetCreditor(ctx context.Context, id uint) (*models.Creditor, error)
	ListCreditors(ctx context.Context, caseID uint) ([]*models.Creditor, error)
	UpdateCreditor(ctx context.Context, creditor *models.Creditor) error
	DeleteCreditor(ctx context.Context, id uint) error

	AddEvent(ctx context.Context, event *models.BankruptcyEvent) error
	ListEvents(ctx context.Context, caseID uint) ([]*models.BankruptcyEvent, error)

	UpsertConsumerDetails(ctx context.Context, details *models.ConsumerBankruptcyDetails) error
	GetConsumerDetails(ctx context.Context, caseID uint) (*models.ConsumerBankruptcyDetails, error)
}

type bankruptcyRepository struct {
	db *gorm.DB
}

// NewBankruptcyRepository creates a new BankruptcyRepository
func NewBankruptcyRepository(db *gorm.DB) BankruptcyRepository {
	return &bankruptcyRepository{db: db}
}

func (r *bankruptcyRepository) Create(ctx context.Context, bc *models.BankruptcyCase) error {
	return r.db.WithContext(ctx).Create(bc).Error
}

func (r *bankruptcyRepository) GetByID(ctx context.Context, id uint) (*models.BankruptcyCase, error) {
	var bc models.BankruptcyCase
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("AssignedLawyer").
		Preload("Creditors").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_date DESC")
		}).
		Preload("ConsumerDetails").
		First(&bc, id).Error
	if err != nil {
		return nil, err
	}
	return &bc, nil
}

func (r *bankruptcyRepository) CaseNumberExists(ctx context.Context, caseNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BankruptcyCase{}).
		Where("case_number = ?", caseNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func applyCaseFilter(db *gorm.DB, filter CaseFilter) *gorm.DB {
	if filter.ClientID != 0 {
		db = db.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.LawyerID != 0 {
		db = db.Where("assigned_lawyer_id = ?", filter.LawyerID)
	}
	return db
}

func (r *bankruptcyRepository) List(ctx context.Context, filter CaseFilter) ([]*models.BankruptcyCase, int64, error) {
	var total int64
	if err := applyCaseFilter(r.db.WithContext(ctx).Model(&models.BankruptcyCase{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []*models.BankruptcyCase
	listQ := applyCaseFilter(r.db.WithContext(ctx), filter).
		Preload("Client").Preload("AssignedLawyer").Order("created_at DESC")
	if filter.Limit > 0 {
		listQ = listQ.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		listQ = listQ.Offset(filter.Offset)
	}
	if err := listQ.Find(&cases).Error; err != nil {
		return nil, 0, err
	}
	return cases, total, nil
}

func (r *bankruptcyRepository) Update(ctx context.Context, bc *models.BankruptcyCase) error {
	return r.db.WithContext(ctx).Save(bc).Error
}

// DeleteCascade removes the case and every dependent record in one
// transaction so a partial failure never leaves orphans.
func (r *bankruptcyRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bankruptcy_case_id = ?", id).Delete(&models.Creditor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bankruptcy_case_id = ?", id).Delete(&models.BankruptcyEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bankruptcy_case_id = ?", id).Delete(&models.ConsumerBankruptcyDetails{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.BankruptcyCase{}, id).Error
	})
}

func (r *bankruptcyRepository) CountByStatus(ctx context.Context, status models.BankruptcyStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BankruptcyCase{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *bankruptcyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BankruptcyCase{}).Count(&count).Error
	return count, err
}

func (r *bankruptcyRepository) AddCreditor(ctx context.Context, creditor *models.Creditor) error {
	return r.db.WithContext(ctx).Create(creditor).Error
}

func (r *bankruptcyRepository) GetCreditor(ctx context.Context, id uint) (*models.Creditor, error) {
	var creditor models.Creditor
	if err := r.db.WithContext(ctx).First(&creditor, id).Error; err != nil {
		return nil, err
	}
	return &creditor, nil
}

func (r *bankruptcyRepository) ListCreditors(ctx context.Context, caseID uint) ([]*models.Creditor, error) {
	var creditors []*models.Creditor
	err := r.db.WithContext(ctx).
		Where("bankruptcy_case_id = ?", caseID).
		Order("claim_amount DESC").
		Find(&creditors).Error
	return creditors, err
}

func (r *bankruptcyRepository) UpdateCreditor(ctx context.Context, creditor *models.Creditor) error {
	return r.db.WithContext(ctx).Save(creditor).Error
}

func (r *bankruptcyRepository) DeleteCreditor(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Creditor{}, id).Error
}

func (r *bankruptcyRepository) AddEvent(ctx context.Context, event *models.BankruptcyEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *bankruptcyRepository) ListEvents(ctx context.Context, caseID uint) ([]*models.BankruptcyEvent, error) {
	var events []*models.BankruptcyEvent
	err := r.db.WithContext(ctx).
		Where("bankruptcy_case_id = ?", caseID).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (r *bankruptcyRepository) UpsertConsumerDetails(ctx context.Context, details *models.ConsumerBankruptcyDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}

func (r *bankruptcyRepository) GetConsumerDetails(ctx context.Context, caseID uint) (*models.ConsumerBankruptcyDetails, error) {
	var details models.ConsumerBankruptcyDetails
	if err := r.db.WithContext(ctx).Where("bankruptcy_case_id = ?", caseID).First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}
