package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// RestructuringRepository defines interface for restructuring case operations
type RestructuringRepository interface {
	Create(ctx context.Context, rc *models.RestructuringCase) error
	GetByID(ctx context.Context, id uint) (*models.RestructuringCase, error)
	CaseNumberExists(ctx context.Context, caseNumber string) (bool, error)
	List(ctx context.Context, filter CaseFilter) ([]*models.RestructuringCase, int64, error)
	Update(ctx context.Context, rc *models.RestructuringCase) error
	DeleteCascade(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status models.RestructuringStatus) (int64, error)
	Count(ctx context.Context) (int64, error)

	AddProposal(ctx context.Context, proposal *models.ArrangementProposal) error
	GetProposal(ctx context.Context, id uint) (*models.ArrangementProposal, error)
	ListProposals(ctx context.Context, caseID uint) ([]*models.ArrangementProposal, error)
	UpdateProposal(ctx context.Context, proposal *models.ArrangementProposal) error
	DeactivateProposals(ctx context.Context, caseID uint, exceptID uint) error

	AddCreditor(ctx context.Context, creditor *models.RestructuringCreditor) error
	GetCreditor(ctx context.Context, id uint) (*models.RestructuringCreditor, error)
	ListCreditors(ctx context.Context, caseID uint) ([]*models.RestructuringCreditor, error)
	UpdateCreditor(ctx context.Context, creditor *models.RestructuringCreditor) error
	DeleteCreditor(ctx context.Context, id uint) error

	AddEvent(ctx context.Context, event *models.RestructuringEvent) error
	ListEvents(ctx context.Context, caseID uint) ([]*models.RestructuringEvent, error)

	AddPayment(ctx context.Context, payment *models.ArrangementPayment) error
	GetPayment(ctx context.Context, id uint) (*models.ArrangementPayment, error)
	ListPayments(ctx context.Context, caseID uint) ([]*models.ArrangementPayment, error)
	UpdatePayment(ctx context.Context, payment *models.ArrangementPayment) error
	DeletePayment(ctx context.Context, id uint) error
}

type restructuringRepository struct {
	db *gorm.DB
}

// NewRestructuringRepository creates a new RestructuringRepository
func NewRestructuringRepository(db *gorm.DB) RestructuringRepository {
	return &restructuringRepository{db: db}
}

func (r *restructuringRepository) Create(ctx context.Context, rc *models.RestructuringCase) error {
	return r.db.WithContext(ctx).Create(rc).Error
}

func (r *restructuringRepository) GetByID(ctx context.Context, id uint) (*models.RestructuringCase, error) {
	var rc models.RestructuringCase
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("AssignedLawyer").
		Preload("Proposals", func(db *gorm.DB) *gorm.DB {
			return db.Order("version DESC")
		}).
		Preload("Creditors").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_date DESC")
		}).
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		First(&rc, id).Error
	if err != nil {
		return nil, err
	}
	return &rc, nil
}

func (r *restructuringRepository) CaseNumberExists(ctx context.Context, caseNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RestructuringCase{}).
		Where("case_number = ?", caseNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restructuringRepository) List(ctx context.Context, filter CaseFilter) ([]*models.RestructuringCase, int64, error) {
	var total int64
	if err := applyCaseFilter(r.db.WithContext(ctx).Model(&models.RestructuringCase{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cases []*models.RestructuringCase
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

func (r *restructuringRepository) Update(ctx context.Context, rc *models.RestructuringCase) error {
	return r.db.WithContext(ctx).Save(rc).Error
}

// DeleteCascade removes the case and every dependent record in one
// transaction so a partial failure never leaves orphans.
func (r *restructuringRepository) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restructuring_case_id = ?", id).Delete(&models.ArrangementProposal{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restructuring_case_id = ?", id).Delete(&models.RestructuringCreditor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restructuring_case_id = ?", id).Delete(&models.RestructuringEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("restructuring_case_id = ?", id).Delete(&models.ArrangementPayment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RestructuringCase{}, id).Error
	})
}

func (r *restructuringRepository) CountByStatus(ctx context.Context, status models.RestructuringStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RestructuringCase{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *restructuringRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RestructuringCase{}).Count(&count).Error
	return count, err
}

func (r *restructuringRepository) AddProposal(ctx context.Context, proposal *models.ArrangementProposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *restructuringRepository) GetProposal(ctx context.Context, id uint) (*models.ArrangementProposal, error) {
	var proposal models.ArrangementProposal
	if err := r.db.WithContext(ctx).First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *restructuringRepository) ListProposals(ctx context.Context, caseID uint) ([]*models.ArrangementProposal, error) {
	var proposals []*models.ArrangementProposal
	err := r.db.WithContext(ctx).
		Where("restructuring_case_id = ?", caseID).
		Order("version DESC").
		Find(&proposals).Error
	return proposals, err
}

func (r *restructuringRepository) UpdateProposal(ctx context.Context, proposal *models.ArrangementProposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}

// DeactivateProposals clears the active flag on all of a case's proposals
// except the given one; a case has at most one active proposal.
func (r *restructuringRepository) DeactivateProposals(ctx context.Context, caseID uint, exceptID uint) error {
	q := r.db.WithContext(ctx).
		Model(&models.ArrangementProposal{}).
		Where("restructuring_case_id = ?", caseID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	return q.Update("is_active", false).Error
}

func (r *restructuringRepository) AddCreditor(ctx context.Context, creditor *models.RestructuringCreditor) error {
	return r.db.WithContext(ctx).Create(creditor).Error
}

func (r *restructuringRepository) GetCreditor(ctx context.Context, id uint) (*models.RestructuringCreditor, error) {
	var creditor models.RestructuringCreditor
	if err := r.db.WithContext(ctx).First(&creditor, id).Error; err != nil {
		return nil, err
	}
	return &creditor, nil
}

func (r *restructuringRepository) ListCreditors(ctx context.Context, caseID uint) ([]*models.RestructuringCreditor, error) {
	var creditors []*models.RestructuringCreditor
	err := r.db.WithContext(ctx).
		Where("restructuring_case_id = ?", caseID).
		Order("creditor_group ASC, original_claim DESC").
		Find(&creditors).Error
	return creditors, err
}

func (r *restructuringRepository) UpdateCreditor(ctx context.Context, creditor *models.RestructuringCreditor) error {
	return r.db.WithContext(ctx).Save(creditor).Error
}

func (r *restructuringRepository) DeleteCreditor(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.RestructuringCreditor{}, id).Error
}

func (r *restructuringRepository) AddEvent(ctx context.Context, event *models.RestructuringEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *restructuringRepository) ListEvents(ctx context.Context, caseID uint) ([]*models.RestructuringEvent, error) {
	var events []*models.RestructuringEvent
	err := r.db.WithContext(ctx).
		Where("restructuring_case_id = ?", caseID).
		Order("event_date DESC").
		Find(&events).Error
	return events, err
}

func (r *restructuringRepository) AddPayment(ctx context.Context, payment *models.ArrangementPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *restructuringRepository) GetPayment(ctx context.Context, id uint) (*models.ArrangementPayment, error) {
	var payment models.ArrangementPayment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *restructuringRepository) ListPayments(ctx context.Context, caseID uint) ([]*models.ArrangementPayment, error) {
	var payments []*models.ArrangementPayment
	err := r.db.WithContext(ctx).
		Where("restructuring_case_id = ?", caseID).
		Order("installment_number ASC").
		Find(&payments).Error
	return payments, err
}

func (r *restructuringRepository) UpdatePayment(ctx context.Context, payment *models.ArrangementPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *restructuringRepository) DeletePayment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ArrangementPayment{}, id).Error
}
