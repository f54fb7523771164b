package database

import "kapm/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Tag{},
		&models.BlogPost{},
		&models.Page{},
		&models.MediaFile{},
		&models.Comment{},
		&models.Client{},
		&models.BankruptcyCase{},
		&models.Creditor{},
		&models.BankruptcyEvent{},
		&models.ConsumerBankruptcyDetails{},
		&models.RestructuringCase{},
		&models.ArrangementProposal{},
		&models.RestructuringCreditor{},
		&models.RestructuringEvent{},
		&models.ArrangementPayment{},
	}
}
