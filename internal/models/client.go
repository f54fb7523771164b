package models

import "time"

// ClientType distinguishes natural persons from companies.
type ClientType string

const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCompany    ClientType = "company"
)

// Valid reports whether t is a member of the client type set.
func (t ClientType) Valid() bool {
	return t == ClientTypeIndividual || t == ClientTypeCompany
}

// Client is a party the firm represents in bankruptcy or restructuring
// proceedings. The registry identifiers (NIP, REGON, KRS, PESEL) are
// Polish business/person registry numbers kept as opaque strings.
type Client struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uint      `gorm:"index" json:"user_id"`
	Name       string     `gorm:"not null" json:"name"`
	ClientType ClientType `gorm:"type:varchar(20);not null" json:"client_type"`
	NIP        string     `gorm:"size:20" json:"nip"`
	REGON      string     `gorm:"size:20" json:"regon"`
	KRS        string     `gorm:"size:20" json:"krs"`
	PESEL      string     `gorm:"size:11" json:"pesel"`
	Email      string     `gorm:"not null" json:"email"`
	Phone      string     `gorm:"size:20" json:"phone"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	PostalCode string     `gorm:"size:10" json:"postal_code"`
	Notes      string     `gorm:"type:text" json:"notes"`
	IsActive   bool       `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
