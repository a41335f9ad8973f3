package model

import "court_manager/utils"

// Rental links one customer to one court for one calendar date.
//
// The unique index on CustomerID is what actually carries the
// one-rental-per-customer rule: the application-level admission check in the
// service layer is advisory, the index closes the check-then-insert race.
// Both foreign keys are RESTRICT so deleting a referenced customer or court
// is rejected by the database instead of cascading.
type Rental struct {
	DTO
	CourtID    uint           `gorm:"not null;index" json:"courtId"`
	CustomerID uint           `gorm:"not null;uniqueIndex" json:"customerId"`
	Date       utils.DateOnly `gorm:"type:date;not null" json:"date"`
	Price      float64        `gorm:"not null" json:"price"`

	Court    Court    `gorm:"foreignKey:CourtID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

type Rentals []Rental

type CreateRentalInput struct {
	CourtID    uint           `validate:"required" json:"courtId"`
	CustomerID uint           `validate:"required" json:"customerId"`
	Date       utils.DateOnly `validate:"required" json:"date"`
	Price      float64        `validate:"required,gt=0" json:"price"`
}

// EditRentalInput carries the price field so the full entity shape parses, but
// the persisted price is always derived from the stored one (see helper.FinalPrice).
type EditRentalInput struct {
	CourtID    uint           `validate:"required" json:"courtId"`
	CustomerID uint           `validate:"required" json:"customerId"`
	Date       utils.DateOnly `validate:"required" json:"date"`
	Price      float64        `json:"price"`
}
