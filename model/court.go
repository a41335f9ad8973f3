package model

type Court struct {
	DTO
	Coverage string  `gorm:"not null" validate:"required" json:"coverage"`
	Size     string  `gorm:"not null" validate:"required" json:"size"`
	Price    float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
}

type Courts []Court

type CreateCourtInput struct {
	Coverage string  `validate:"required" json:"coverage"`
	Size     string  `validate:"required" json:"size"`
	Price    float64 `validate:"required,gt=0" json:"price"`
}

type EditCourtInput struct {
	Coverage string  `validate:"required" json:"coverage"`
	Size     string  `validate:"required" json:"size"`
	Price    float64 `validate:"required,gt=0" json:"price"`
}
