package models

// Expense is a single recorded spending event.
type Expense struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	UserID      uint    `json:"user" gorm:"index;not null"`
	Category    string  `json:"category" gorm:"size:50;not null"`
	Amount      float64 `json:"amount" gorm:"type:numeric(10,2);not null"`
	Date        Date    `json:"date" gorm:"type:date;not null"`
	Description string  `json:"description"`
	User        User    `json:"-" gorm:"foreignKey:UserID"`
}

func (Expense) TableName() string {
	return "expenses"
}
