package models

import "time"

// Employee is a crew member paid per day worked.
type Employee struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	DailyWage       float64   `json:"daily_wage" db:"daily_wage"`
	OvertimeRate    float64   `json:"overtime_rate" db:"overtime_rate"`         // per overtime hour
	BankDailyAmount float64   `json:"bank_daily_amount" db:"bank_daily_amount"` // part of each day's wage paid by bank transfer
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Boat is a vessel employees are assigned to for the day.
type Boat struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
