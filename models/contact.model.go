package models

import (
	"gorm.io/gorm"
)

// Contact stores a contact-form submission. Status stays "new" until an
// admin tool picks it up; no API route transitions it.
type Contact struct {
	gorm.Model
	Reference string `json:"reference" gorm:"index;not null"`
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone" gorm:"default:''"`
	Subject   string `json:"subject" gorm:"not null"`
	Category  string `json:"category" gorm:"default:''"`
	Message   string `json:"message" gorm:"not null"`
	Status    string `json:"status" gorm:"default:'new'"`
}
