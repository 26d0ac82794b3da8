package model

import "time"

// Supported interface languages. DefaultLanguage is the fallback whenever a
// user's preference is unknown.
const (
	LangRU = "ru"
	LangEN = "en"
	LangUZ = "uz"

	DefaultLanguage = LangRU
)

// ValidLanguage reports whether lang is one the bot can speak.
func ValidLanguage(lang string) bool {
	switch lang {
	case LangRU, LangEN, LangUZ:
		return true
	}
	return false
}

// User represents a registered bot user. TelegramID is nil until the user
// links their account by phone login; IsActive gates access to testing.
type User struct {
	ID         int64      `json:"id"`
	TelegramID *int64     `json:"telegram_id,omitempty"`
	Name       string     `json:"name"`
	Age        *int       `json:"age,omitempty"`
	Phone      string     `json:"phone"`
	PhotoID    string     `json:"photo_id,omitempty"`
	DocumentID string     `json:"document_id,omitempty"`
	Language   string     `json:"language,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// RegistrationForm collects the registration wizard fields before the user
// row is created.
type RegistrationForm struct {
	Name       string `validate:"required,min=2,max=100"`
	Age        int    `validate:"required,min=1,max=120"`
	Phone      string `validate:"required,phone"`
	PhotoID    string `validate:"required"`
	DocumentID string `validate:"required"`
	Language   string `validate:"omitempty,oneof=ru en uz"`
}
