package database

import (
	"gorm.io/gorm"

	"github.com/jfalcomer/devblog-backend/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// Create normalizes and validates the contact message, then stores it
func (r *MessageRepo) Create(message *models.Message) error {
	message.Normalize()
	if err := message.Validate(); err != nil {
		return err
	}
	return r.db.Create(message).Error
}

// FindAll returns all contact messages, newest first
func (r *MessageRepo) FindAll() ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}
