package services

import (
	"log"

	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// ContactService stores contact form submissions and forwards them by email.
// In demo mode the message is accepted locally so the form still resolves.
type ContactService struct {
	db     *gorm.DB
	resend *ResendClient
}

func NewContactService(db *gorm.DB, resend *ResendClient) *ContactService {
	return &ContactService{db: db, resend: resend}
}

// Submit persists the message and forwards it asynchronously. The returned
// bool reports demo mode, where nothing was persisted.
func (s *ContactService) Submit(req models.ContactMessageRequest, lang string) (*models.ContactMessage, bool, error) {
	msg := &models.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Language: lang,
	}

	demoMode := config.MockMode || s.db == nil
	if !demoMode {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
			// A storage failure still resolves the form; the message is
			// forwarded by email below.
			log.Printf("❌ failed to store contact message, resolving as demo-mode success: %v", err)
			demoMode = true
		}
	} else {
		log.Printf("⚠️  demo mode: contact message from %s accepted locally", req.Email)
	}

	if s.resend != nil {
		go func(m models.ContactMessage) {
			if err := s.resend.SendContactMessageEmail(&m); err != nil {
				log.Printf("❌ failed to forward contact message from %s: %v", m.Email, err)
			}
		}(*msg)
	}

	return msg, demoMode, nil
}

// List returns stored messages for the admin inbox, newest first.
func (s *ContactService) List(page, limit int) ([]models.ContactMessage, int64, error) {
	if config.MockMode || s.db == nil {
		return []models.ContactMessage{}, 0, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.ContactMessage
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
