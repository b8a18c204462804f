package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func TestContactSubmitResolvesAsDemoWithoutBackend(t *testing.T) {
	svc := NewContactService(nil, nil)

	msg, demo, err := svc.Submit(models.ContactMessageRequest{
		Name:    "Jonas Jonaitis",
		Email:   "jonas@example.lt",
		Subject: "Order question",
		Message: "Kada atvyks mano užsakymas?",
	}, "lt")

	assert.NoError(t, err)
	assert.True(t, demo)
	assert.Equal(t, "Jonas Jonaitis", msg.Name)
	assert.Equal(t, "lt", msg.Language)
}

func TestContactInboxEmptyWithoutBackend(t *testing.T) {
	svc := NewContactService(nil, nil)

	messages, total, err := svc.List(1, 20)
	assert.NoError(t, err)
	assert.Empty(t, messages)
	assert.Zero(t, total)
}
