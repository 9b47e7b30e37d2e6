package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/folio/internal/client/api"
	"github.com/dmitrijs2005/folio/internal/common"
)

type ContactAPI interface {
	SendContact(ctx context.Context, msg api.ContactMessage) error
}

type ContactService struct {
	api ContactAPI
}

func NewContactService(a ContactAPI) *ContactService {
	return &ContactService{api: a}
}

// Send delivers a contact message. All three fields are required.
func (s *ContactService) Send(ctx context.Context, msg api.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)

	if msg.Name == "" || msg.Email == "" || common.Blank(msg.Message) {
		return fmt.Errorf("%w: name, email and message are required", common.ErrValidation)
	}
	if !strings.Contains(msg.Email, "@") {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}

	if err := s.api.SendContact(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
