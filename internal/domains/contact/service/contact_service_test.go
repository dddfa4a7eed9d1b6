package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/domains/profile"
	"portfolio-backend/internal/infrastructure/email"
)

type fakeMailer struct {
	sent []email.Message
}

func (f *fakeMailer) Send(_ context.Context, msg email.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

type fakeProfileRepo struct {
	profile *profile.Profile
}

func (f *fakeProfileRepo) Get(_ context.Context) (*profile.Profile, error) {
	if f.profile == nil {
		return nil, profile.ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) (*profile.Profile, error) {
	f.profile = p
	return p, nil
}

func validRequest() *contact.SendRequest {
	return &contact.SendRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "Hello, I would like to talk.",
	}
}

func TestSendDeliversToProfileEmail(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	profiles := &fakeProfileRepo{profile: &profile.Profile{Email: "owner@example.com"}}
	svc := NewContactService(mailer, profiles, "fallback@example.com")

	require.NoError(t, svc.Send(ctx, validRequest()))

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo, "replies go to the submitter")
	assert.Equal(t, "Portfolio Contact: Jane Visitor", msg.Subject)
	assert.Contains(t, msg.Body, "Hello, I would like to talk.")
}

func TestSendFallsBackWhenNoProfile(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, &fakeProfileRepo{}, "fallback@example.com")

	require.NoError(t, svc.Send(ctx, validRequest()))

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "fallback@example.com", mailer.sent[0].To)
}

func TestSendValidatesBeforeDispatch(t *testing.T) {
	ctx := context.Background()
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, &fakeProfileRepo{}, "fallback@example.com")

	cases := []*contact.SendRequest{
		{Email: "jane@example.com", Message: "hi"},
		{Name: "Jane", Message: "hi"},
		{Name: "Jane", Email: "jane@example.com"},
		{Name: "Jane", Email: "not-an-email", Message: "hi"},
	}
	for _, req := range cases {
		assert.Error(t, svc.Send(ctx, req))
	}
	assert.Empty(t, mailer.sent, "invalid submissions must never reach the mailer")
}

func TestSendWithoutTransport(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(nil, &fakeProfileRepo{}, "fallback@example.com")

	err := svc.Send(ctx, validRequest())
	assert.ErrorIs(t, err, contact.ErrNotConfigured)

	// Validation still runs first even with no transport.
	err = svc.Send(ctx, &contact.SendRequest{Name: "Jane"})
	assert.NotErrorIs(t, err, contact.ErrNotConfigured)
	assert.Error(t, err)
}
