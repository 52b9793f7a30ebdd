package services

import (
	"context"
	"errors"
	"log"
	"time"

	"kbs-store/models"
	"kbs-store/repositories"
	"kbs-store/utils"
)

// PinSender delivers a PIN over an out-of-band channel (SMTP today).
type PinSender interface {
	SendPin(phone, pin string) error
}

type PinService struct {
	repo      repositories.PinRepository
	sender    PinSender
	ttl       time.Duration
	exposePin bool
}

// NewPinService builds the verifier. sender may be nil when no out-of-band
// channel is configured; exposePin then forces the PIN into the generate
// response so development setups stay usable.
func NewPinService(repo repositories.PinRepository, sender PinSender, ttl time.Duration, exposePin bool) *PinService {
	return &PinService{repo: repo, sender: sender, ttl: ttl, exposePin: exposePin}
}

type GeneratedPin struct {
	Phone string
	Pin   string
	// Exposed reports whether the PIN may be echoed to the caller.
	Exposed bool
}

// Generate normalizes the phone, mints a fresh 6-digit PIN and upserts the
// record for that phone. A prior outstanding PIN for the same phone is
// overwritten, so only the newest one verifies.
func (s *PinService) Generate(ctx context.Context, rawPhone string) (*GeneratedPin, error) {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return nil, err
	}

	pin, err := utils.GeneratePin()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.PinRecord{
		Phone:     phone,
		Pin:       pin,
		Verified:  false,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if s.sender != nil {
		// Delivery failure is not fatal: the record exists and the PIN can
		// be regenerated, which also invalidates this one.
		if err := s.sender.SendPin(phone, pin); err != nil {
			log.Printf("PIN delivery failed for %s: %v", phone, err)
		}
	}

	return &GeneratedPin{
		Phone:   phone,
		Pin:     pin,
		Exposed: s.exposePin || s.sender == nil,
	}, nil
}

// Verify checks the exact (phone, pin) pair against the unexpired record and
// marks it verified. Re-verifying an already-verified record succeeds; the
// record stays usable until its natural expiry.
func (s *PinService) Verify(ctx context.Context, rawPhone, pin string) error {
	phone, err := utils.NormalizePhone(rawPhone)
	if err != nil {
		return models.ErrInvalidPin
	}

	if _, err := s.repo.Find(ctx, phone, pin); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrInvalidPin
		}
		return err
	}

	if err := s.repo.MarkVerified(ctx, phone, pin); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// Expired between the lookup and the update.
			return models.ErrInvalidPin
		}
		return err
	}
	return nil
}
