package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbs-store/models"
)

func TestGenerateThenVerify(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "919876543210", result.Phone)
	assert.Len(t, result.Pin, 6)

	err = svc.Verify(ctx, "919876543210", result.Pin)
	assert.NoError(t, err)
}

func TestVerifyWrongPin(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)

	wrong := "000000"
	if result.Pin == wrong {
		wrong = "000001"
	}

	err = svc.Verify(ctx, "919876543210", wrong)
	assert.ErrorIs(t, err, models.ErrInvalidPin)
}

func TestVerifyIsIdempotent(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, result.Phone, result.Pin))
	// A verified record stays usable until expiry.
	assert.NoError(t, svc.Verify(ctx, result.Phone, result.Pin))
	assert.True(t, repo.records[result.Phone].Verified)
}

func TestVerifyAfterExpiry(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)

	repo.expire(result.Phone)

	err = svc.Verify(ctx, result.Phone, result.Pin)
	assert.ErrorIs(t, err, models.ErrInvalidPin)
}

func TestRegenerateInvalidatesOldPin(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	first, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)

	second, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)

	if first.Pin != second.Pin {
		assert.ErrorIs(t, svc.Verify(ctx, first.Phone, first.Pin), models.ErrInvalidPin)
	}
	assert.NoError(t, svc.Verify(ctx, second.Phone, second.Pin))
	assert.Len(t, repo.records, 1)
}

func TestGenerateInvalidPhone(t *testing.T) {
	svc := NewPinService(newMemPinRepo(), nil, 5*time.Minute, true)

	_, err := svc.Generate(context.Background(), "12345")
	assert.ErrorIs(t, err, models.ErrInvalidPhone)
}

func TestGenerateDeliversOutOfBand(t *testing.T) {
	repo := newMemPinRepo()
	sender := &mockSender{}
	svc := NewPinService(repo, sender, 5*time.Minute, false)

	result, err := svc.Generate(context.Background(), "9876543210")
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "919876543210", sender.sent[0][0])
	assert.Equal(t, result.Pin, sender.sent[0][1])
	// With a delivery channel configured the PIN stays off the response.
	assert.False(t, result.Exposed)
}

func TestGenerateExposesPinWithoutSender(t *testing.T) {
	svc := NewPinService(newMemPinRepo(), nil, 5*time.Minute, false)

	result, err := svc.Generate(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.True(t, result.Exposed)
}

func TestGenerateSurvivesDeliveryFailure(t *testing.T) {
	repo := newMemPinRepo()
	sender := &mockSender{err: errUploadDown}
	svc := NewPinService(repo, sender, 5*time.Minute, false)
	ctx := context.Background()

	result, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)
	assert.NoError(t, svc.Verify(ctx, result.Phone, result.Pin))
}

func TestSweeperRemovesExpired(t *testing.T) {
	repo := newMemPinRepo()
	svc := NewPinService(repo, nil, 5*time.Minute, true)
	ctx := context.Background()

	fresh, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)
	stale, err := svc.Generate(ctx, "9123456780")
	require.NoError(t, err)

	repo.expire(stale.Phone)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Contains(t, repo.records, fresh.Phone)
	assert.NotContains(t, repo.records, stale.Phone)
}
