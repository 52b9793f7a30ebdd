package models

import "time"

// PinRecord is the single outstanding admin PIN for a phone number.
// A new Generate call for the same phone overwrites it.
type PinRecord struct {
	Phone     string    `json:"phone" bson:"phone"`
	Pin       string    `json:"pin" bson:"pin"`
	Verified  bool      `json:"verified" bson:"verified"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expires_at"`
}

func (p *PinRecord) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
