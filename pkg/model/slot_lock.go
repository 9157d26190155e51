package model

import "time"

// SlotLock is an advisory lock serializing commits for one (date, slot)
// pair. It narrows the window where two customers race for the same slot.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
