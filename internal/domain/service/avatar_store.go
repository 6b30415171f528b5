package service

import (
	"context"
)

// AvatarStore persists profile pictures and returns their public URL.
type AvatarStore interface {
	// Save stores data under a key derived from owner. Non-image content or oversize
	// payloads are rejected with domainerrors.ErrInvalidAvatar.
	Save(ctx context.Context, owner string, data []byte) (string, error)
}
