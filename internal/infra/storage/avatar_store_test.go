package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"log/slog"
	"strings"
	"testing"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

// 1x1 transparent PNG
const pixelPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

func pngBytes(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(pixelPNG)
	require.NoError(t, err)

	return data
}

func newMemStore(t *testing.T, maxBytes int64) (*avatarStore, *blob.Bucket) {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newAvatarStore(bucket, "https://cdn.example.com/", maxBytes), bucket
}

func TestAvatarStore_SavePNG(t *testing.T) {
	ctx := context.Background()
	store, bucket := newMemStore(t, 1024)

	url, err := store.Save(ctx, "Ada Lovelace", pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/avatars/ada-lovelace/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t), stored)
}

func TestAvatarStore_RejectsInvalidContent(t *testing.T) {
	store, _ := newMemStore(t, 1024)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "plain text", data: []byte("definitely not a picture")},
		{name: "pdf", data: []byte("%PDF-1.7\n%âãÏÓ\n1 0 obj\n")},
		{name: "too large", data: append(pngBytes(t), bytes.Repeat([]byte{0}, 2048)...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Save(context.Background(), "ada", tt.data)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidAvatar), "got %v", err)
		})
	}
}

func TestAvatarStore_SizeDetailIsReadable(t *testing.T) {
	store, _ := newMemStore(t, 1024)

	_, err := store.Save(context.Background(), "ada", append(pngBytes(t), bytes.Repeat([]byte{0}, 2048)...))

	appErr, ok := errors.Find[*domainerrors.BaseError](err)
	require.True(t, ok)
	assert.Equal(t, "avatar exceeds 1.0 KB", appErr.Details())
}

func TestAvatarStore_WithoutPublicBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := newAvatarStore(bucket, "", 1024)

	url, err := store.Save(context.Background(), "", pngBytes(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "avatars/anonymous/"), url)
}

func TestNewAvatarStore_OpensConfiguredBucket(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	store, err := NewAvatarStore(AvatarStoreParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Avatar: &config.AvatarConfig{BucketURL: "file://" + t.TempDir(), MaxBytes: 4096}},
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "ada", pngBytes(t))
	require.NoError(t, err)

	lc.RequireStart().RequireStop()
}

func TestNewAvatarStore_UnknownScheme(t *testing.T) {
	_, err := NewAvatarStore(AvatarStoreParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Avatar: &config.AvatarConfig{BucketURL: "ftp://nowhere"}},
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	assert.ErrorContains(t, err, "failed to open avatar bucket")
}
