// Package storage keeps uploaded avatars in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"accounts/config"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/service"
	"accounts/internal/errors"
	"accounts/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const (
	defaultBucketURL = "mem://"
	defaultMaxBytes  = 1 << 20
	avatarPrefix     = "avatars"
)

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9_-]+`)

type avatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxBytes      int64
}

// AvatarStoreParams holds dependencies for AvatarStore, injected by Fx
type AvatarStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewAvatarStore opens the configured bucket and closes it when the app stops.
func NewAvatarStore(params AvatarStoreParams) (service.AvatarStore, error) {
	bucketURL, publicBaseURL, maxBytes := defaultBucketURL, "", int64(defaultMaxBytes)
	if cfg := params.Config.Avatar; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		if cfg.MaxBytes > 0 {
			maxBytes = cfg.MaxBytes
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %s", bucketURL)
	}

	params.Logger.Info("Avatar bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newAvatarStore(bucket, publicBaseURL, maxBytes), nil
}

func newAvatarStore(bucket *blob.Bucket, publicBaseURL string, maxBytes int64) *avatarStore {
	return &avatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		maxBytes:      maxBytes,
	}
}

func (s *avatarStore) Save(ctx context.Context, owner string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.WithStack(domainerrors.ErrInvalidAvatar.WithDetails("avatar is empty"))
	}
	if int64(len(data)) > s.maxBytes {
		return "", errors.WithStack(domainerrors.ErrInvalidAvatar.WithDetails("avatar exceeds " + util.FormatBytes(s.maxBytes)))
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errors.WithStack(domainerrors.ErrInvalidAvatar.WithDetails("avatar must be an image, got " + mime.String()))
	}

	key := avatarKey(owner, mime.Extension())
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  mime.String(),
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to write avatar")
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

// avatarKey builds avatars/<owner>/<uuid><ext>; every upload gets a fresh key.
func avatarKey(owner, ext string) string {
	dir := unsafeKeyChars.ReplaceAllString(strings.ToLower(owner), "-")
	dir = strings.Trim(dir, "-")
	if dir == "" {
		dir = "anonymous"
	}

	return avatarPrefix + "/" + dir + "/" + uuid.NewString() + ext
}
