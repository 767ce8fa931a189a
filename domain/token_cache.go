package domain

import "context"

// TokenCache keeps the ids of issued session tokens so a signout can
// invalidate them before they expire.
type TokenCache interface {
	PostCacheData(ctx context.Context, key string, value string) error
	GetCachedValue(ctx context.Context, key string) (string, error)
	DelCachedValue(ctx context.Context, key string) error
}
