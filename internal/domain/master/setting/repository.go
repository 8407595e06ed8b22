package setting

import "context"

type SettingRepository interface {
	Get(ctx context.Context, key string) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	// Upsert creates the setting or replaces its value.
	Upsert(ctx context.Context, s Setting) (Setting, error)
}
