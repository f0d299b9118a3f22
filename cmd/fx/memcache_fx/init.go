package memcache_fx

import (
	"time"

	"go.uber.org/fx"

	"tobugo/pkg/memcache"
)

var Module = fx.Provide(provideResetTokenStore)

func provideResetTokenStore() *memcache.ResetTokenStore {
	return memcache.NewResetTokenStore(15 * time.Minute)
}
