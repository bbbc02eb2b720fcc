package memcache_fx

import (
	"go.uber.org/fx"

	mem "ildanga/pkg/memcache"
)

var Module = fx.Provide(provideCandidatePools)

func provideCandidatePools() mem.CandidatePoolStore {
	return mem.NewCandidatePools()
}
