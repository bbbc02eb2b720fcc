package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ildanga/internal/models/db_models"
)

func TestSetAndGet(t *testing.T) {
	pools := NewCandidatePools()
	items := []db_models.Attraction{{ID: "1", Title: "경포대"}}

	pools.Set("attractions:1", items, 0)

	got, ok := pools.Get("attractions:1")
	require.True(t, ok)
	assert.Equal(t, items, got)

	_, ok = pools.Get("attractions:2")
	assert.False(t, ok)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	pools := NewCandidatePools()
	pools.Set("key", []db_models.Attraction{{ID: "1"}}, 0)

	_, ok := pools.Get("key")
	assert.True(t, ok)
}

func TestExpiredEntryIsInvisible(t *testing.T) {
	pools := NewCandidatePools()
	pools.Set("key", []db_models.Attraction{{ID: "1"}}, time.Nanosecond)

	time.Sleep(5 * time.Millisecond)

	_, ok := pools.Get("key")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	pools := NewCandidatePools()
	pools.Set("key", []db_models.Attraction{{ID: "1"}}, 0)

	pools.Delete("key")

	_, ok := pools.Get("key")
	assert.False(t, ok)
}
