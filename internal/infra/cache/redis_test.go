package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

type recordingLogger struct{ warnings []string }

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "booked_slots:2026-10-20", key("2026-10-20"))
	assert.Equal(t, "booked_slots_version:2026-10-20", versionKey("2026-10-20"))
}

func TestRedis_UnreachableIsAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	log := &recordingLogger{}
	c := NewRedis(client, time.Minute, log)
	ctx := context.Background()

	assert.Equal(t, int64(0), c.Version(ctx, "2026-10-20"))
	c.Set(ctx, "2026-10-20", 0, []string{"09-10"})
	_, ok := c.Get(ctx, "2026-10-20")
	c.Invalidate(ctx, "2026-10-20")

	assert.False(t, ok)
	assert.Len(t, log.warnings, 4)
}
