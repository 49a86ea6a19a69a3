package cache

import "context"

// Noop кеш-заглушка, всегда промах
type Noop struct{}

func (Noop) Get(context.Context, string) ([]string, bool) { return nil, false }
func (Noop) Version(context.Context, string) int64        { return 0 }
func (Noop) Set(context.Context, string, int64, []string) {}
func (Noop) Invalidate(context.Context, string)           {}
