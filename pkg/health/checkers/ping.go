package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool and cache.Cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency ready when Ping succeeds within the timeout.
type PingChecker struct {
	name    string
	target  Pinger
	timeout time.Duration
}

func NewPingChecker(name string, target Pinger) *PingChecker {
	return &PingChecker{name: name, target: target, timeout: time.Second}
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.target.Ping(ctx)
}
