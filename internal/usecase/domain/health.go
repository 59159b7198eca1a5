package domain

import "context"

// Health pings the backing store.
func (u *Usecase) Health(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.Ping(ctx)
}
