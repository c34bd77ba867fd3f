package usecase

import (
	"context"
	"encoding/json"

	"github.com/example/order-alert-service/internal/domain"
	"github.com/example/order-alert-service/internal/metrics"
)

// GetOrderByID returns an order from the cache by its identifier.
type GetOrderByID struct {
	Cache domain.OrderCache
}

func (uc GetOrderByID) Execute(id string) (domain.Order, bool) {
	return uc.Cache.Get(id)
}

// LoadCache warms the cache from the repository at startup.
type LoadCache struct {
	Repo  domain.OrderRepository
	Cache domain.OrderCache
}

func (uc LoadCache) Execute(ctx context.Context) error {
	return uc.Repo.LoadAll(ctx, func(id string, raw []byte) error {
		var o domain.Order
		if err := json.Unmarshal(raw, &o); err != nil {
			// skip corrupted rows without aborting the full load
			return nil
		}
		uc.Cache.Set(id, o)
		return nil
	})
}

// ProcessIncomingOrder persists an order-created event, updates the cache and
// hands the order to the alert dispatcher. Persistence errors propagate so the
// subscriber withholds the ack and the event is redelivered; the dispatch
// itself is best-effort and never fails the event.
type ProcessIncomingOrder struct {
	Repo     domain.OrderRepository
	Cache    domain.OrderCache
	Dispatch DispatchOrderAlert
}

func (uc ProcessIncomingOrder) Execute(ctx context.Context, raw []byte) error {
	var o domain.Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return err
	}
	if o.OrderUID == "" {
		return domain.ErrValidation
	}
	if err := uc.Repo.Upsert(ctx, o.OrderUID, raw); err != nil {
		return err
	}
	uc.Cache.Set(o.OrderUID, o)
	metrics.OrdersProcessed.Inc()

	uc.Dispatch.Execute(ctx, o)
	return nil
}
