package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/order-alert-service/internal/domain"
	"github.com/example/order-alert-service/internal/metrics"
)

const alertTitle = "New Order Received!"

// AlertConfig identifies the administrator account and the display currency
// for alert bodies. Injected at construction so nothing is process-global.
type AlertConfig struct {
	AdminEmail string
	Currency   string
}

// DispatchOrderAlert notifies the administrator's registered devices that an
// order was created, then prunes any token the provider reported permanently
// dead. It is best-effort: every failure is logged and absorbed, so a caller
// never sees an error from Execute. Safe to re-run for the same order — the
// send repeats and the prune is a set difference.
type DispatchOrderAlert struct {
	Directory domain.AdminDirectory
	Profiles  domain.ProfileRepository
	Push      domain.PushSender
	Config    AlertConfig
	Log       *slog.Logger
}

func (uc DispatchOrderAlert) Execute(ctx context.Context, o domain.Order) {
	log := uc.logger().With(slog.String("order_uid", o.OrderUID))

	userID, err := uc.Directory.ResolveEmail(ctx, uc.Config.AdminEmail)
	if errors.Is(err, domain.ErrNotFound) {
		log.Info("alert skipped: admin account not found")
		metrics.AlertSkips.WithLabelValues("admin_not_found").Inc()
		return
	}
	if err != nil {
		log.Error("admin lookup failed", slog.Any("error", err))
		return
	}

	profile, err := uc.Profiles.Find(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		log.Info("alert skipped: no notification profile")
		metrics.AlertSkips.WithLabelValues("no_profile").Inc()
		return
	}
	if err != nil {
		log.Error("profile read failed", slog.Any("error", err))
		return
	}
	if !profile.Enabled {
		log.Info("alert skipped: notifications disabled")
		metrics.AlertSkips.WithLabelValues("disabled").Inc()
		return
	}
	if !profile.HasTokens() {
		log.Info("alert skipped: no registered devices")
		metrics.AlertSkips.WithLabelValues("no_tokens").Inc()
		return
	}

	results, err := uc.Push.SendMulticast(ctx, profile.Tokens, uc.buildNotification(o))
	if err != nil {
		log.Error("multicast send failed", slog.Any("error", err))
		metrics.PushSendFailures.Inc()
		return
	}
	metrics.AlertsSent.Inc()

	var dead []string
	for _, r := range results {
		switch {
		case r.PermanentlyInvalid():
			dead = append(dead, r.Token)
		case !r.Success:
			log.Info("transient delivery failure",
				slog.String("error_code", r.ErrorCode))
		}
	}
	if len(dead) == 0 {
		log.Info("alert dispatched", slog.Int("devices", len(profile.Tokens)))
		return
	}

	if err := uc.Profiles.RemoveTokens(ctx, userID, dead); err != nil {
		log.Error("token prune failed", slog.Any("error", err),
			slog.Int("dead_tokens", len(dead)))
		return
	}
	metrics.TokensPruned.Add(float64(len(dead)))
	log.Info("alert dispatched",
		slog.Int("devices", len(profile.Tokens)),
		slog.Int("pruned", len(dead)))
}

func (uc DispatchOrderAlert) buildNotification(o domain.Order) domain.Notification {
	cur := uc.Config.Currency
	if cur == "" {
		cur = "PKR"
	}
	return domain.Notification{
		Title: alertTitle,
		Body:  fmt.Sprintf("Order #%s for %s %.2f has been placed.", o.ShortID(), cur, o.TotalPrice),
		Data:  map[string]string{"order_uid": o.OrderUID},
	}
}

func (uc DispatchOrderAlert) logger() *slog.Logger {
	if uc.Log != nil {
		return uc.Log
	}
	return slog.Default()
}
