package usecase

import (
	"context"
	"strings"

	"github.com/example/order-alert-service/internal/domain"
)

// RegisterDeviceToken handles the "enable notifications" action: it resolves
// the administrator account, adds the device token to the stored set and sets
// the enabled flag. Re-registering an existing token is a no-op.
type RegisterDeviceToken struct {
	Directory domain.AdminDirectory
	Profiles  domain.ProfileRepository
	Config    AlertConfig
}

func (uc RegisterDeviceToken) Execute(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ErrValidation
	}
	userID, err := uc.Directory.ResolveEmail(ctx, uc.Config.AdminEmail)
	if err != nil {
		return err
	}
	return uc.Profiles.AddToken(ctx, userID, token)
}
