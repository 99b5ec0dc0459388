package auth

import (
	"context"

	"go.uber.org/fx"

	"todo/config"
	"todo/internal/domain/service"
)

// IssuerParams defines the dependencies for the credential issuer provider.
type IssuerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewCredentialIssuer selects the configured session strategy. The memory
// registry's sweeper is tied to the application lifecycle so it stops on
// shutdown.
func NewCredentialIssuer(params IssuerParams) (service.CredentialIssuer, error) {
	if params.Config.Auth.Strategy == config.StrategyMemory {
		registry := NewMemoryRegistry(params.Config)
		params.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return registry.Close(ctx)
			},
		})

		return registry, nil
	}

	return NewJWTIssuer(params.Config)
}
