package submit_checkout

import (
	"context"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/campaignservice"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога для разрешения вариантов
type CatalogClient interface {
	ListProducts(ctx context.Context, tenant string) ([]catalogservice.Product, error)
	GetProduct(ctx context.Context, tenant, productID string) (*catalogservice.Product, error)
}

// CampaignClient интерфейс клиента кампанийных цен
type CampaignClient interface {
	GetCampaignPriceWithGracefulDegradation(ctx context.Context, tenant, productID, priceID string) (*campaignservice.CampaignPrice, error)
}

// SessionCreator интерфейс создания checkout-сессии
// Реализации: клиент портала и прямой Stripe драйвер
type SessionCreator interface {
	CreateSession(ctx context.Context, tenant string, req *domain.CheckoutRequest) (*domain.CheckoutSession, error)
}

// SessionRegistrar интерфейс регистрации сессии для трекинга брошенных корзин
type SessionRegistrar interface {
	Register(ctx context.Context, tenant string, session *domain.CheckoutSession) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
