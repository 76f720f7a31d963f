package submit_checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/campaignservice"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/checkoutservice"
	"github.com/valle1212i/Glow-SessionService/internal/integrations/stripecheckout"
)

// UseCase оркестратор оформления заказа: разрешение вариантов,
// кампанийные цены, создание платежной сессии и регистрация в трекере
type UseCase struct {
	catalog   CatalogClient
	campaigns CampaignClient
	sessions  SessionCreator
	registrar SessionRegistrar
	logger    Logger
}

func New(
	catalog CatalogClient,
	campaigns CampaignClient,
	sessions SessionCreator,
	registrar SessionRegistrar,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:   catalog,
		campaigns: campaigns,
		sessions:  sessions,
		registrar: registrar,
		logger:    logger,
	}
}

// Execute проводит корзину через весь конвейер оформления заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Копия позиций: конвейер мутирует артикулы и ценовые идентификаторы
	items := make([]domain.CartItem, len(req.Items))
	copy(items, req.Items)

	// 3. Разрешение вариантов, строго "всё или ничего"
	if err := uc.resolveVariants(ctx, req.Tenant, items); err != nil {
		return nil, err
	}

	// 4. Кампанийные цены: недоступность сервиса не прерывает оформление
	uc.applyCampaignPrices(ctx, req.Tenant, items)

	// 5. Создание платежной сессии
	checkoutReq := &domain.CheckoutRequest{
		Items:          items,
		SuccessURL:     req.SuccessURL,
		CancelURL:      req.CancelURL,
		CustomerEmail:  req.CustomerEmail,
		OrderRef:       uuid.NewString(),
		IdempotencyKey: uuid.NewString(),
	}

	session, err := uc.sessions.CreateSession(ctx, req.Tenant, checkoutReq)
	if err != nil {
		return nil, uc.mapSessionError(err)
	}

	// 6. Регистрация в трекере брошенных корзин, best-effort
	uc.registerSession(ctx, req.Tenant, session)

	return &Response{
		CheckoutURL: session.CheckoutURL,
		SessionID:   session.SessionID,
		OrderID:     session.OrderID,
	}, nil
}

// applyCampaignPrices подменяет базовый priceId кампанийным там,
// где кампания активна. Любой отказ сервиса кампаний деградирует
// до базовой цены и никогда не прерывает оформление
func (uc *UseCase) applyCampaignPrices(ctx context.Context, tenant string, items []domain.CartItem) {
	for i := range items {
		if items[i].ProductID == "" {
			continue
		}

		price, err := uc.campaigns.GetCampaignPriceWithGracefulDegradation(ctx, tenant, items[i].ProductID, items[i].StripePriceID)
		if err != nil {
			// Отсутствие кампании - нормальный результат, деградация уже
			// залогирована клиентом; в обоих случаях остается базовая цена
			if !errors.Is(err, campaignservice.ErrNoCampaignPrice) {
				uc.logger.Warn("submit_checkout: campaign price for product %s unavailable, using base price: %v", items[i].ProductID, err)
			}
			continue
		}

		if price == nil || !price.HasCampaignPrice || price.PriceID == "" {
			continue
		}

		items[i].CampaignPriceID = price.PriceID
		items[i].StripePriceID = price.PriceID
		items[i].HasCampaign = true
	}
}

// registerSession регистрирует сессию для трекинга брошенных корзин.
// Повторы и сохранение в хранилище живут внутри регистратора;
// отказ логируется как Error, но не влияет на результат оформления
func (uc *UseCase) registerSession(ctx context.Context, tenant string, session *domain.CheckoutSession) {
	if err := uc.registrar.Register(ctx, tenant, session); err != nil {
		uc.logger.Error("submit_checkout: failed to register session %s for cart tracking: %v", session.SessionID, err)
	}
}

// mapSessionError переводит ошибки обоих драйверов сессий в ошибки уровня usecase
func (uc *UseCase) mapSessionError(err error) error {
	var stockErr *checkoutservice.StockError
	if errors.As(err, &stockErr) {
		// Сообщение бэкенда авторитетно и пробрасывается дословно
		return &OutOfStockError{Message: stockErr.Message}
	}

	var portalValidationErr *checkoutservice.ValidationError
	if errors.As(err, &portalValidationErr) {
		return &ValidationError{Message: portalValidationErr.Message}
	}

	var stripeValidationErr *stripecheckout.ValidationError
	if errors.As(err, &stripeValidationErr) {
		return &ValidationError{Message: stripeValidationErr.Message}
	}

	switch {
	case errors.Is(err, checkoutservice.ErrNetwork):
		uc.logger.Error("submit_checkout: network failure creating session: %v", err)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	case errors.Is(err, checkoutservice.ErrUpstreamUnavailable),
		errors.Is(err, stripecheckout.ErrUpstreamUnavailable):
		uc.logger.Error("submit_checkout: upstream failure creating session: %v", err)
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	default:
		uc.logger.Error("submit_checkout: unexpected error creating session: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
