package submit_checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
	campaignClient "github.com/valle1212i/Glow-SessionService/internal/integrations/campaignservice"
	catalogClient "github.com/valle1212i/Glow-SessionService/internal/integrations/catalogservice"
	checkoutClient "github.com/valle1212i/Glow-SessionService/internal/integrations/checkoutservice"
	stripeClient "github.com/valle1212i/Glow-SessionService/internal/integrations/stripecheckout"
)

type fakeCatalogClient struct {
	products []catalogClient.Product
	listErr  error
	getErr   error
}

func (f *fakeCatalogClient) ListProducts(_ context.Context, _ string) ([]catalogClient.Product, error) {
	return f.products, f.listErr
}

func (f *fakeCatalogClient) GetProduct(_ context.Context, _ string, productID string) (*catalogClient.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.products {
		if f.products[i].ID == productID {
			return &f.products[i], nil
		}
	}
	return nil, catalogClient.ErrProductNotFound
}

type fakeCampaignClient struct {
	prices map[string]*campaignClient.CampaignPrice
	err    error
}

func (f *fakeCampaignClient) GetCampaignPriceWithGracefulDegradation(_ context.Context, _, productID, _ string) (*campaignClient.CampaignPrice, error) {
	if f.err != nil {
		return nil, f.err
	}
	if price, ok := f.prices[productID]; ok {
		return price, nil
	}
	return nil, campaignClient.ErrNoCampaignPrice
}

type fakeSessionCreator struct {
	session *domain.CheckoutSession
	err     error
	lastReq *domain.CheckoutRequest
	calls   int
}

func (f *fakeSessionCreator) CreateSession(_ context.Context, _ string, req *domain.CheckoutRequest) (*domain.CheckoutSession, error) {
	f.calls++
	f.lastReq = req
	return f.session, f.err
}

type fakeRegistrar struct {
	err   error
	calls int
}

func (f *fakeRegistrar) Register(_ context.Context, _ string, _ *domain.CheckoutSession) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCatalog() *fakeCatalogClient {
	return &fakeCatalogClient{products: []catalogClient.Product{
		{
			ID:            "prod-1",
			Name:          "Schampo",
			StripePriceID: "price_base_1",
			Variants: []catalogClient.Variant{
				{ArticleNumber: "ART-1", StripePriceID: "price_base_1"},
			},
		},
		{
			ID:            "prod-2",
			Name:          "Balsam",
			StripePriceID: "price_base_2",
			Variants: []catalogClient.Variant{
				{ArticleNumber: "ART-2A", StripePriceID: "price_base_2"},
				{ArticleNumber: "ART-2B", StripePriceID: "price_other"},
			},
		},
	}}
}

func testSession() *domain.CheckoutSession {
	return &domain.CheckoutSession{
		SessionID:   "cs_123",
		CheckoutURL: "https://pay.example.com/cs_123",
		OrderID:     "order-7",
		AmountTotal: 24900,
		Currency:    "sek",
	}
}

func testRequest(items ...domain.CartItem) *Request {
	return &Request{
		Tenant:     "glow-studio",
		Items:      items,
		SuccessURL: "https://glow.example.com/success",
		CancelURL:  "https://glow.example.com/cancel",
	}
}

func TestExecute_Success(t *testing.T) {
	creator := &fakeSessionCreator{session: testSession()}
	registrar := &fakeRegistrar{}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, registrar, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 2},
	))
	require.NoError(t, err)

	assert.Equal(t, "https://pay.example.com/cs_123", resp.CheckoutURL)
	assert.Equal(t, "cs_123", resp.SessionID)
	assert.Equal(t, 1, registrar.calls)

	require.NotNil(t, creator.lastReq)
	require.Len(t, creator.lastReq.Items, 1)
	assert.Equal(t, "ART-1", creator.lastReq.Items[0].VariantID)
	assert.NotEmpty(t, creator.lastReq.OrderRef)
	assert.NotEmpty(t, creator.lastReq.IdempotencyKey)
}

func TestExecute_VariantResolvedByPriceID(t *testing.T) {
	// Позиция без productId: вариант ищется по stripePriceId по всему каталогу
	creator := &fakeSessionCreator{session: testSession()}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{StripePriceID: "price_other", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "ART-2B", creator.lastReq.Items[0].VariantID)
}

func TestExecute_MissingVariantFailsBeforeSession(t *testing.T) {
	// Разрешение "всё или ничего": одна неразрешимая позиция
	// прерывает оформление до создания сессии
	creator := &fakeSessionCreator{session: testSession()}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
		domain.CartItem{ProductID: "prod-2", StripePriceID: "price_unknown", Quantity: 1},
	))
	require.ErrorIs(t, err, ErrMissingVariant)
	assert.Zero(t, creator.calls)

	var missing *MissingVariantError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"prod-2"}, missing.ProductIDs)
}

func TestExecute_CampaignPriceSubstituted(t *testing.T) {
	creator := &fakeSessionCreator{session: testSession()}
	campaigns := &fakeCampaignClient{prices: map[string]*campaignClient.CampaignPrice{
		"prod-1": {HasCampaignPrice: true, PriceID: "price_campaign_1", CampaignName: "Sommar"},
	}}
	uc := New(testCatalog(), campaigns, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.NoError(t, err)

	item := creator.lastReq.Items[0]
	assert.Equal(t, "price_campaign_1", item.StripePriceID)
	assert.True(t, item.HasCampaign)
}

func TestExecute_CampaignFailureFallsBackToBasePrice(t *testing.T) {
	// Недоступность сервиса кампаний никогда не прерывает оформление
	creator := &fakeSessionCreator{session: testSession()}
	campaigns := &fakeCampaignClient{err: campaignClient.ErrServiceDegraded}
	uc := New(testCatalog(), campaigns, creator, &fakeRegistrar{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "cs_123", resp.SessionID)

	item := creator.lastReq.Items[0]
	assert.Equal(t, "price_base_1", item.StripePriceID)
	assert.False(t, item.HasCampaign)
}

func TestExecute_RegistrationFailureDoesNotFailCheckout(t *testing.T) {
	creator := &fakeSessionCreator{session: testSession()}
	registrar := &fakeRegistrar{err: errors.New("tracker down")}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, registrar, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", resp.CheckoutURL)
	assert.Equal(t, 1, registrar.calls)
}

func TestExecute_OutOfStockMessagePassedThrough(t *testing.T) {
	// Сообщение об остатках знает только бэкенд - оно пробрасывается дословно
	creator := &fakeSessionCreator{err: &checkoutClient.StockError{Message: "Endast 2 kvar av Schampo"}}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.ErrorIs(t, err, ErrOutOfStock)

	var stock *OutOfStockError
	require.ErrorAs(t, err, &stock)
	assert.Equal(t, "Endast 2 kvar av Schampo", stock.Message)
}

func TestExecute_UpstreamFailureMapped(t *testing.T) {
	creator := &fakeSessionCreator{err: checkoutClient.ErrUpstreamUnavailable}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestExecute_NetworkFailureMapped(t *testing.T) {
	creator := &fakeSessionCreator{err: checkoutClient.ErrNetwork}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestExecute_StripeValidationMapped(t *testing.T) {
	// Оба драйвера сессий мапятся в одну таксономию ошибок
	creator := &fakeSessionCreator{err: &stripeClient.ValidationError{Message: "invalid price id"}}
	uc := New(testCatalog(), &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.ErrorIs(t, err, ErrValidation)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "invalid price id", validation.Message)
}

func TestExecute_EmptyCartRejected(t *testing.T) {
	uc := New(testCatalog(), &fakeCampaignClient{}, &fakeSessionCreator{}, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PreResolvedVariantSkipsCatalog(t *testing.T) {
	// Позиция с артикулом не требует похода в каталог
	creator := &fakeSessionCreator{session: testSession()}
	catalog := &fakeCatalogClient{listErr: errors.New("catalog down")}
	uc := New(catalog, &fakeCampaignClient{}, creator, &fakeRegistrar{}, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest(
		domain.CartItem{ProductID: "prod-1", VariantID: "ART-1", StripePriceID: "price_base_1", Quantity: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, "ART-1", creator.lastReq.Items[0].VariantID)
}

func TestExecute_RequestItemsNotMutated(t *testing.T) {
	// Конвейер работает с копией: исходная корзина не меняется
	creator := &fakeSessionCreator{session: testSession()}
	campaigns := &fakeCampaignClient{prices: map[string]*campaignClient.CampaignPrice{
		"prod-1": {HasCampaignPrice: true, PriceID: "price_campaign_1"},
	}}
	uc := New(testCatalog(), campaigns, creator, &fakeRegistrar{}, nopLogger{})

	req := testRequest(domain.CartItem{ProductID: "prod-1", StripePriceID: "price_base_1", Quantity: 1})
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, req.Items[0].VariantID)
	assert.Equal(t, "price_base_1", req.Items[0].StripePriceID)
}
