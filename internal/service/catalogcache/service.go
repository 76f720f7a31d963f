package catalogcache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/valle1212i/Glow-SessionService/internal/domain"
)

// Snapshot срез услуг и мастеров на момент последнего обновления
type Snapshot struct {
	Services  []domain.Service
	Providers []domain.Provider
	UpdatedAt time.Time
}

// Service периодически обновляемый кэш услуг и мастеров.
// Обновление идёт по фиксированному интервалу плюс внеочередные
// запуски через Kick. Новый снимок публикуется только когда набор
// идентификаторов изменился - неизменный ответ портала не трогает кэш
type Service struct {
	client   BookingOptionsClient
	tenant   string
	interval time.Duration
	logger   Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	// Ключи наборов идентификаторов последнего опубликованного снимка
	serviceKey  string
	providerKey string

	// Защита от параллельных обновлений
	refreshMu  sync.Mutex
	refreshing bool

	kick chan struct{}
	stop chan struct{}
	done chan struct{}
}

func New(client BookingOptionsClient, tenant string, interval time.Duration, logger Logger) *Service {
	return &Service{
		client:   client,
		tenant:   tenant,
		interval: interval,
		logger:   logger,
		kick:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start загружает первый снимок и запускает фоновый цикл обновления.
// Ошибка первой загрузки не фатальна: цикл продолжит попытки по интервалу
func (s *Service) Start(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("catalogcache: initial load failed, will retry on interval: %v", err)
	}

	go s.run(ctx)
}

// Stop останавливает фоновый цикл и дожидается его завершения
func (s *Service) Stop() {
	close(s.stop)
	<-s.done
}

// Kick запрашивает внеочередное обновление, не блокируя вызывающего.
// Повторный запрос при уже ожидающем обновлении схлопывается
func (s *Service) Kick() {
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Snapshot возвращает последний опубликованный снимок
func (s *Service) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, ErrNotLoaded
	}

	return s.snapshot, nil
}

// ServiceByID ищет услугу в текущем снимке
func (s *Service) ServiceByID(serviceID string) (*domain.Service, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	for i := range snap.Services {
		if snap.Services[i].ID == serviceID {
			return &snap.Services[i], nil
		}
	}

	return nil, nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
		case <-s.kick:
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}

		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("catalogcache: refresh failed: %v", err)
		}
	}
}

// Refresh выполняет одно обновление снимка.
// Параллельный вызов при уже идущем обновлении возвращается сразу
func (s *Service) Refresh(ctx context.Context) error {
	s.refreshMu.Lock()
	if s.refreshing {
		s.refreshMu.Unlock()
		return nil
	}
	s.refreshing = true
	s.refreshMu.Unlock()

	defer func() {
		s.refreshMu.Lock()
		s.refreshing = false
		s.refreshMu.Unlock()
	}()

	rawServices, err := s.client.ListServices(ctx, s.tenant)
	if err != nil {
		return err
	}

	rawProviders, err := s.client.ListProviders(ctx, s.tenant)
	if err != nil {
		return err
	}

	services := make([]domain.Service, len(rawServices))
	for i, svc := range rawServices {
		services[i] = svc.ToDomain()
	}

	providers := make([]domain.Provider, len(rawProviders))
	for i, p := range rawProviders {
		providers[i] = p.ToDomain()
	}

	serviceKey := idKey(len(services), func(i int) string { return services[i].ID })
	providerKey := idKey(len(providers), func(i int) string { return providers[i].ID })

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot != nil && serviceKey == s.serviceKey && providerKey == s.providerKey {
		// Набор идентификаторов не изменился - снимок остаётся прежним
		return nil
	}

	s.snapshot = &Snapshot{
		Services:  services,
		Providers: providers,
		UpdatedAt: time.Now(),
	}
	s.serviceKey = serviceKey
	s.providerKey = providerKey

	s.logger.Info("catalogcache: published snapshot with %d services, %d providers", len(services), len(providers))

	return nil
}

// idKey строит порядконезависимый ключ набора идентификаторов
func idKey(n int, id func(i int) string) string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = id(i)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
