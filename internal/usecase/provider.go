package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/lfsc/juscalc/internal/domain"
	"github.com/lfsc/juscalc/internal/infrastructure/metrics"
)

// ResolveRates prefetches the full per-period series through the
// provider and returns a pure resolver for the engine. All I/O happens
// here, before the engine runs; the engine itself never blocks.
func ResolveRates(ctx context.Context, provider IndexProvider, code domain.IndexCode, periods []domain.Period) (domain.RateFunc, error) {
	rates, err := provider.MonthlyRates(ctx, code, periods)
	if err != nil {
		metrics.IndexProviderErrors.WithLabelValues(string(code)).Inc()
		return nil, fmt.Errorf("%w: index %s: %v", domain.ErrRateResolution, code, err)
	}

	if len(rates) != len(periods) {
		return nil, fmt.Errorf("%w: index %s: provider returned %d rates for %d periods",
			domain.ErrRateResolution, code, len(rates), len(periods))
	}

	byPeriod := make(map[domain.Period]decimal.Decimal, len(periods))
	for i, p := range periods {
		byPeriod[p] = rates[i]
	}

	return func(p domain.Period) (decimal.Decimal, error) {
		return byPeriod[p], nil
	}, nil
}

// StaticIndexProvider serves rates from an in-memory table. Used in
// tests with synthetic series, and as the seed shape for fixtures.
type StaticIndexProvider struct {
	rates map[domain.IndexCode]map[domain.Period]decimal.Decimal
}

// NewStaticIndexProvider creates an empty static provider.
func NewStaticIndexProvider() *StaticIndexProvider {
	return &StaticIndexProvider{
		rates: make(map[domain.IndexCode]map[domain.Period]decimal.Decimal),
	}
}

// SetRate registers the rate for one index and period.
func (p *StaticIndexProvider) SetRate(code domain.IndexCode, period domain.Period, rate decimal.Decimal) {
	if p.rates[code] == nil {
		p.rates[code] = make(map[domain.Period]decimal.Decimal)
	}
	p.rates[code][period] = rate
}

// MonthlyRates returns the registered rates; unregistered months are zero.
func (p *StaticIndexProvider) MonthlyRates(_ context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error) {
	rates := make([]decimal.Decimal, len(periods))
	for i, period := range periods {
		rates[i] = p.rates[code][period]
	}
	return rates, nil
}

// CachedIndexProvider wraps an IndexProvider with a byte cache. Cache
// failures degrade to the inner provider; they are logged, never fatal.
type CachedIndexProvider struct {
	inner  IndexProvider
	cache  Cache
	logger zerolog.Logger
	ttl    time.Duration
}

// NewCachedIndexProvider creates a caching decorator around inner.
// A non-positive ttl falls back to RateCacheTTL.
func NewCachedIndexProvider(inner IndexProvider, cache Cache, logger zerolog.Logger, ttl time.Duration) *CachedIndexProvider {
	if ttl <= 0 {
		ttl = RateCacheTTL
	}
	return &CachedIndexProvider{inner: inner, cache: cache, logger: logger, ttl: ttl}
}

func (p *CachedIndexProvider) MonthlyRates(ctx context.Context, code domain.IndexCode, periods []domain.Period) ([]decimal.Decimal, error) {
	if len(periods) == 0 {
		return nil, nil
	}

	key := fmt.Sprintf("%s:%s:%s", code, periods[0], periods[len(periods)-1])

	if data, err := p.cache.Get(ctx, key); err == nil && data != nil {
		var rates []decimal.Decimal
		if err := json.Unmarshal(data, &rates); err == nil && len(rates) == len(periods) {
			metrics.IndexRateLookups.WithLabelValues(string(code), "cache").Inc()
			return rates, nil
		}
	}

	rates, err := p.inner.MonthlyRates(ctx, code, periods)
	if err != nil {
		return nil, err
	}
	metrics.IndexRateLookups.WithLabelValues(string(code), "source").Inc()

	if data, err := json.Marshal(rates); err == nil {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			p.logger.Warn().Err(err).Str("index", string(code)).Msg("failed to cache index rates")
		}
	}

	return rates, nil
}
