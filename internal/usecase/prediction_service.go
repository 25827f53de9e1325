package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ia-service/internal/domain/entity"
	"ia-service/internal/domain/repository"
	"ia-service/internal/domain/simulation"
)

// Endpoint names used as usage counters.
const (
	EndpointSales     = "predicaoVenda"
	EndpointClient    = "classificacaoCliente"
	EndpointDemand    = "predicaoDemanda"
	EndpointSentiment = "classificacaoSentimento"
)

// PredictionService runs the simulation engine for an authorized caller,
// stamps the result and records usage in the background.
type PredictionService struct {
	meter  repository.UsageMeter // nil disables metering
	policy simulation.ClientPolicy
	logger *zap.Logger
	nowFn  func() time.Time
	idFn   func() string

	pending sync.WaitGroup // in-flight usage writes
}

type Option func(*PredictionService)

func WithUsageMeter(m repository.UsageMeter) Option {
	return func(s *PredictionService) { s.meter = m }
}

func WithClientPolicy(p simulation.ClientPolicy) Option {
	return func(s *PredictionService) { s.policy = p }
}

func WithClock(now func() time.Time) Option {
	return func(s *PredictionService) { s.nowFn = now }
}

func WithIDGenerator(id func() string) Option {
	return func(s *PredictionService) { s.idFn = id }
}

func NewPredictionService(logger *zap.Logger, opts ...Option) *PredictionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PredictionService{
		policy: simulation.PolicySeed,
		logger: logger,
		nowFn:  func() time.Time { return time.Now().UTC() },
		idFn:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PredictionService) PredictSales(ctx context.Context, caller entity.Caller, month, year int) (entity.SalePrediction, error) {
	if err := simulation.ValidateSalesInput(month, year); err != nil {
		return entity.SalePrediction{}, err
	}
	out := simulation.PredictSales(month, year)
	out.Stamp = s.stamp()
	s.record(caller, EndpointSales)
	return out, nil
}

func (s *PredictionService) ClassifyClient(ctx context.Context, caller entity.Caller, cpf string) (entity.ClientClassification, error) {
	out, err := simulation.ClassifyClientWith(s.policy, cpf)
	if err != nil {
		return entity.ClientClassification{}, err
	}
	out.Stamp = s.stamp()
	s.record(caller, EndpointClient)
	return out, nil
}

func (s *PredictionService) ForecastDemand(ctx context.Context, caller entity.Caller, productID, period string) (entity.DemandForecast, error) {
	out, err := simulation.ForecastDemand(productID, period)
	if err != nil {
		return entity.DemandForecast{}, err
	}
	out.Stamp = s.stamp()
	s.record(caller, EndpointDemand)
	return out, nil
}

func (s *PredictionService) ClassifySentiment(ctx context.Context, caller entity.Caller, text string) (entity.SentimentResult, error) {
	out := simulation.ClassifySentiment(text)
	out.Stamp = s.stamp()
	s.record(caller, EndpointSentiment)
	return out, nil
}

// Usage returns the caller's counters, or ErrUsageDisabled without a meter.
func (s *PredictionService) Usage(ctx context.Context, caller entity.Caller) (entity.UsageReport, error) {
	if s.meter == nil {
		return entity.UsageReport{}, entity.ErrUsageDisabled
	}
	key := CallerKey(caller.Token)
	counts, err := s.meter.Usage(ctx, key)
	if err != nil {
		return entity.UsageReport{}, err
	}
	return entity.UsageReport{Caller: key, Endpoints: counts}, nil
}

func (s *PredictionService) stamp() entity.Stamp {
	return entity.Stamp{PredictionID: s.idFn(), GeneratedAt: s.nowFn()}
}

func (s *PredictionService) record(caller entity.Caller, endpoint string) {
	if s.meter == nil {
		return
	}
	key := CallerKey(caller.Token)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		// the request context is gone by the time this runs
		if err := s.meter.Increment(context.Background(), key, endpoint); err != nil {
			s.logger.Warn("usage increment failed",
				zap.String("caller", key),
				zap.String("endpoint", endpoint),
				zap.Error(err))
		}
	}()
}

// Wait blocks until every background usage write has finished. Call it
// after the server stops accepting requests and before closing the store.
func (s *PredictionService) Wait() {
	s.pending.Wait()
}

// CallerKey is a stable, non-reversible label for a token.
func CallerKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
