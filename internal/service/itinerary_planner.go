package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"wanderplan/internal/ai"
	"wanderplan/internal/metrics"
	"wanderplan/internal/modules/itinerary"
)

var tracer = otel.Tracer("wanderplan/service")

// ItineraryPlanner orchestrates prompt building, the Gemini call and response parsing.
// It holds no per-call state; concurrent calls share only the read-only builder.
type ItineraryPlanner struct {
	builder   *itinerary.PromptBuilder
	generator ai.TextGenerator
	logger    *zap.Logger
}

// NewItineraryPlanner creates an ItineraryPlanner. A nil logger disables logging.
func NewItineraryPlanner(builder *itinerary.PromptBuilder, generator ai.TextGenerator, logger *zap.Logger) *ItineraryPlanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryPlanner{
		builder:   builder,
		generator: generator,
		logger:    logger.Named("itinerary"),
	}
}

// Generate produces exactly one Success or Failure for prefs.
// Every call reaches the remote service; identical inputs are not deduplicated.
// The remote call is detached from ctx cancellation and runs to completion.
func (p *ItineraryPlanner) Generate(ctx context.Context, prefs itinerary.Preferences) itinerary.Result {
	ctx = context.WithoutCancel(ctx)
	ctx, span := tracer.Start(ctx, "ItineraryPlanner.Generate",
		trace.WithAttributes(attribute.String("prompt.template", p.builder.Name())))
	defer span.End()

	start := time.Now()
	logger := p.logger.With(zap.String("location", prefs.Location), zap.String("duration", prefs.Duration))

	// 1. Build prompt (total, never fails)
	prompt := p.builder.Build(prefs)

	// 2. One-shot remote call
	raw, err := p.generator.Generate(ctx, prompt)

	// 3. Classify the outcome
	var res itinerary.Result
	if err != nil {
		res = itinerary.TransportFailure(err)
	} else {
		logger.Debug("raw model response", zap.Int("bytes", len(raw)), zap.String("raw", raw))
		res = itinerary.ParseResponse(raw)
		if res.OK() {
			plan, recognition := itinerary.Classify(*res.Document)
			res.Plan, res.Recognition = &plan, recognition
		}
	}

	elapsed := time.Since(start)
	outcome := outcomeOf(res)
	metrics.ItineraryGenerationsTotal.WithLabelValues(outcome).Inc()
	metrics.ItineraryGenerationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	span.SetAttributes(attribute.String("itinerary.outcome", outcome))

	if res.Failure != nil {
		span.SetStatus(codes.Error, res.Failure.Message)
		logger.Warn("itinerary generation failed",
			zap.String("kind", string(res.Failure.Kind)),
			zap.String("error", res.Failure.Message),
			zap.Duration("elapsed", elapsed))
		return res
	}

	metrics.ItineraryRecognitionTotal.WithLabelValues(string(res.Recognition)).Inc()
	span.SetAttributes(attribute.String("itinerary.recognition", string(res.Recognition)))
	logger.Info("itinerary generated",
		zap.String("recognition", string(res.Recognition)),
		zap.Duration("elapsed", elapsed))
	return res
}

func outcomeOf(res itinerary.Result) string {
	if res.Failure != nil {
		return string(res.Failure.Kind)
	}
	return "success"
}
