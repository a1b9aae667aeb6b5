// README: Entry point; loads config, wires the itinerary pipeline, serves HTTP until SIGINT/SIGTERM.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wanderplan/internal/ai"
	"wanderplan/internal/config"
	httptransport "wanderplan/internal/http"
	"wanderplan/internal/infra"
	"wanderplan/internal/modules/itinerary"
	"wanderplan/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := infra.InitTracing(ctx, cfg.Tracing.OTLPEndpoint, cfg.Tracing.ServiceName)
	if err != nil {
		logger.Fatal("tracing init", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	tmpl := itinerary.DefaultTemplate()
	if cfg.AI.PromptTemplate != "" {
		tmpl, err = itinerary.LoadTemplate(cfg.AI.PromptTemplate)
		if err != nil {
			logger.Fatal("prompt template", zap.Error(err))
		}
	}
	builder, err := itinerary.NewPromptBuilder(tmpl)
	if err != nil {
		logger.Fatal("prompt template", zap.Error(err))
	}

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiModel)
	if err != nil {
		logger.Fatal("gemini init", zap.Error(err))
	}
	defer provider.Close()

	planner := service.NewItineraryPlanner(builder, provider, logger)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Planner:     planner,
		Logger:      logger,
		ServiceName: cfg.Tracing.ServiceName,
	})
	server := httptransport.NewServer(cfg.HTTP.Addr, router, logger)

	logger.Info("wanderplan ready",
		zap.String("model", provider.ModelName()),
		zap.String("prompt_template", builder.Name()))
	if err := server.Run(ctx); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
