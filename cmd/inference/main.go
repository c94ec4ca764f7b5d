package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"medscan/internal/config"
	"medscan/internal/domain"
	"medscan/internal/inference"
)

// modelFiles maps each model to its ONNX file and graph input/output names.
// The tabular models are sklearn exports, the image models are CNN exports.
var modelFiles = []struct {
	id     domain.ModelID
	file   string
	input  string
	output string
}{
	{domain.ModelBrainTumor, "brain_tumor_model.onnx", "input", "output"},
	{domain.ModelPneumonia, "pneumonia_model.onnx", "input", "output"},
	{domain.ModelHeartAttack, "heart_model.onnx", "float_input", "probabilities"},
	{domain.ModelDiabetes, "diabetes_model.onnx", "float_input", "probabilities"},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg, err := config.LoadInference()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := inference.InitRuntime(cfg.OnnxLibPath); err != nil {
		slog.Error("failed to initialize onnxruntime", "error", err)
		os.Exit(1)
	}
	defer inference.DestroyRuntime()

	models := make(map[domain.ModelID]inference.Model, len(modelFiles))
	for _, mf := range modelFiles {
		path := filepath.Join(cfg.ModelsDir, mf.file)
		labels := mf.id.Labels()
		predictor, err := inference.LoadONNXModel(path, mf.input, mf.output, len(labels))
		if err != nil {
			slog.Error("failed to load model", "model", mf.id, "path", path, "error", err)
			os.Exit(1)
		}
		defer predictor.Close()
		models[mf.id] = inference.Model{Labels: labels, Predictor: predictor}
		slog.Info("model loaded", "model", mf.id, "path", path)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
	}))

	inference.NewService(models).AddRoutes(r)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("inference service listening", "port", cfg.Port, "models_dir", cfg.ModelsDir)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
