package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bot is the configuration of the Telegram front-end process.
type Bot struct {
	BotToken     string `env:"BOT_TOKEN,required"`
	InferenceURL string `env:"INFERENCE_URL" envDefault:"http://localhost:8000"`
}

// Inference is the configuration of the inference service process.
type Inference struct {
	Port           string   `env:"PORT" envDefault:"8000"`
	ModelsDir      string   `env:"MODELS_DIR" envDefault:"models"`
	OnnxLibPath    string   `env:"ONNXRUNTIME_LIB"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func LoadBot() (*Bot, error) {
	cfg := &Bot{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func LoadInference() (*Inference, error) {
	cfg := &Inference{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
