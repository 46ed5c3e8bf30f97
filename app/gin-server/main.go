package main

import (
	"context"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/psiconervio/agente-ia/config"
	"github.com/psiconervio/agente-ia/internal/agent"
	"github.com/psiconervio/agente-ia/internal/api/handlers"
	"github.com/psiconervio/agente-ia/internal/api/routes"
	"github.com/psiconervio/agente-ia/internal/logger"
	"github.com/psiconervio/agente-ia/internal/providers/classifier"
	"github.com/psiconervio/agente-ia/internal/providers/llm"
	"github.com/psiconervio/agente-ia/internal/providers/stt"
	"github.com/psiconervio/agente-ia/internal/providers/tts"
	mongorepo "github.com/psiconervio/agente-ia/internal/repositories/mongo"
	pgrepo "github.com/psiconervio/agente-ia/internal/repositories/postgres"
	"github.com/psiconervio/agente-ia/internal/services"
	"github.com/psiconervio/agente-ia/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	// History store
	var store services.HistoryStore
	switch strings.ToLower(os.Getenv("HISTORY_BACKEND")) {
	case "mongo":
		if err := config.InitMongo(); err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		store = mongorepo.NewInteractionRepo(config.MongoDatabase())
	default:
		if err := config.InitPostgres(); err != nil {
			log.Fatalf("PostgreSQL init error: %v", err)
		}
		store = pgrepo.NewInteractionRepo(config.PostgresDB)
	}

	// Upstream AI services
	chat, err := llm.New(ctx)
	if err != nil {
		log.Fatalf("LLM provider init error: %v", err)
	}
	defer chat.Close()

	cls := classifier.NewHuggingFace(classifier.Config{
		APIKey: os.Getenv("HUGGINGFACE_API_KEY"),
	})

	synth, err := tts.New()
	if err != nil {
		log.Fatalf("TTS provider init error: %v", err)
	}

	recognizer, err := stt.New(ctx)
	if err != nil {
		log.Fatalf("STT provider init error: %v", err)
	}
	defer recognizer.Close()

	// Audio artifact store
	var audioStore storage.Store
	switch strings.ToLower(os.Getenv("AUDIO_STORAGE")) {
	case "gcs":
		gcsStore, err := storage.NewGCSStore(ctx, os.Getenv("GCS_BUCKET"))
		if err != nil {
			log.Fatalf("GCS init error: %v", err)
		}
		defer gcsStore.Close()
		audioStore = gcsStore
	default:
		localStore, err := storage.NewLocalStore(os.Getenv("AUDIO_DIR"))
		if err != nil {
			log.Fatalf("audio dir init error: %v", err)
		}
		audioStore = localStore
	}

	speech := services.NewSpeechService(synth, audioStore)
	engine := agent.NewEngine(chat, cls, speech)
	svc := services.NewInteractionService(store, engine, recognizer)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Ask:          handlers.NewAskHandler(svc),
		Audio:        handlers.NewAudioHandler(svc),
		Interactions: handlers.NewInteractionHandler(svc),
		Logger:       log,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.WithField("port", port).Info("agente ia backend listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
