package config

import (
	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/repository"
	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/service"
	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	DocumentStore domain.DocumentStore
	Extractor     domain.TextExtractor
	ChatClient    domain.ChatCompleter
	IngestService domain.IngestService
	AskService    domain.AskService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	store := repository.NewDocumentStore()
	extractor := service.NewPDFExtractor(appLogger)
	chatClient := repository.NewGroqClient(config, appLogger)

	return &Container{
		Config:        config,
		Logger:        appLogger,
		DocumentStore: store,
		Extractor:     extractor,
		ChatClient:    chatClient,
		IngestService: service.NewIngestService(extractor, store, config, appLogger),
		AskService:    service.NewAskService(chatClient, store, config, appLogger),
	}
}
