package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personabot/pkg/ai"
	"personabot/pkg/bot"
	"personabot/pkg/config"
	"personabot/pkg/convo"
	"personabot/pkg/persona"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	// Load config.yml
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Load .env for secrets
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	token := os.Getenv("DISCORD_TOKEN")
	aiKey := os.Getenv("AI_API_KEY")

	if token == "" {
		log.Fatal("Missing required environment variable: DISCORD_TOKEN")
	}
	if aiKey == "" {
		log.Fatal("Missing required environment variable: AI_API_KEY")
	}

	// Persona Registry: built-ins plus any extras from config.yml
	profiles := append([]persona.Persona{}, persona.DefaultPersonas...)
	for _, p := range cfg.Personas.Custom {
		profiles = append(profiles, persona.Persona{
			Key:         p.Name,
			Description: p.Description,
			Aliases:     p.Aliases,
		})
	}
	registry := persona.NewRegistry(cfg.Personas.Default, profiles)

	// Conversation Store: in-memory by default, Redis when REDIS_URL is set
	var store convo.Store
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisStore, err := convo.NewRedisStore(redisURL, "personabot", cfg.Personas.Default, cfg.Engagement.MaxHistoryPairs)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("Using Redis conversation store")
	} else {
		store = convo.NewMemoryStore(cfg.Personas.Default, cfg.Engagement.MaxHistoryPairs)
		log.Println("Using in-memory conversation store (state is lost on restart)")
	}

	// AI Completion Client
	aiClient := ai.NewClient(
		aiKey,
		os.Getenv("AI_API_URL"),
		cfg.ModelSettings.Model,
		cfg.ModelSettings.Temperature,
		cfg.ModelSettings.TopP,
	)

	cooldown := time.Duration(cfg.Engagement.CooldownSeconds * float64(time.Second))
	handler := bot.NewHandler(aiClient, store, registry, cooldown)

	// Create Discord Session
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	// Register Handlers
	dg.AddHandler(handler.MessageCreate)
	dg.AddHandler(handler.InteractionCreate)

	// Open Connection
	if err := dg.Open(); err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	// Set Bot ID in handler (so it can ignore itself)
	handler.SetBotID(dg.State.User.ID)

	// Register slash commands (empty string = global, or specify guild ID for faster testing)
	guildID := os.Getenv("DISCORD_GUILD_ID")
	registeredCommands, err := bot.RegisterSlashCommands(dg, guildID)
	if err != nil {
		// Command sync failure is not fatal; message handling still works
		log.Printf("Error registering slash commands: %v", err)
	}

	// Cleanup function to unregister commands on shutdown
	defer func() {
		if err := bot.UnregisterSlashCommands(dg, guildID, registeredCommands); err != nil {
			log.Printf("Error unregistering slash commands: %v", err)
		}
	}()

	log.Printf("Logged in as %s. Press CTRL-C to exit.", dg.State.User.Username)

	// Wait for signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	dg.Close()
}
