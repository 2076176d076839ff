package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"guildkeeper/internal/common/clock"
	"guildkeeper/internal/common/uuid"
	"guildkeeper/internal/config"
	"guildkeeper/internal/handlers/discord"
	"guildkeeper/internal/platform"
	activityRepo "guildkeeper/internal/repositories/activity"
	bindingRepo "guildkeeper/internal/repositories/binding"
	guildconfigRepo "guildkeeper/internal/repositories/guildconfig"
	tierRepo "guildkeeper/internal/repositories/tier"
	voiceroomRepo "guildkeeper/internal/repositories/voiceroom"
	activityService "guildkeeper/internal/services/activity"
	leaderboardService "guildkeeper/internal/services/leaderboard"
	roomsService "guildkeeper/internal/services/rooms"
	tiersService "guildkeeper/internal/services/tiers"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	activityRepository, err := activityRepo.NewRedis(&activityRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create activity repository: %v", err)
	}

	roomRepository, err := voiceroomRepo.NewRedis(&voiceroomRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create voice room repository: %v", err)
	}

	bindingRepository, err := bindingRepo.NewRedis(&bindingRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create binding repository: %v", err)
	}

	tierRepository, err := tierRepo.NewRedis(&tierRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create tier repository: %v", err)
	}

	guildConfigRepository, err := guildconfigRepo.NewRedis(&guildconfigRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create guild config repository: %v", err)
	}

	// The session is shared by the event handlers and the platform
	// adapter behind the services
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	discordPlatform, err := platform.NewDiscord(&platform.Config{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord platform: %v", err)
	}

	// Initialize services
	activitySvc, err := activityService.New(&activityService.Config{
		VoiceMinuteCap: cfg.VoiceMinuteCap,
		ActivityRepo:   activityRepository,
		Clock:          &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create activity service: %v", err)
	}

	roomsSvc, err := roomsService.New(&roomsService.Config{
		TeardownGrace:   cfg.TeardownGrace,
		RoomRepo:        roomRepository,
		GuildConfigRepo: guildConfigRepository,
		Platform:        discordPlatform,
		Clock:           &clock.DefaultClock{},
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create rooms service: %v", err)
	}

	leaderboardSvc, err := leaderboardService.New(&leaderboardService.Config{
		GuildID:         cfg.GuildID,
		RefreshInterval: cfg.LeaderboardRefresh,
		BindingRepo:     bindingRepository,
		ActivityService: activitySvc,
		Platform:        discordPlatform,
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard service: %v", err)
	}

	tiersSvc, err := tiersService.New(&tiersService.Config{
		GuildID:         cfg.GuildID,
		TierRepo:        tierRepository,
		ActivityService: activitySvc,
		Platform:        discordPlatform,
	})
	if err != nil {
		log.Fatalf("Failed to create tiers service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:            session,
		GuildID:            cfg.GuildID,
		CommandPrefix:      cfg.CommandPrefix,
		ActivityService:    activitySvc,
		RoomsService:       roomsSvc,
		LeaderboardService: leaderboardSvc,
		TiersService:       tiersSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Start the periodic leaderboard refresh
	leaderboardSvc.Start(context.Background())

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	leaderboardSvc.Stop()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
