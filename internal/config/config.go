package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration for the bot
type Config struct {
	// DiscordToken authenticates the gateway connection
	DiscordToken string

	// GuildID is the single guild this bot serves
	GuildID string

	// CommandPrefix precedes every text command
	CommandPrefix string

	// RedisAddr is the host:port of the Redis instance
	RedisAddr string

	// RedisPassword is empty when Redis runs without auth
	RedisPassword string

	// VoiceMinuteCap bounds a member's total voice minutes, 0 means
	// unlimited
	VoiceMinuteCap int

	// TeardownGrace is how long an empty room survives before deletion
	TeardownGrace time.Duration

	// LeaderboardRefresh is how often bound boards are re-rendered
	LeaderboardRefresh time.Duration
}

// Load reads configuration from the environment, with an optional .env
// file for local development
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		GuildID:            os.Getenv("GUILD_ID"),
		CommandPrefix:      getEnv("COMMAND_PREFIX", ","),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		VoiceMinuteCap:     getEnvInt("VOICE_MINUTE_CAP", 600),
		TeardownGrace:      getEnvDuration("TEARDOWN_GRACE", 5*time.Second),
		LeaderboardRefresh: getEnvDuration("LEADERBOARD_REFRESH", 5*time.Minute),
	}

	if cfg.DiscordToken == "" {
		return nil, errors.New("DISCORD_TOKEN environment variable is required")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("GUILD_ID environment variable is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return parsed
}
