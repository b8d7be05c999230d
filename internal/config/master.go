package config

import "os"

type AppConfig struct {
	DebugMode       bool
	ServerConfig    *ServerConfig
	RedisConfig     *RedisConfig
	PostgresConfig  *PostgresConfig
	ExecutionConfig *ExecutionConfig
	JudgeConfig     *JudgeConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:       os.Getenv("DEBUG_MODE") == "true",
		ServerConfig:    NewServerConfig(),
		RedisConfig:     NewRedisConfig(),
		PostgresConfig:  NewPostgresConfig(),
		ExecutionConfig: NewExecutionConfig(),
		JudgeConfig:     NewJudgeConfig(),
	}
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
