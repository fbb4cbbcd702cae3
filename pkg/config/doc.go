// Package config loads typed configuration structs from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env for struct-tag driven parsing:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
