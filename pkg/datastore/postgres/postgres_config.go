package postgres

import (
	"fmt"
)

// Config connection settings for the postgres provider
type Config struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

// String connection URL for the named database
func (r *Config) String(dbname string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s", r.User, r.Password, r.Host, r.Port, dbname, r.SSLMode)
}

// AdminString hate this
func (r *Config) AdminString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=postgres sslmode=%s",
		r.Host, r.Port, r.User, r.Password, r.SSLMode)
}
