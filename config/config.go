package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config reads a variable from .env or the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("no .env file found, falling back to environment")
	}
	return os.Getenv(key)
}
