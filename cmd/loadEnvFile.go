package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
)

// loadEnvFile loads a dotenv file into the process environment before guard
// evaluation so credential variables (e.g. for the system session) can live in
// a local file. Existing environment variables are never overridden.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	return nil
}
