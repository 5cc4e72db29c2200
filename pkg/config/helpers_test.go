package config_test

import "os"

// godotenv skips keys that are present even when empty, so tests unset them first.
func unsetenv(keys ...string) error {
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			return err
		}
	}
	return nil
}
