package config_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	// Keep test output free of store and config logs
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}
