package systems

import (
	"os"
	"testing"

	"delve-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
