package services

import (
	"testing"

	"github.com/h2grid/h2grid-api/internal/logger"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	logger.InitLogger("test")
	goleak.VerifyTestMain(m)
}
