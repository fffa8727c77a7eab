package catalog

import (
	"time"

	"stockctl/pkg/logging"

	"gorm.io/gorm/logger"
)

const sqlSubsystem = "SQL"

// sqlWriter forwards gorm's trace lines to the debug log.
type sqlWriter struct{}

func (sqlWriter) Printf(format string, args ...interface{}) {
	logging.Debug(sqlSubsystem, format, args...)
}

func newSQLLogger() logger.Interface {
	return logger.New(sqlWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Info,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
