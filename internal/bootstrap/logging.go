package bootstrap

import (
	"github.com/rs/zerolog"

	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/logging"
)

// SetupLogging builds the logger described by cfg. Interactive runs pass
// toStderr=false because the terminal belongs to the UI; logs then only go
// to the rotated file. The returned cleanup closes the file.
func SetupLogging(cfg config.LoggingConfig, toStderr bool) (zerolog.Logger, func(), error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Level)
	logCfg.Format = cfg.Format

	dir := cfg.LogDir
	if dir == "" && cfg.EnableFileLog {
		var err error
		if dir, err = config.GetLogDir(); err != nil {
			return zerolog.Nop(), func() {}, err
		}
	}

	return logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.EnableFileLog,
		Dir:           dir,
		MaxSizeMB:     cfg.MaxSizeMB,
		MaxBackups:    cfg.MaxBackups,
		MaxAgeDays:    cfg.MaxAge,
		Compress:      cfg.Compress,
		WriteToStderr: toStderr,
	})
}
