package util

import (
	"sync"
)

var (
	globalLogger LoggerInterface
	globalMu     sync.RWMutex
)

// InitLogger replaces the global logger. A previous logger is closed.
func InitLogger(logLevel, logFile string, format LogFormat) error {
	logger, err := NewLogger(logLevel, logFile, format)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// SetLogger installs l as the global logger; nil disables logging.
func SetLogger(l LoggerInterface) {
	globalMu.Lock()
	prev := globalLogger
	globalLogger = l
	globalMu.Unlock()

	if prev != nil && prev != l {
		_ = prev.Close()
	}
}

func current() LoggerInterface {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

func LogInfo(msg string) {
	if l := current(); l != nil {
		l.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Infof(format, args...)
	}
}

func LogDebug(msg string) {
	if l := current(); l != nil {
		l.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Debugf(format, args...)
	}
}

func LogWarn(msg string) {
	if l := current(); l != nil {
		l.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if l := current(); l != nil {
		l.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if l := current(); l != nil {
		l.Errorf(format, args...)
	}
}
