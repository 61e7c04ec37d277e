// SPDX-License-Identifier: MIT

// Package logger holds the structured logger shared by lvjet packages.
//
// The package-level Logger is a no-op until Initialize is called, so library
// code can log unconditionally without checking for nil.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging across lvjet.
const (
	FieldOperation  = "operation"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldSubtree    = "subtree"
	FieldGroups     = "groups"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldAlgorithm  = "algorithm"
	FieldLayout     = "layout"
)

var (
	// Logger is the global sugared logger.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. JSON output uses the zap production
// config; otherwise a console encoder writes to stderr.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := zapcore.ParseLevel(levelOrDefault(level))
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput

	var zl *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		zl, err = cfg.Build()
		if err != nil {
			return err
		}
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zl = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}

	Logger = zl.Sugar()
	return nil
}

// Named returns a child of the global logger scoped to component.
func Named(component string) *zap.SugaredLogger {
	return Logger.Named(component)
}

// OrDefault returns l, or the global logger when l is nil.
func OrDefault(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Logger
	}
	return l
}

func levelOrDefault(level string) string {
	if level == "" {
		return "info"
	}
	return level
}
