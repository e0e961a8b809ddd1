package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/careloop/rosterengine/internal/config"
)

// AppContext holds the dependencies shared by all commands. It is built by
// the root command's PersistentPreRunE, so command constructors receive a
// pointer to the slot rather than the value.
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context
}
