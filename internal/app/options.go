package app

import (
	"os"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/logger"

	"go.uber.org/zap"
)

// Run modes select which services the runner hosts.
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

const defaultShutdownTimeout = 10 * time.Second

// Options configure application startup.
type Options struct {
	Config          *config.Config
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// withDefaults fills unset fields so Run never branches on zero values.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logger.S()
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = defaultShutdownTimeout
	}
	if o.Mode == "" {
		o.Mode = ModeAll
	}
	return o
}
