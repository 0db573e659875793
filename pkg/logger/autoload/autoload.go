// Package autoload initializes the global logger from the LOG-prefixed
// environment as a side effect of import.
package autoload

import (
	configx "github.com/paxbot/curator-agent/pkg/config"
	logx "github.com/paxbot/curator-agent/pkg/logger"
)

func init() {
	cfg := configx.MustNew[logx.Config]("LOG")
	logx.Init(*cfg)
}
