package main

import (
	"github.com/MamuzaD/cal-hacks/internal/server"
	"github.com/MamuzaD/cal-hacks/internal/util"
	"github.com/MamuzaD/cal-hacks/pkg/logger"
	"github.com/MamuzaD/cal-hacks/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
