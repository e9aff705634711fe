package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/lsdir/internal/cli"
	"github.com/temirov/lsdir/internal/utils"
)

// main is the entry point for the lsdir command.
func main() {
	logLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(logLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(cli.Dependencies{Logger: loggerInstance, LogLevel: &logLevel}); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
