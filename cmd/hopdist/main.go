package main

import (
	"fmt"

	"github.com/katalvlaran/hopdist/internal/cli"
	"github.com/katalvlaran/hopdist/internal/logging"
)

const (
	bootstrapLogLevel                       = "info"
	loggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	applicationExecutionFailedMessage       = "Error"
)

// main is the entry point for the hopdist command.
func main() {
	loggerInstance, level, loggerInitializationError := logging.New(bootstrapLogLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(loggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, level); applicationExecutionError != nil {
		loggerInstance.Fatal(applicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
