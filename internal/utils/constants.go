package utils

// LoggerInitializationFailedMessageFormat reports that the zap logger could not be built.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes the fatal log line emitted when a command fails.
const ApplicationExecutionFailedMessage = "lsdir failed"
