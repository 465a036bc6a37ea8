package config

// Color constants for logging
const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogColorReset = "\033[0m"

	ColorGreen = "\033[32m"
	ColorCyan  = "\033[36m"
)
