package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// game while developing it. The defaults are the classic 60x30 window less
// its border, ticking twice a second.
var (
	BoardWidth   = getEnvPositiveInt("SNAKE_WIDTH", 58)
	BoardHeight  = getEnvPositiveInt("SNAKE_HEIGHT", 28)
	TickInterval = time.Duration(getEnvPositiveInt("SNAKE_TICK_MS", 500)) * time.Millisecond
	GameOverHold = time.Duration(getEnvInt("SNAKE_GAME_OVER_MS", 3000)) * time.Millisecond
	LogLevel     = getEnvString("SNAKE_LOG_LEVEL", "info")
	LogFile      = getEnvString("SNAKE_LOG_FILE", "")
)

// TickRate is the number of game ticks per second.
func TickRate() rate.Limit {
	return rate.Every(TickInterval)
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvPositiveInt(varName string, defaults int) int {
	v := getEnvInt(varName, defaults)
	if v <= 0 {
		return defaults
	}
	return v
}

func getEnvString(varName string, defaults string) string {
	if val, ok := os.LookupEnv(varName); ok {
		return val
	}
	return defaults
}
