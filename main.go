package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hrushi1881/fintrack/cmd/budget"
	"github.com/hrushi1881/fintrack/cmd/categorize"
	"github.com/hrushi1881/fintrack/cmd/export"
	"github.com/hrushi1881/fintrack/cmd/goal"
	"github.com/hrushi1881/fintrack/cmd/insights"
	"github.com/hrushi1881/fintrack/cmd/liability"
	"github.com/hrushi1881/fintrack/cmd/recurring"
	"github.com/hrushi1881/fintrack/cmd/root"
	"github.com/hrushi1881/fintrack/cmd/transaction"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables before anything logs or reads config.
	loadEnvSilently()
	configureLogLevel()

	root.Init()

	root.Cmd.AddCommand(transaction.Cmd)
	root.Cmd.AddCommand(goal.Cmd)
	root.Cmd.AddCommand(liability.Cmd)
	root.Cmd.AddCommand(budget.Cmd)
	root.Cmd.AddCommand(recurring.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevel sets the global logrus level from LOG_LEVEL before any
// logger is created.
func configureLogLevel() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
