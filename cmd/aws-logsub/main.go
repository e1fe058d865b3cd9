package main

import (
	"fmt"
	"os"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driven/config"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driven/export"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driving/cli"
	"github.com/cloudporter/aws-logsub-enforcer-go/pkg/console"
	"github.com/cloudporter/aws-logsub-enforcer-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, consoleImpl, configRepo, exportRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
