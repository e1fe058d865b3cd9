package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	awsadapter "github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driven/aws"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driving/lambdahandler"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/application/usecase"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/shared/types"
	"github.com/cloudporter/aws-logsub-enforcer-go/pkg/console"
)

func main() {
	settings := types.SettingsFromEnv()
	consoleImpl := console.NewConsole()

	// No Lambda o perfil fica vazio: as credenciais vêm da execution role.
	awsRepo := awsadapter.NewAWSRepository("", settings.MaxRetryAttempts)

	enforcer := usecase.NewEnforcerUseCase(awsRepo, awsRepo, consoleImpl)
	handler := lambdahandler.NewHandler(enforcer, awsRepo, consoleImpl)

	lambda.Start(handler.Handle)
}
