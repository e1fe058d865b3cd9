package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	awsadapter "github.com/cloudporter/aws-logsub-enforcer-go/internal/adapter/driven/aws"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/application/usecase"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/repository"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/shared/types"
	"github.com/cloudporter/aws-logsub-enforcer-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	console    types.ConsoleInterface
	configRepo repository.ConfigRepository
	exportRepo repository.ExportRepository
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(
	versionStr string,
	console types.ConsoleInterface,
	configRepo repository.ConfigRepository,
	exportRepo repository.ExportRepository,
) *CLIApp {
	app := &CLIApp{
		console:    console,
		configRepo: configRepo,
		exportRepo: exportRepo,
		version:    versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "aws-logsub",
		Short:   "Audit CloudWatch log groups and enforce Firehose subscription filters",
		Version: formattedVersion,
		RunE:    app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "AWS LogSub Enforcer version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use (default: credential chain)")
	rootCmd.PersistentFlags().StringSliceP("regions", "r", nil, "AWS regions to audit (comma-separated)")
	rootCmd.PersistentFlags().BoolP("all-regions", "a", false, "Audit every accessible region")
	rootCmd.PersistentFlags().StringP("stream", "s", "", "Firehose delivery stream name (or FIREHOSE_STREAM_NAME)")
	rootCmd.PersistentFlags().String("filter-name", types.DefaultFilterName, "Subscription filter name")
	rootCmd.PersistentFlags().String("filter-pattern", "", "Subscription filter pattern (default: match everything)")
	rootCmd.PersistentFlags().String("role-name", types.DefaultIAMRoleName, "IAM role assumed by CloudWatch Logs for delivery")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Report intended changes without applying them")
	rootCmd.PersistentFlags().StringP("email", "e", "", "Email address for the summary notification")
	rootCmd.PersistentFlags().Bool("no-notification", false, "Skip the SNS email notification")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	configFile, _ := app.rootCmd.Flags().GetString("config-file")
	profile, _ := app.rootCmd.Flags().GetString("profile")
	regions, _ := app.rootCmd.Flags().GetStringSlice("regions")
	allRegions, _ := app.rootCmd.Flags().GetBool("all-regions")
	stream, _ := app.rootCmd.Flags().GetString("stream")
	filterName, _ := app.rootCmd.Flags().GetString("filter-name")
	filterPattern, _ := app.rootCmd.Flags().GetString("filter-pattern")
	roleName, _ := app.rootCmd.Flags().GetString("role-name")
	dryRun, _ := app.rootCmd.Flags().GetBool("dry-run")
	email, _ := app.rootCmd.Flags().GetString("email")
	noNotification, _ := app.rootCmd.Flags().GetBool("no-notification")
	reportName, _ := app.rootCmd.Flags().GetString("report-name")
	reportType, _ := app.rootCmd.Flags().GetStringSlice("report-type")
	dir, _ := app.rootCmd.Flags().GetString("dir")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		Profile:        profile,
		Regions:        regions,
		AllRegions:     allRegions,
		Stream:         stream,
		FilterName:     filterName,
		FilterPattern:  filterPattern,
		RoleName:       roleName,
		DryRun:         dryRun,
		Email:          email,
		NoNotification: noNotification,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
	}

	return args, nil
}

// mergeConfigFile preenche argumentos não informados na linha de comando com
// os valores do arquivo de configuração.
func (app *CLIApp) mergeConfigFile(args *types.CLIArgs) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if args.Profile == "" {
		args.Profile = cfg.Profile
	}
	if len(args.Regions) == 0 {
		args.Regions = cfg.Regions
	}
	if !args.AllRegions {
		args.AllRegions = cfg.AllRegions
	}
	if args.Stream == "" {
		args.Stream = cfg.Stream
	}
	if cfg.FilterName != "" && args.FilterName == types.DefaultFilterName {
		args.FilterName = cfg.FilterName
	}
	if args.FilterPattern == "" {
		args.FilterPattern = cfg.FilterPattern
	}
	if cfg.RoleName != "" && args.RoleName == types.DefaultIAMRoleName {
		args.RoleName = cfg.RoleName
	}
	if !args.DryRun {
		args.DryRun = cfg.DryRun
	}
	if args.Email == "" {
		args.Email = cfg.Email
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}

	return nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, cmdArgs []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	args, err := app.parseArgs()
	if err != nil {
		return err
	}
	if err := app.mergeConfigFile(args); err != nil {
		return err
	}

	env := types.SettingsFromEnv()
	if args.Stream == "" {
		args.Stream = env.FirehoseStreamName
	}
	if args.Stream == "" {
		return types.ErrMissingStreamName
	}
	if args.Email == "" {
		args.Email = env.NotificationEmail
	}

	ctx := context.Background()
	awsRepo := awsadapter.NewAWSRepository(args.Profile, env.MaxRetryAttempts)

	status := app.console.Status("Resolving account identity...")

	accountID, err := awsRepo.GetAccountID(ctx)
	if err != nil {
		status.Stop()
		return err
	}

	regions, err := app.resolveRegions(ctx, awsRepo, args, env.Region, status)
	if err != nil {
		status.Stop()
		return err
	}

	enforcer := usecase.NewEnforcerUseCase(awsRepo, awsRepo, app.console)

	results := []entity.RunResult{}
	for _, region := range regions {
		status.Update(fmt.Sprintf("Auditing log groups in %s...", region))

		settings := types.Settings{
			AccountID:          accountID,
			Region:             region,
			FirehoseStreamName: args.Stream,
			FilterName:         args.FilterName,
			FilterPattern:      args.FilterPattern,
			EmailNotification:  !args.NoNotification,
			NotificationEmail:  args.Email,
			DryRun:             args.DryRun,
			IAMRoleName:        args.RoleName,
			MaxRetryAttempts:   env.MaxRetryAttempts,
		}

		result, err := enforcer.Run(ctx, settings)
		if err != nil {
			// Uma região inacessível não interrompe a auditoria das demais.
			app.console.LogError("Failed to audit region %s: %s", region, err)
			continue
		}
		results = append(results, result)
	}

	status.Stop()

	if len(results) == 0 {
		return fmt.Errorf("no region could be audited")
	}

	app.console.Print(app.renderResultsTable(results).Render())

	return app.exportReports(results, args)
}

// resolveRegions determina as regiões a auditar: flag explícita, todas as
// regiões acessíveis, ou a região padrão do ambiente.
func (app *CLIApp) resolveRegions(
	ctx context.Context,
	awsRepo repository.LogsRepository,
	args *types.CLIArgs,
	envRegion string,
	status types.StatusHandle,
) ([]string, error) {
	if len(args.Regions) > 0 {
		return args.Regions, nil
	}

	if args.AllRegions {
		status.Update("Listing accessible regions...")
		regions, err := awsRepo.GetAccessibleRegions(ctx)
		if err != nil {
			app.console.LogWarning("Could not list accessible regions: %s", err)
		}
		if len(regions) > 0 {
			return regions, nil
		}
		return nil, types.ErrNoRegionsResolved
	}

	if envRegion == "" {
		envRegion = os.Getenv("AWS_DEFAULT_REGION")
	}
	if envRegion == "" {
		return nil, types.ErrNoRegionsResolved
	}
	return []string{envRegion}, nil
}

// renderResultsTable monta a tabela de resumo exibida no terminal.
func (app *CLIApp) renderResultsTable(results []entity.RunResult) types.TableInterface {
	table := app.console.CreateTable()
	table.AddColumn("Region")
	table.AddColumn("Log Groups")
	table.AddColumn("Existing Filters")
	table.AddColumn("Filters Added")
	table.AddColumn("Would Update")
	table.AddColumn("Failed")
	table.AddColumn("Notification")

	for _, result := range results {
		added := fmt.Sprintf("%d", result.NewFiltersAdded)
		if result.NewFiltersAdded > 0 {
			added = pterm.FgGreen.Sprintf("%d", result.NewFiltersAdded)
		}
		failed := fmt.Sprintf("%d", result.FailedUpdates)
		if result.FailedUpdates > 0 {
			failed = pterm.FgRed.Sprintf("%d", result.FailedUpdates)
		}

		notification := "skipped"
		if result.NotificationSent {
			notification = pterm.FgGreen.Sprint("sent")
		} else if result.NotificationError != "" {
			notification = pterm.FgRed.Sprintf("error: %s", result.NotificationError)
		}

		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", result.Region),
			fmt.Sprintf("%d", result.TotalLogGroups),
			fmt.Sprintf("%d", result.ExistingFilters),
			added,
			fmt.Sprintf("%d", result.WouldUpdate),
			failed,
			notification,
		)
	}

	return table
}

// exportReports grava os relatórios solicitados via --report-name/--report-type.
func (app *CLIApp) exportReports(results []entity.RunResult, args *types.CLIArgs) error {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return nil
	}

	for _, reportType := range args.ReportType {
		switch reportType {
		case "csv":
			csvPath, err := app.exportRepo.ExportRunResultsToCSV(results, args.ReportName, args.Dir)
			if err != nil {
				app.console.LogError("Failed to export to CSV: %s", err)
			} else {
				app.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := app.exportRepo.ExportRunResultsToJSON(results, args.ReportName, args.Dir)
			if err != nil {
				app.console.LogError("Failed to export to JSON: %s", err)
			} else {
				app.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := app.exportRepo.ExportRunResultsToPDF(results, args.ReportName, args.Dir)
			if err != nil {
				app.console.LogError("Failed to export to PDF: %s", err)
			} else {
				app.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			app.console.LogWarning("Unknown report type: %s", reportType)
		}
	}

	return nil
}
