package cli

import (
	"fmt"

	"github.com/cloudporter/aws-logsub-enforcer-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$                          /$$$$$$            /$$
        | $$                         /$$__  $$          | $$
        | $$        /$$$$$$   /$$$$$$| $$  \__/ /$$   /$$| $$$$$$$
        | $$       /$$__  $$ /$$__  $$$$$$$$   | $$  | $$| $$__  $$
        | $$      | $$  \ $$| $$  \ $$\____  $$| $$  | $$| $$  \ $$
        | $$      | $$  | $$| $$  | $$/$$  \ $$| $$  | $$| $$  | $$
        | $$$$$$$$|  $$$$$$/|  $$$$$$$  $$$$$$/|  $$$$$$/| $$$$$$$/
        |________/ \______/  \____  $$\______/  \______/ |_______/
                             /$$  \ $$
                            |  $$$$$$/
                             \______/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS LogSub Enforcer (v%s)", formattedVersion)))
}
