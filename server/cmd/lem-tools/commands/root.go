package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/common/version"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
	"github.com/onboarding-platform/onboarding/server/cmd/lem-tools/cli"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

const (
	DefaultConfigDir = "$HOME"
	ConfigFileName   = ".lem-tools"
	// EnvPrefix is prepended to a setting's upper-cased name to give the environment variable that sets it,
	// e.g. LEM_API_KEY.
	EnvPrefix = "LEM"
)

type GlobalConfig struct {
	Debug          bool
	ConfigFilePath string
	LogFilePath    string
}

var Global = &GlobalConfig{}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVarP(
		&Global.ConfigFilePath,
		"config",
		"c",
		"",
		fmt.Sprintf("The config file to use when executing commands (default %s/%s.yml).", DefaultConfigDir, ConfigFileName))
	RootCmd.PersistentFlags().BoolVarP(
		&Global.Debug,
		"debug",
		"d",
		false,
		"Enable debug-level log output.")
	RootCmd.PersistentFlags().StringVar(
		&Global.LogFilePath,
		"log-file",
		"",
		"Append log output to this file instead of writing it to stderr.")

	RootCmd.PersistentFlags().String(
		"api-key",
		"",
		"The API key used to authenticate to the Legal Entity Management API.")
	RootCmd.PersistentFlags().String(
		"environment",
		models.EnvironmentTest.String(),
		fmt.Sprintf("The Legal Entity Management API environment to use (%s|%s).", models.EnvironmentTest, models.EnvironmentLive))
	RootCmd.PersistentFlags().String(
		"endpoint",
		"",
		"Overrides the Legal Entity Management API base URL chosen by --environment.")
	RootCmd.PersistentFlags().Int(
		"retry-max",
		client.DefaultRetryMax,
		"The maximum number of times to retry a failed request.")
	RootCmd.PersistentFlags().String(
		"theme-id",
		"",
		"The hosted onboarding theme to apply to generated links.")

	for key, flag := range map[string]string{
		"api_key":     "api-key",
		"environment": "environment",
		"endpoint":    "endpoint",
		"retry_max":   "retry-max",
		"theme_id":    "theme-id",
	} {
		err := viper.BindPFlag(key, RootCmd.PersistentFlags().Lookup(flag))
		if err != nil {
			panic(err)
		}
	}
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cli.Exit(RootCmd.Execute())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if Global.ConfigFilePath != "" {
		viper.SetConfigFile(Global.ConfigFilePath)
	} else {
		viper.SetConfigName(ConfigFileName)
		viper.AddConfigPath(DefaultConfigDir)
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err == nil {
		Global.ConfigFilePath = viper.ConfigFileUsed()
		if Global.Debug {
			cli.Stderr.Printf("Using config file: %s", viper.ConfigFileUsed())
		}
	} else {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
		default:
			cli.Exit(fmt.Errorf("error loading config file (%s): %s", viper.ConfigFileUsed(), err))
		}
	}
}

var RootCmd = &cobra.Command{
	Use:     "lem-tools command",
	Short:   "Legal Entity Management tools",
	Long:    `Command line tools for onboarding legal entities via the Legal Entity Management API`,
	Version: version.VersionToString(),
}

// MakeLegalEntityService creates a legal entity service configured from flags, LEM_* environment variables
// and the config file. Logs go to stderr, or to --log-file, so stdout carries only command output.
func MakeLegalEntityService() (*legal_entity.LegalEntityService, error) {
	logLevels := logger.LogLevelConfig("*=warning")
	if Global.Debug {
		logLevels = "*=debug"
	}
	logRegistry, err := logger.NewLogRegistry(logLevels)
	if err != nil {
		return nil, err
	}
	logFactory := logger.MakeLogrusLogFactoryStdErrPlain(logRegistry)
	if Global.LogFilePath != "" {
		logFactory, err = logger.MakeLogrusLogFactoryToFile(logRegistry, logger.LogFilePath(Global.LogFilePath))
		if err != nil {
			return nil, err
		}
	}

	apiKey := models.APIKey(viper.GetString("api_key"))
	if apiKey == "" {
		return nil, errors.Errorf("an API key must be set using --api-key or %s_API_KEY", EnvPrefix)
	}
	environment, err := models.ParseEnvironment(viper.GetString("environment"))
	if err != nil {
		return nil, err
	}
	clientConfig := client.DefaultAPIClientConfig(environment)
	clientConfig.Endpoint = viper.GetString("endpoint")
	clientConfig.RetryMax = viper.GetInt("retry_max")

	return legal_entity.NewLegalEntityService(
		legal_entity.LegalEntityServiceConfig{
			APIKey:       apiKey,
			Environment:  environment,
			ThemeID:      models.ThemeID(viper.GetString("theme_id")),
			ErrorMapping: legal_entity.ErrorMappingPreserve,
		},
		client.MakeAPIClientFactory(clientConfig, logFactory),
		logFactory,
	), nil
}
