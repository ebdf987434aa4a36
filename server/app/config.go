package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/onboarding-platform/onboarding/common/logger"
	"github.com/onboarding-platform/onboarding/common/models"
	"github.com/onboarding-platform/onboarding/server/api/lem/client"
	"github.com/onboarding-platform/onboarding/server/api/rest/server"
	"github.com/onboarding-platform/onboarding/server/services/legal_entity"
)

// EnvPrefix is prepended to a setting's upper-cased name to give the environment variable that sets it,
// e.g. ONBOARDING_LEM_API_KEY.
const EnvPrefix = "ONBOARDING"

// LogSafeFlags is a list of flags by name whose values are safe to log.
var LogSafeFlags = []string{
	"config",
	"api_server_address",
	"public_host",
	"cors_allowed_origins",
	"lem_environment",
	"lem_endpoint",
	"lem_retry_max",
	"hosted_onboarding_theme_id",
	"error_mapping",
	"log_levels",
}

type ServerConfig struct {
	AppAPIConfig       server.AppAPIServerConfig
	PublicHost         server.PublicHost
	CORSAllowedOrigins server.CORSAllowedOrigins
	LegalEntityConfig  legal_entity.LegalEntityServiceConfig
	LEMClientConfig    client.APIClientConfig
	LogLevels          logger.LogLevelConfig
}

// Validate checks the config, reporting every problem found rather than just the first.
func (c *ServerConfig) Validate() error {
	var result *multierror.Error
	if c.AppAPIConfig.Address == "" {
		result = multierror.Append(result, errors.New("api_server_address must be set"))
	}
	if c.LegalEntityConfig.APIKey == "" {
		result = multierror.Append(result, errors.New("lem_api_key must be set"))
	}
	if !c.LegalEntityConfig.Environment.Valid() {
		result = multierror.Append(result, fmt.Errorf("lem_environment %q is not supported", c.LegalEntityConfig.Environment))
	}
	if !c.LegalEntityConfig.ErrorMapping.Valid() {
		result = multierror.Append(result, fmt.Errorf("error_mapping %q is not supported", c.LegalEntityConfig.ErrorMapping))
	}
	if c.LEMClientConfig.RetryMax < 0 {
		result = multierror.Append(result, errors.New("lem_retry_max must not be negative"))
	}
	if c.PublicHost != "" && !strings.HasPrefix(c.PublicHost.String(), "http://") && !strings.HasPrefix(c.PublicHost.String(), "https://") {
		result = multierror.Append(result, fmt.Errorf("public_host %q must start with http:// or https://", c.PublicHost))
	}
	return result.ErrorOrNil()
}

func ConfigFromFlags() (*ServerConfig, error) {
	return ConfigFromArgs(os.Args[1:])
}

// ConfigFromArgs reads the server config from command line args, then ONBOARDING_* environment variables,
// then the YAML config file named by --config, in that order of precedence.
func ConfigFromArgs(args []string) (*ServerConfig, error) {
	flags := pflag.NewFlagSet("onboarding-server", pflag.ContinueOnError)

	// API server
	flags.String("api_server_address",
		"0.0.0.0:8080", "The interface and port to bind the onboarding API server to.")
	flags.String("public_host",
		"", "The scheme and host users reach the web application on, e.g. https://app.example. Hosted onboarding returns users here. Derived from each request when not set.")
	flags.String("cors_allowed_origins",
		strings.Join(server.DefaultCORSAllowedOrigins, ","), "A comma separated list of origins browsers may call the API from.")

	// Legal Entity Management API
	flags.String("lem_api_key",
		"", "The API key used to authenticate to the Legal Entity Management API.")
	flags.String("lem_environment",
		models.EnvironmentTest.String(), fmt.Sprintf("The Legal Entity Management API environment to use (%s|%s).", models.EnvironmentTest, models.EnvironmentLive))
	flags.String("lem_endpoint",
		"", "Overrides the Legal Entity Management API base URL chosen by lem_environment.")
	flags.Int("lem_retry_max",
		client.DefaultRetryMax, "The maximum number of times to retry a failed Legal Entity Management API request.")
	flags.String("hosted_onboarding_theme_id",
		"", "The hosted onboarding theme to apply. The default theme is used when not set.")
	flags.String("error_mapping",
		legal_entity.ErrorMappingCollapse.String(), fmt.Sprintf("How remote failures are reported to API callers (%s|%s).", legal_entity.ErrorMappingCollapse, legal_entity.ErrorMappingPreserve))

	// Misc
	flags.String("log_levels",
		"", fmt.Sprintf("A comma separated list of name=level pairs where name is the name of the logger and level is one of: %s", logger.ListLogLevels()))
	flags.String("config",
		"", "The path to a YAML config file.")

	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	err = v.BindPFlags(flags)
	if err != nil {
		return nil, errors.Wrap(err, "error binding flags")
	}
	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		err = v.ReadInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", configFile)
		}
	}
	return configFromViper(v)
}

func configFromViper(v *viper.Viper) (*ServerConfig, error) {
	var result *multierror.Error

	environment, err := models.ParseEnvironment(v.GetString("lem_environment"))
	if err != nil {
		result = multierror.Append(result, err)
	}
	errorMapping, err := legal_entity.ParseErrorMapping(v.GetString("error_mapping"))
	if err != nil {
		result = multierror.Append(result, err)
	}
	if result.ErrorOrNil() != nil {
		return nil, result
	}

	clientConfig := client.DefaultAPIClientConfig(environment)
	clientConfig.Endpoint = v.GetString("lem_endpoint")
	clientConfig.RetryMax = v.GetInt("lem_retry_max")

	config := &ServerConfig{
		AppAPIConfig: server.AppAPIServerConfig{
			HTTPServerConfig: server.HTTPServerConfig{
				Address: v.GetString("api_server_address"),
			},
		},
		PublicHost:         server.PublicHost(strings.TrimRight(v.GetString("public_host"), "/")),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		LegalEntityConfig: legal_entity.LegalEntityServiceConfig{
			APIKey:       models.APIKey(v.GetString("lem_api_key")),
			Environment:  environment,
			ThemeID:      models.ThemeID(v.GetString("hosted_onboarding_theme_id")),
			ErrorMapping: errorMapping,
		},
		LEMClientConfig: clientConfig,
		LogLevels:       logger.LogLevelConfig(v.GetString("log_levels")),
	}
	err = config.Validate()
	if err != nil {
		return nil, err
	}
	return config, nil
}

func splitList(str string) []string {
	var list []string
	for _, item := range strings.Split(str, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	return list
}
