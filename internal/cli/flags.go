package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pom-version-checker/internal/app"
)

type repositoryOptions struct {
	RepositoryURL string
	TimeoutSec    int
	Retries       int
	RetryDelayMs  int
	MaxDepth      int
	Precedence    string
	VersionScheme string
}

type checkOptions struct {
	Format     string
	OutputPath string
}

func bindRepositoryFlags(cmd *cobra.Command, opts *repositoryOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.RepositoryURL, "repository-url", "https://repo1.maven.org/maven2", "Remote Maven repository base URL")
	flags.IntVar(&opts.TimeoutSec, "timeout", 30, "Remote fetch timeout in seconds")
	flags.IntVar(&opts.Retries, "retries", 0, "Extra attempts for failed remote fetches")
	flags.IntVar(&opts.RetryDelayMs, "retry-delay-ms", 200, "Base delay between retries")
	flags.IntVar(&opts.MaxDepth, "max-depth", 20, "Maximum number of ancestors to walk")
	flags.StringVar(&opts.Precedence, "precedence", "properties-first", "Lookup order inside one scope (properties-first, managed-first)")
	flags.StringVar(&opts.VersionScheme, "version-scheme", "deb", "Version ordering (deb, pep440)")

	_ = viper.BindPFlag("repository_url", flags.Lookup("repository-url"))
	_ = viper.BindPFlag("timeout_sec", flags.Lookup("timeout"))
	_ = viper.BindPFlag("retries", flags.Lookup("retries"))
	_ = viper.BindPFlag("retry_delay_ms", flags.Lookup("retry-delay-ms"))
	_ = viper.BindPFlag("max_depth", flags.Lookup("max-depth"))
	_ = viper.BindPFlag("precedence", flags.Lookup("precedence"))
	_ = viper.BindPFlag("version_scheme", flags.Lookup("version-scheme"))
}

func bindCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "Report format (text, yaml)")
	cmd.PersistentFlags().StringVarP(&opts.OutputPath, "output", "o", "", "Write the report to this file instead of stdout")
	_ = viper.BindPFlag("format", cmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))
}

func repositoryRequest(cmd *cobra.Command, opts repositoryOptions) app.RepositoryRequest {
	return app.RepositoryRequest{
		RepositoryURL: resolveString(cmd, opts.RepositoryURL, "repository_url", "repository-url"),
		TimeoutSec:    resolveInt(cmd, opts.TimeoutSec, "timeout_sec", "timeout"),
		Retries:       resolveInt(cmd, opts.Retries, "retries", "retries"),
		RetryDelayMs:  resolveInt(cmd, opts.RetryDelayMs, "retry_delay_ms", "retry-delay-ms"),
		MaxDepth:      resolveInt(cmd, opts.MaxDepth, "max_depth", "max-depth"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.InheritedFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

// exactArgs reports a wrong argument count as an invalid argument so it
// maps to the usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(err.Error())
		}
		return nil
	}
}
