package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/request"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// newClient is replaced in tests
var newClient = llm.NewClient

// cliOptions holds the raw flag values shared by all commands
type cliOptions struct {
	configPath  string
	bulletsPath string
	profilePath string
	outputDir   string
	provider    string
	model       string
	apiKey      string
	logLevel    string
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "resume_tailor",
		Short: "Tailor resume bullets to a job posting and write a .docx",
		Long: `Reads one JSON job request from stdin:

  {"jobDescription": "...", "jobTitle": "...", "companyName": "...", "outputPath": "..."}

selects and lightly rewrites the most relevant bullets from the master resume with a single
language model call, writes a Word document and prints {"docxPath": "<absolute path>"}.

Configuration is read from --config, then the environment (and .env), and finally flags,
with later sources taking priority.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTailor(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	flags.StringVar(&opts.bulletsPath, "bullets", "", "Path to the master resume bullets (defaults to MASTER_RESUME_PATH or master_resume.json next to the binary)")
	flags.StringVar(&opts.profilePath, "profile", "", "Path to the user profile (defaults to USER_PROFILE_PATH or user_profile.json next to the binary)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "Directory for generated file names when the request has no outputPath")
	flags.StringVar(&opts.provider, "provider", "", "LLM provider: openai, gemini or anthropic (defaults to LLM_PROVIDER or openai)")
	flags.StringVar(&opts.model, "model", "", "Model identifier (defaults to the provider's *_MODEL env var)")
	flags.StringVar(&opts.apiKey, "api-key", "", "API key for the provider (defaults to the provider's *_API_KEY env var)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (defaults to LOG_LEVEL or warn)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print the request and tailored bullets to stderr")

	cmd.AddCommand(newCheckCommand(opts), newInspectCommand())
	return cmd
}

// resolveConfig layers the config file over the environment and flags over both.
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (config.Config, error) {
	var fileCfg config.Config
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return config.Config{}, &config.ConfigurationError{Message: "failed to load config", Cause: err}
		}
		fileCfg = *loaded
	}

	// Only override if the flag was explicitly set
	var flagCfg config.Config
	flags := cmd.Flags()
	if flags.Changed("provider") {
		flagCfg.Provider = opts.provider
	}
	if flags.Changed("model") {
		flagCfg.Model = opts.model
	}
	if flags.Changed("api-key") {
		flagCfg.APIKey = opts.apiKey
	}
	if flags.Changed("bullets") {
		flagCfg.MasterResumePath = opts.bulletsPath
	}
	if flags.Changed("profile") {
		flagCfg.UserProfilePath = opts.profilePath
	}
	if flags.Changed("output-dir") {
		flagCfg.OutputDir = opts.outputDir
	}
	if flags.Changed("log-level") {
		flagCfg.LogLevel = opts.logLevel
	}
	if flags.Changed("verbose") {
		flagCfg.Verbose = opts.verbose
	}

	// The provider decides which credential and model variables apply
	provider := flagCfg.Provider
	if provider == "" {
		provider = fileCfg.Provider
	}
	envCfg := config.FromEnv(provider, os.Getenv, config.ExecutableDir())

	merged := fileCfg.MergeWithDefaults(envCfg)
	return flagCfg.MergeWithDefaults(merged), nil
}

func runTailor(cmd *cobra.Command, opts *cliOptions) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return &config.ConfigurationError{Message: "invalid log level", Cause: err}
	}
	log := observability.NewRunEntry(logger).WithFields(logrus.Fields{
		"provider": cfg.Provider,
	})

	client, err := newClient(ctx, cfg.LLMConfig())
	if err != nil {
		return &config.ConfigurationError{Message: "failed to create LLM client", Cause: err}
	}
	defer func() { _ = client.Close() }()
	log = log.WithField("model", client.Model())

	runOpts := pipeline.RunOptions{
		BulletsPath: cfg.MasterResumePath,
		ProfilePath: cfg.UserProfilePath,
		OutputDir:   cfg.OutputDir,
		Tailorer:    tailoring.NewService(client, log),
		Logger:      log,
	}
	if cfg.Verbose {
		runOpts.Printer = observability.NewPrinter(cmd.ErrOrStderr())
	}

	if err := pipeline.Execute(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), runOpts); err != nil {
		entry := log.WithError(err)
		var reqErr *request.ValidationError
		if errors.As(err, &reqErr) {
			if missing := reqErr.MissingFields(); len(missing) > 0 {
				entry = entry.WithField("missing_fields", strings.Join(missing, ","))
			}
		}
		entry.Error("tailoring failed")
		// The caller reads stdout, so it gets a JSON body for every failure
		_, _ = types.Response{Error: err.Error()}.WriteTo(cmd.OutOrStdout())
		return err
	}
	return nil
}
