package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerfit/internal/ai"
	"github.com/spigell/careerfit/internal/ai/gemini"
	"github.com/spigell/careerfit/internal/document"
	"github.com/spigell/careerfit/internal/logger"
	"github.com/spigell/careerfit/internal/pipeline"
	"github.com/spigell/careerfit/internal/profile"
	"github.com/spigell/careerfit/internal/report"
	"github.com/spigell/careerfit/internal/scoring"
	"github.com/spigell/careerfit/internal/secrets"
)

// runtime bundles what every scoring command needs.
type runtime struct {
	logger  *zap.Logger
	config  *Config
	catalog *profile.Catalog
}

func newRuntime() *runtime {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(redacted(config), "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	catalog, err := loadCatalog(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading role catalog", zap.Error(err), zap.String("catalog_file", config.CatalogFile))
	}
	logger.Debug("role catalog loaded", zap.Int("roles", catalog.Len()))

	return &runtime{logger: logger, config: config, catalog: catalog}
}

func loadCatalog(path string) (*profile.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return profile.Default()
	}
	return profile.Load(path)
}

// redacted returns a copy of the config that is safe to log.
func redacted(config *Config) *Config {
	c := *config
	if c.AI != nil && c.AI.Gemini != nil {
		aiCfg := *c.AI
		g := *aiCfg.Gemini
		if g.APIKey != "" {
			g.APIKey = "<redacted>"
		}
		aiCfg.Gemini = &g
		c.AI = &aiCfg
	}
	return &c
}

// role resolves the target role from the --role flag, then the config, then
// an interactive picker when stdin is a terminal.
func (r *runtime) role(cmd *cobra.Command, required bool) string {
	if flag := cmd.Flag("role"); flag != nil {
		if role := strings.TrimSpace(flag.Value.String()); role != "" {
			return role
		}
	}
	if role := strings.TrimSpace(r.config.Role); role != "" {
		return role
	}
	if !required {
		return ""
	}

	if !isTerminal(os.Stdin) {
		r.logger.Fatal("role is required", zap.String("hint", "pass --role or set 'role' in the configuration file"))
	}

	role, err := pickRole(r.catalog)
	if err != nil {
		r.logger.Fatal("picking a role", zap.Error(err))
	}
	return role
}

func pickRole(catalog *profile.Catalog) (string, error) {
	prompt := promptui.Select{
		Label: "Choose a target role and press ENTER",
		Items: catalog.Names(),
		Size:  10,
	}

	_, role, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return role, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// session builds a pipeline session for role, loading the documents named by
// the --resume and --answers flags when they are set.
func (r *runtime) session(cmd *cobra.Command, role string) *pipeline.Session {
	var (
		resume  string
		answers []string
		err     error
	)

	if path := flagString(cmd, "resume"); path != "" {
		resume, err = document.LoadText(path)
		if err != nil {
			r.logger.Fatal("loading resume", zap.Error(err))
		}
	}

	if path := flagString(cmd, "answers"); path != "" {
		answers, err = document.LoadAnswers(path)
		if err != nil {
			r.logger.Fatal("loading interview answers", zap.Error(err))
		}
	}

	p := r.catalog.Lookup(role)
	if role != "" && !r.catalog.Has(role) {
		r.logger.Warn("role not found in catalog, using a generic profile",
			zap.String(logger.FieldRole, role),
			zap.Strings("known_roles", r.catalog.Names()),
		)
	}

	return pipeline.NewSession(role, p, resume, answers)
}

func flagString(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}

// execute runs the enabled stages over s and prints the report.
func (r *runtime) execute(s *pipeline.Session, questions int, only ...string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sessionLog := logger.WithSession(r.logger, s.ID, s.RoleName)
	sessionLog.Info("starting the careerfit", zap.String("version", version))

	cfg := &pipeline.Config{Questions: questions}
	deps := pipeline.Deps{
		Logger: r.logger,
		Rand:   scoring.NewRand(r.config.Seed),
	}

	if r.config.AI != nil && r.config.AI.Enabled {
		cfg.AI = &pipeline.AIConfig{Enabled: true, Provider: r.config.AI.Provider}
	}

	stages := pipeline.Stages(cfg)
	if len(only) > 0 {
		for _, stage := range stages {
			if !slices.Contains(only, stage.Name()) {
				stage.Disable("not requested by command")
			}
		}
	}

	if cfg.AI != nil && isRequested(only, pipeline.StageCoach) {
		coach, err := newCoach(ctx, r.config.AI, sessionLog)
		if err != nil {
			sessionLog.Warn("skipping AI coach", zap.Error(err))
			pipeline.DisableByName(stages, pipeline.StageCoach, err.Error())
		}
		deps.Coach = coach
	}

	if err := pipeline.Run(ctx, cfg, deps, stages, s); err != nil {
		sessionLog.Fatal("scoring failed", zap.Error(err))
	}

	for _, status := range pipeline.Describe(stages) {
		sessionLog.Debug("stage status",
			zap.String(logger.FieldStage, status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
		)
	}

	out := report.New(s, pipeline.Describe(stages))
	if err := report.Write(os.Stdout, viper.GetString("output"), out); err != nil {
		sessionLog.Fatal("writing report", zap.Error(err))
	}
}

func isRequested(only []string, name string) bool {
	return len(only) == 0 || slices.Contains(only, name)
}

func newCoach(ctx context.Context, cfg *AIConfig, baseLogger *zap.Logger) (ai.Coach, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.ProviderName {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	g := cfg.Gemini
	if g == nil {
		g = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: g.APIKey,
		Env:   "GEMINI_API_KEY",
		File:  g.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or CAREERFIT_GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithFields(baseLogger, logger.AIFields(gemini.ProviderName, g.Model)...).
		With(zap.Int("ai_retry_attempts", g.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, g.Model, g.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewCoach(generator, baseLogger, g.MaxLogLength), nil
}
