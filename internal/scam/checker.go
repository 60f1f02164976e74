package scam

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"scamcheck/backend/internal/scam/contract"
)

// Source names which path produced a verdict.
type Source string

const (
	SourceRemote    Source = "remote"
	SourceHeuristic Source = "heuristic"
	SourceCache     Source = "cache"
)

const (
	// DefaultModel is a fast general-purpose chat model.
	DefaultModel       = "gpt-4o-mini"
	DefaultTemperature = 0.3
	defaultMaxTokens   = 512
	defaultProvider    = "openai"
)

// Error message fragments that identify a usage-limit rejection as opposed to
// a transient fault.
var quotaSignatures = []string{
	"429",
	"rate limit",
	"exceeded your current quota",
	"insufficient_quota",
}

// Options configures a Checker. Zero values fall back to defaults; Client and
// Quota exist so tests can run without network access or shared state.
type Options struct {
	APIKey   string
	Provider string
	Model    string
	// Temperature is a pointer so an explicit 0 is distinguishable from
	// unset; nil means the default.
	Temperature  *float64
	ForceOffline bool
	Quota        *QuotaState
	Client       contract.Provider
	Lookup       func(name string) string
	Logger       *zerolog.Logger
}

func (o Options) lookup(name string) string {
	if o.Lookup != nil {
		return o.Lookup(name)
	}
	return os.Getenv(name)
}

// Checker decides per call whether to attempt remote classification and
// guarantees a fallback verdict. It never returns an error to its caller.
type Checker struct {
	mu      sync.Mutex
	factory *Factory
	client  contract.Provider
	cfg     contract.ProviderConfig
	offline bool
	quota   *QuotaState
	log     zerolog.Logger
}

// NewChecker resolves the credential (explicit option, then OPENAI_API_KEY,
// then PUBLIC_OPENAI_API_KEY) and builds the remote client. Without a usable
// credential the checker is permanently offline until SetAPIKey is called.
func NewChecker(opts Options) *Checker {
	quota := opts.Quota
	if quota == nil {
		quota = sharedQuota
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	providerName := opts.Provider
	if providerName == "" {
		providerName = defaultProvider
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	key := opts.APIKey
	if key == "" {
		key = opts.lookup("OPENAI_API_KEY")
	}
	if key == "" {
		key = opts.lookup("PUBLIC_OPENAI_API_KEY")
	}

	c := &Checker{
		factory: NewFactory(),
		cfg: contract.ProviderConfig{
			ProviderName: providerName,
			APIKey:       key,
			ModelName:    model,
			Temperature:  temperature,
			MaxTokens:    defaultMaxTokens,
		},
		offline: opts.ForceOffline,
		quota:   quota,
		log:     log,
	}

	if opts.Client != nil {
		c.client = opts.Client
		return c
	}
	if key == "" {
		c.offline = true
		c.log.Warn().Msg("no remote API key configured, using rule-based analysis only")
		return c
	}
	c.client = c.factory.CreateProvider(&c.cfg)
	if c.client == nil {
		c.offline = true
		c.log.Warn().Str("provider", providerName).Msg("unsupported provider, using rule-based analysis only")
	}
	return c
}

// CheckMessage returns a verdict for the message. Remote-service failures are
// absorbed: every path terminates in a well-formed result.
func (c *Checker) CheckMessage(ctx context.Context, text string) *contract.AnalysisResult {
	result, _ := c.Check(ctx, text)
	return result
}

// Check is CheckMessage plus the path that produced the verdict.
func (c *Checker) Check(ctx context.Context, text string) (*contract.AnalysisResult, Source) {
	if c.quota.Exceeded() {
		return Classify(text), SourceHeuristic
	}

	c.mu.Lock()
	offline := c.offline
	client := c.client
	c.mu.Unlock()
	if offline || client == nil {
		return Classify(text), SourceHeuristic
	}

	result, err := client.Classify(ctx, text)
	if err == nil && result != nil {
		result.ClampConfidence()
		return result, SourceRemote
	}

	if isQuotaError(err) {
		c.mu.Lock()
		c.offline = true
		c.mu.Unlock()
		c.quota.MarkExceeded()
		c.log.Warn().Err(err).Msg("remote quota exhausted, all further checks use rule-based analysis")
	} else if err != nil {
		c.log.Debug().Err(err).Msg("remote analysis failed, falling back to rules")
	}
	return Classify(text), SourceHeuristic
}

// SetAPIKey swaps the credential and rebuilds the remote client. It clears
// the instance offline flag but not the shared quota flag.
func (c *Checker) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.APIKey = key
	c.client = nil
	c.offline = true
	if key == "" {
		return
	}
	c.client = c.factory.CreateProvider(&c.cfg)
	c.offline = c.client == nil
}

// SetOfflineMode flips whether remote attempts are considered at all.
func (c *Checker) SetOfflineMode(offline bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offline = offline
}

func (c *Checker) SetModel(model string) {
	if model == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.ModelName = model
	if c.cfg.APIKey != "" {
		c.client = c.factory.CreateProvider(&c.cfg)
	}
}

func (c *Checker) SetTemperature(temperature float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Temperature = temperature
	if c.cfg.APIKey != "" {
		c.client = c.factory.CreateProvider(&c.cfg)
	}
}

func (c *Checker) Offline() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offline
}

func (c *Checker) Quota() *QuotaState {
	return c.quota
}

// Config returns a copy of the provider configuration with the key masked.
func (c *Checker) Config() contract.ProviderConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.cfg
	if cfg.APIKey != "" {
		cfg.APIKey = "****"
	}
	return cfg
}

func (c *Checker) Provider() contract.Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}

// CheckOnce builds a throwaway checker with the given credential and runs a
// single check against the shared quota state.
func CheckOnce(ctx context.Context, text, apiKey string, forceOffline bool) *contract.AnalysisResult {
	checker := NewChecker(Options{APIKey: apiKey, ForceOffline: forceOffline})
	return checker.CheckMessage(ctx, text)
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	for _, signature := range quotaSignatures {
		if strings.Contains(message, signature) {
			return true
		}
	}
	return false
}
