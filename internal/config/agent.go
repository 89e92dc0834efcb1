package config

import (
	"fmt"
	"os"
	"strings"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/studize/internal/summary"
)

const (
	EnvAgentProviderName = "STUDIZE_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "STUDIZE_AGENT_BASE_URL"
	EnvAgentToken        = "STUDIZE_AGENT_TOKEN"
	EnvAgentDeployment   = "STUDIZE_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "STUDIZE_AGENT_API_VERSION"
	EnvAgentAuthType     = "STUDIZE_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "STUDIZE_AGENT_MODEL_NAME"

	// EnvGroqAPIKey is read when no STUDIZE_AGENT_TOKEN is set.
	EnvGroqAPIKey = "GROQ_API_KEY"

	DefaultAgentName = "studize"
	DefaultGroqURL   = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "gemma2-9b-it"
)

// FinalizeAgent applies the three-phase finalize to a go-agents AgentConfig.
// The provider defaults to Groq; hosted providers fail validation without a
// token.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	if c.Name == "" {
		c.Name = DefaultAgentName
	}
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Name == "" {
		c.Provider.Name = summary.ProviderGroq
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if strings.EqualFold(c.Provider.Name, summary.ProviderGroq) {
		if c.Provider.BaseURL == "" {
			c.Provider.BaseURL = DefaultGroqURL
		}
		if c.Model.Name == "" {
			c.Model.Name = DefaultGroqModel
		}
	}

	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, summary.OptionToken)
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")

	if _, ok := c.Provider.Options[summary.OptionToken]; !ok {
		if v := os.Getenv(EnvGroqAPIKey); v != "" && strings.EqualFold(c.Provider.Name, summary.ProviderGroq) {
			c.Provider.Options[summary.OptionToken] = v
		}
	}
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil || c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil || c.Model.Name == "" {
		return fmt.Errorf("model name required")
	}
	if requiresToken(c.Provider.Name) {
		if token, _ := c.Provider.Options[summary.OptionToken].(string); token == "" {
			return fmt.Errorf(
				"%s provider requires an API token: set %s or %s",
				c.Provider.Name, EnvAgentToken, EnvGroqAPIKey,
			)
		}
	}
	return nil
}

func requiresToken(provider string) bool {
	switch strings.ToLower(provider) {
	case summary.ProviderGroq, summary.ProviderOpenAI:
		return true
	default:
		return false
	}
}
