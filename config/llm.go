package config

// LLM 标签生成所用推理服务（OpenAI 兼容接口）
type LLM struct {
	APIKey  string `json:"api_key" yaml:"api_key"`
	BaseURL string `json:"base_url" yaml:"base_url"`
	Model   string `json:"model" yaml:"model"`
	// TimeoutSeconds 单次调用超时，默认 10 秒
	TimeoutSeconds int `json:"timeout_seconds" yaml:"timeout_seconds"`
}

func (l *LLM) Timeout() int {
	if l.TimeoutSeconds <= 0 {
		return 10
	}
	return l.TimeoutSeconds
}

func ProvideLLMConfig(cfg *Config) *LLM {
	return cfg.LLM
}
