package config

type Configuration struct {
	BackendURL       string      `json:"backendURL"`
	APIKey           string      `json:"apiKey,omitempty"`
	Language         string      `json:"language,omitempty"`
	TTSServerURL     string      `json:"ttsServerURL,omitempty"`
	TTSModel         string      `json:"ttsModel,omitempty"`
	TTSVoice         string      `json:"ttsVoice,omitempty"`
	LLMServerURL     string      `json:"llmServerURL,omitempty"`
	LLMModel         string      `json:"llmModel,omitempty"`
	Temperature      float64     `json:"temperature,omitempty"`
	InputDevice      string      `json:"inputDevice,omitempty"`
	OutputDevice     string      `json:"outputDevice,omitempty"`
	MinVolume        int         `json:"minVolume,omitempty"`
	VADEnabled       bool        `json:"vadEnabled,omitempty"`
	VADModelPath     string      `json:"vadModelPath,omitempty"`
	MaxRecordSeconds int         `json:"maxRecordSeconds,omitempty"`
	RequestTimeout   int         `json:"requestTimeoutSeconds,omitempty"`
	Redis            RedisConfig `json:"redis,omitempty"`
}

type RedisConfig struct {
	Address       string `json:"address,omitempty"`
	Password      string `json:"password,omitempty"`
	DB            int    `json:"db,omitempty"`
	DraftTTLHours int    `json:"draftTTLHours,omitempty"`
}

// Default returns the configuration used when no config file overrides
// a setting.
func Default() Configuration {
	return Configuration{
		Language:         "ms",
		MinVolume:        450,
		MaxRecordSeconds: 25,
		RequestTimeout:   90,
		Redis: RedisConfig{
			DraftTTLHours: 24,
		},
	}
}
