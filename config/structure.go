package config

// Config is the full configuration for a documentation host.
type Config struct {
	App    AppConfig    `koanf:"app"`
	API    APIConfig    `koanf:"api"`
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
	UI     UIConfig     `koanf:"ui"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"oneof=development staging production"`
}

// APIConfig is the service metadata rendered into the resource listing.
type APIConfig struct {
	Version           string `koanf:"version" validate:"required"`
	Title             string `koanf:"title" validate:"required"`
	Description       string `koanf:"description"`
	TermsOfServiceURL string `koanf:"terms_of_service_url" validate:"omitempty,url"`
	Contact           string `koanf:"contact"`
	License           string `koanf:"license"`
	LicenseURL        string `koanf:"license_url" validate:"omitempty,url"`
	BasePath          string `koanf:"base_path" validate:"required,startswith=/"`
}

type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"gt=0,lte=65535"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Pretty bool   `koanf:"pretty"`
}

// UIConfig locates the documentation browser.
type UIConfig struct {
	Path string `koanf:"path" validate:"required,startswith=/"`
}
