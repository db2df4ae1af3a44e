package config

type App struct {
	Port        string `yaml:"port"`
	DataDir     string `yaml:"dataDir"`
	DatabaseURL string `yaml:"databaseURL"`
	JWTSecret   string `yaml:"jwtSecret"`
	Env         string `yaml:"env"`
}
