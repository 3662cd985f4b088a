package config

// Level maps onto slog levels (0 is info, -4 debug, 4 warn, 8 error).
type Logger struct {
	Level int `env:"LEVEL,expand" envDefault:"0"`
}
