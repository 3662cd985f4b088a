package config

import "time"

type Renderer struct {
	// URI of the renderer backend, e.g. "plantuml://./plantuml.jar".
	URI URI `env:"URI,expand" envDefault:"plantuml://./plantuml.jar"`

	JavaBin     string        `env:"JAVA_BIN,expand" envDefault:"java"`
	GraphvizDot string        `env:"GRAPHVIZ_DOT,expand"`
	Timeout     time.Duration `env:"TIMEOUT,expand" envDefault:"30s"`

	Cache RendererCache `envPrefix:"CACHE_"`
}

type RendererCache struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
	Size    int  `env:"SIZE,expand" envDefault:"64"`
}
