package config

type Content struct {
	// URI of the content source holding the catalogue documents,
	// e.g. "local://./content" or "https://example.net/content".
	Source URI `env:"SOURCE,expand" envDefault:"local://./content"`

	// Catalogue manifest location, relative to the content source.
	Catalogue string `env:"CATALOGUE,expand" envDefault:"catalogue.yml"`

	Vocabulary string `env:"VOCABULARY,expand" envDefault:"vocabulary.json"`
	DataModel  string `env:"DATA_MODEL,expand" envDefault:"data-model.md"`
}

type URI string

func (u URI) String() string {
	return string(u)
}
