// Package config reads the optional collocate configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/revelaction/collocate/score"
)

const (
	DefaultCorpusPath = "../corpus.json"
	DefaultValPath    = "../ud.conllu"
	DefaultTopK       = 20
)

// Config holds the run settings that can be given in a file.
type Config struct {
	CorpusPath    string
	ValPath       string
	Algorithm     string
	TopK          int
	SaveDir       string
	ScriptPattern string
	Stopwords     []string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("corpus_path", DefaultCorpusPath)
	v.SetDefault("val_path", DefaultValPath)
	v.SetDefault("algorithm", score.DefaultScorer)
	v.SetDefault("top_k", DefaultTopK)
	v.SetDefault("save_dir", "")
	v.SetDefault("script_pattern", score.DefaultPattern)
	v.SetDefault("stopwords", score.DefaultStopwords())
	return v
}

// Default returns the built-in settings.
func Default() Config {
	return fromViper(newViper())
}

// Load reads the file at path (YAML, TOML or JSON by extension) over the
// defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	v := newViper()
	if path == "" {
		return fromViper(v), nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) Config {
	return Config{
		CorpusPath:    v.GetString("corpus_path"),
		ValPath:       v.GetString("val_path"),
		Algorithm:     v.GetString("algorithm"),
		TopK:          v.GetInt("top_k"),
		SaveDir:       v.GetString("save_dir"),
		ScriptPattern: v.GetString("script_pattern"),
		Stopwords:     v.GetStringSlice("stopwords"),
	}
}

// Policy builds the scoring policy of the configuration.
func (c Config) Policy() (score.Policy, error) {
	return score.NewPolicy(c.ScriptPattern, c.Stopwords)
}
