// Package config loads the categories configuration consumed by the
// spinner and challenge panels. The document is a JSON object with a
// "categories" mapping of name → item labels and an optional
// "challenges" list.
package config

import (
	"errors"

	"github.com/tidwall/gjson"
)

type Category struct {
	Name  string
	Items []string
}

type Config struct {
	Categories []Category
	Challenges []string
}

// Parse decodes a configuration document. Category order follows the
// document, which is why this walks the JSON with gjson instead of
// unmarshaling into a Go map.
func Parse(data []byte) (Config, error) {
	if !gjson.ValidBytes(data) {
		return Config{}, errors.New("configuration is not valid JSON")
	}
	root := gjson.ParseBytes(data)

	cats := root.Get("categories")
	if !cats.Exists() || !cats.IsObject() {
		return Config{}, errors.New(`configuration has no "categories" object`)
	}

	var cfg Config
	cats.ForEach(func(key, value gjson.Result) bool {
		c := Category{Name: key.String()}
		for _, item := range value.Array() {
			c.Items = append(c.Items, item.String())
		}
		cfg.Categories = append(cfg.Categories, c)
		return true
	})

	for _, ch := range root.Get("challenges").Array() {
		cfg.Challenges = append(cfg.Challenges, ch.String())
	}
	return cfg, nil
}

// Default is the fallback configuration used when no source is
// configured or the configured one cannot be loaded.
func Default() Config {
	return Config{
		Categories: []Category{
			{Name: "Students", Items: []string{"Ava", "Ben", "Carmen", "Dai", "Eli", "Farah"}},
		},
		Challenges: []string{
			"Explain it to a rubber duck",
			"Answer in one sentence",
			"Draw it on the board",
			"Give a counterexample",
		},
	}
}
