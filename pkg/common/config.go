// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/connect4/pkg/connect4"
)

//go:embed config.yaml
var BaseConfigFile []byte

var (
	ErrBadGlyph     = errors.New("config: glyphs must be non-empty and distinct")
	ErrUnknownColor = errors.New("config: unknown color")
)

// Colors maps the color names accepted in a configuration to their
// terminal attributes.
var Colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorOf looks up the attribute of a color name, ignoring case. The empty
// name means no color.
func ColorOf(name string) (color.Attribute, bool) {
	attribute, found := Colors[strings.ToLower(name)]
	return attribute, found
}

// PlayerConfig holds the presentation settings of one player.
type PlayerConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

type Config struct {
	Players struct {
		A PlayerConfig `yaml:"a"`
		B PlayerConfig `yaml:"b"`
	} `yaml:"players"`

	Empty string `yaml:"empty"`
	Color bool   `yaml:"color"`

	ReplayDelay time.Duration `yaml:"replay-delay"`
}

// Default returns the configuration embedded in the binary.
func Default() Config {
	var config Config
	if err := yaml.Unmarshal(BaseConfigFile, &config); err != nil {
		panic("config: bad embedded configuration: " + err.Error())
	}

	return config
}

// Load reads the configuration file at the given path on top of the
// defaults. The default ConfigFile is created if it doesn't exist yet.
func Load(path string) (Config, error) {
	if path == ConfigFile {
		TryMkdir(Directory)
		TryCreate(ConfigFile, BaseConfigFile)
	}

	config := Default()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && path == ConfigFile:
		// couldn't create the default file, carry on without it
		return config, nil
	default:
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return config, config.Validate()
}

// Player returns the settings of the given player.
func (config *Config) Player(player connect4.Player) PlayerConfig {
	if player == connect4.PlayerA {
		return config.Players.A
	}

	return config.Players.B
}

func (config *Config) Validate() error {
	a, b := config.Players.A.Glyph, config.Players.B.Glyph
	if a == "" || b == "" || config.Empty == "" || a == b || a == config.Empty || b == config.Empty {
		return ErrBadGlyph
	}

	for _, player := range []PlayerConfig{config.Players.A, config.Players.B} {
		if _, found := ColorOf(player.Color); player.Color != "" && !found {
			return fmt.Errorf("%w: %q", ErrUnknownColor, player.Color)
		}
	}

	return nil
}

// Dump writes the configuration to w as YAML.
func (config *Config) Dump(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(config); err != nil {
		return err
	}

	return encoder.Close()
}
