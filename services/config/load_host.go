//go:build !rp2040 && !rp2350

package config

import (
	"github.com/ilyakaznacheev/cleanenv"

	"tictactoe-go/errcode"
	"tictactoe-go/types"
)

// Load starts from Default, applies the optional YAML/JSON/TOML file at path
// and then TTT_* environment overrides. The result is validated.
func Load(path string) (types.GameConfig, error) {
	cfg := Default()
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return types.GameConfig{}, errcode.Wrap(errcode.InvalidConfig, "read "+path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return types.GameConfig{}, errcode.Wrap(errcode.InvalidConfig, "env", err)
	}
	if err := Validate(cfg); err != nil {
		return types.GameConfig{}, err
	}
	return cfg, nil
}
