// Package config loads the process-wide settings: rate card, quotation
// defaults and ambient switches. Values come from an optional YAML file,
// an optional .env file and SC_-prefixed environment variables.
package config

import (
	"io/fs"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"smartconstruction/estimate"
	"smartconstruction/services"
)

// EnvPrefix is prepended to every environment override, e.g. SC_RATES_TILE_UNIT_PRICE.
const EnvPrefix = "SC"

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Rates estimate.MaterialConstants `mapstructure:"rates"`

	Defaults struct {
		Labour     services.Labour     `mapstructure:"labour"`
		FixedCosts services.FixedCosts `mapstructure:"fixed_costs"`
	} `mapstructure:"defaults"`
}

// IsDev reports whether the app runs in a development environment.
func (c Config) IsDev() bool {
	return c.App.Env == "dev" || c.App.Env == "development"
}

// Load reads configuration from path (skipped when empty or missing) and
// from dotenv, then applies environment overrides. The rate card is
// validated before it is returned.
func Load(path, dotenv string) (Config, error) {
	if dotenv != "" {
		if err := gotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "load %s", dotenv)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, errors.Wrapf(err, "read config %s", path)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "stat config %s", path)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.Rates.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "rates")
	}
	return c, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	rates := estimate.DefaultMaterialConstants()
	labour := services.DefaultLabour()
	fixed := services.DefaultFixedCosts()

	v.SetDefault("app.env", "production")
	v.SetDefault("metrics.enabled", true)

	v.SetDefault("rates.brick.length", rates.Brick.Length)
	v.SetDefault("rates.brick.width", rates.Brick.Width)
	v.SetDefault("rates.brick.height", rates.Brick.Height)
	v.SetDefault("rates.brick_unit_price", rates.BrickUnitPrice)
	v.SetDefault("rates.tile_unit_price", rates.TileUnitPrice)
	v.SetDefault("rates.tile_size", rates.TileSize)
	v.SetDefault("rates.wood_window_rate", rates.WoodWindowRate)
	v.SetDefault("rates.aluminium_window_rate", rates.AluminiumWindowRate)

	v.SetDefault("defaults.labour.workers", labour.Workers)
	v.SetDefault("defaults.labour.daily_rate", labour.DailyRate)
	v.SetDefault("defaults.labour.days", labour.Days)
	v.SetDefault("defaults.fixed_costs.electricity", fixed.Electricity)
	v.SetDefault("defaults.fixed_costs.water", fixed.Water)
	v.SetDefault("defaults.fixed_costs.transport", fixed.Transport)
}
