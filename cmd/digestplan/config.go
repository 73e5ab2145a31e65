package main

import (
	"fmt"
	"math"
	"os"

	"github.com/forestrie/go-changestrie/digests"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// chainConfig is the digest configuration of a single chain, as read from a
// config file and the command line
type chainConfig struct {
	digests.Config `yaml:",inline"`
	Zero           uint64 `yaml:"zero"`
}

func readChainConfigFile(path string) (chainConfig, error) {
	var cfg chainConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return chainConfig{}, fmt.Errorf("%w: %v", ErrConfigFile, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return chainConfig{}, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
	}
	return cfg, nil
}

// loadChainConfig reads the optional config file and then applies any flags
// that were set, either on the command line or from the environment.
func loadChainConfig(c *cli.Context) (chainConfig, error) {
	var cfg chainConfig
	var err error

	if path := c.String(configFlagName); path != "" {
		if cfg, err = readChainConfigFile(path); err != nil {
			return chainConfig{}, err
		}
	}

	if c.IsSet(intervalFlagName) {
		if cfg.DigestInterval, err = uint32Flag(c, intervalFlagName); err != nil {
			return chainConfig{}, err
		}
	}
	if c.IsSet(levelsFlagName) {
		if cfg.DigestLevels, err = uint32Flag(c, levelsFlagName); err != nil {
			return chainConfig{}, err
		}
	}
	if c.IsSet(zeroFlagName) {
		cfg.Zero = c.Uint64(zeroFlagName)
	}
	return cfg, nil
}

func uint32Flag(c *cli.Context, name string) (uint32, error) {
	v := c.Uint(name)
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: --%s=%d", ErrConfigValue, name, v)
	}
	return uint32(v), nil
}
