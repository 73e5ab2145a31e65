package main

import (
	"github.com/urfave/cli/v2"
)

const (
	intervalFlagName = "interval"
	levelsFlagName   = "levels"
	zeroFlagName     = "zero"
	configFlagName   = "config"
	logLevelFlagName = "loglevel"
	jsonFlagName     = "json"
	formatFlagName   = "format"
	limitFlagName    = "limit"

	envPrefix = "DIGESTPLAN_"

	formatFixed = "fixed"
	formatCBOR  = "cbor"
)

var (
	intervalFlag = &cli.UintFlag{
		Name:    intervalFlagName,
		Usage:   "blocks between level 1 digests, <= 1 disables digests",
		EnvVars: []string{envPrefix + "INTERVAL"},
	}
	levelsFlag = &cli.UintFlag{
		Name:    levelsFlagName,
		Usage:   "number of digest levels, 0 disables digests",
		EnvVars: []string{envPrefix + "LEVELS"},
	}
	zeroFlag = &cli.Uint64Flag{
		Name:    zeroFlagName,
		Usage:   "the block digests are counted from",
		EnvVars: []string{envPrefix + "ZERO"},
	}
	configFlag = &cli.StringFlag{
		Name:    configFlagName,
		Usage:   "yaml file with digest_interval, digest_levels and zero. flags that are set explicitly take precedence",
		EnvVars: []string{envPrefix + "CONFIG"},
	}
	logLevelFlag = &cli.StringFlag{
		Name:    logLevelFlagName,
		Usage:   "log level, eg INFO or DEBUG. NOOP disables logging",
		Value:   "NOOP",
		EnvVars: []string{envPrefix + "LOGLEVEL"},
	}
	jsonFlag = &cli.BoolFlag{
		Name:  jsonFlagName,
		Usage: "print results as json",
	}
	formatFlag = &cli.StringFlag{
		Name:  formatFlagName,
		Usage: "encoding format, fixed (8 byte little endian) or cbor",
		Value: formatFixed,
	}
	limitFlag = &cli.UintFlag{
		Name:  limitFlagName,
		Usage: "maximum number of digests to list, 0 for no limit",
		Value: 1000,
	}
)
