package main

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-changestrie/digests"
	"github.com/urfave/cli/v2"
)

// App carries the state shared by all commands, populated by the Before hook
type App struct {
	log      logger.Logger
	chain    chainConfig
	schedule digests.Schedule[uint64]
}

func newApp() *cli.App {
	app := &App{}
	return &cli.App{
		Name:  "digestplan",
		Usage: "changes trie digest schedule calculator",
		Flags: []cli.Flag{
			intervalFlag,
			levelsFlag,
			zeroFlag,
			configFlag,
			logLevelFlag,
			jsonFlag,
		},
		Before:   app.init,
		After:    app.close,
		Commands: app.commands(),
	}
}

func (app *App) init(c *cli.Context) error {
	logger.New(c.String(logLevelFlagName))
	app.log = logger.Sugar.WithServiceName("digestplan")

	chain, err := loadChainConfig(c)
	if err != nil {
		return err
	}
	app.chain = chain
	app.schedule = digests.NewSchedule(chain.Config, chain.Zero)

	app.log.Infof("chain: %v zero=%d max interval=%d", chain.Config, chain.Zero, chain.MaxDigestInterval())
	if chain.IsDigestBuildEnabled() && chain.EffectiveDigestLevels() < chain.DigestLevels {
		app.log.Infof(
			"digest levels %d..%d overflow a uint32 interval and will never be built",
			chain.EffectiveDigestLevels()+1, chain.DigestLevels)
	}
	return nil
}

func (app *App) close(c *cli.Context) error {
	logger.OnExit()
	return nil
}

func (app *App) commands() cli.Commands {
	return cli.Commands{
		{
			Name:   "info",
			Usage:  "show the effective digest configuration",
			Action: app.infoCmd,
		},
		{
			Name:      "level",
			Usage:     "show the digest, if any, that must be built at a block",
			ArgsUsage: "<block>",
			Action:    app.levelCmd,
		},
		{
			Name:      "range",
			Usage:     "show the top level digest range covering a block",
			ArgsUsage: "<block>",
			Action:    app.rangeCmd,
		},
		{
			Name:      "prev",
			Usage:     "show the most recent top level digest at or before a block",
			ArgsUsage: "<block>",
			Action:    app.prevCmd,
		},
		{
			Name:      "plan",
			Usage:     "list every digest that must be built in an inclusive range of blocks",
			ArgsUsage: "<from> <to>",
			Flags:     []cli.Flag{limitFlag},
			Action:    app.planCmd,
		},
		{
			Name:   "encode",
			Usage:  "hex encode the digest configuration",
			Flags:  []cli.Flag{formatFlag},
			Action: app.encodeCmd,
		},
		{
			Name:      "decode",
			Usage:     "decode a hex encoded digest configuration",
			ArgsUsage: "<hex>",
			Flags:     []cli.Flag{formatFlag},
			Action:    app.decodeCmd,
		},
	}
}
