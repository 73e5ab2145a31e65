package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/forestrie/go-changestrie/digests"
	"github.com/forestrie/go-changestrie/digests/configcodec"
	"github.com/urfave/cli/v2"
)

type infoResult struct {
	digests.Config
	Zero              uint64 `json:"zero"`
	Enabled           bool   `json:"enabled"`
	MaxDigestInterval uint32 `json:"max_digest_interval"`
	EffectiveLevels   uint32 `json:"effective_digest_levels"`
}

type levelResult struct {
	Block uint64         `json:"block"`
	Level *digests.Level `json:"level"`
}

type rangeResult struct {
	Block uint64                 `json:"block"`
	Range *digests.Range[uint64] `json:"range"`
}

type prevResult struct {
	Block uint64  `json:"block"`
	Prev  *uint64 `json:"prev"`
}

type planEntry struct {
	Block uint64 `json:"block"`
	digests.Level
}

func (app *App) infoCmd(c *cli.Context) error {
	chain := app.chain
	res := infoResult{
		Config:            chain.Config,
		Zero:              chain.Zero,
		Enabled:           chain.IsDigestBuildEnabled(),
		MaxDigestInterval: chain.MaxDigestInterval(),
		EffectiveLevels:   chain.EffectiveDigestLevels(),
	}
	if c.Bool(jsonFlagName) {
		return printJSON(c, res)
	}
	printf(c, "config: %v\n", res.Config)
	printf(c, "zero: %d\n", res.Zero)
	printf(c, "enabled: %t\n", res.Enabled)
	printf(c, "max digest interval: %d\n", res.MaxDigestInterval)
	printf(c, "effective levels: %d\n", res.EffectiveLevels)
	return nil
}

func (app *App) levelCmd(c *cli.Context) error {
	blocks, err := blockArgs(c, 1)
	if err != nil {
		return err
	}
	res := levelResult{Block: blocks[0]}
	if level, ok := app.schedule.LevelAt(blocks[0]); ok {
		res.Level = &level
	}
	if c.Bool(jsonFlagName) {
		return printJSON(c, res)
	}
	if res.Level == nil {
		printf(c, "block %d: none\n", res.Block)
		return nil
	}
	printf(c, "block %d: level %d interval %d step %d\n",
		res.Block, res.Level.Level, res.Level.Interval, res.Level.Step)
	return nil
}

func (app *App) rangeCmd(c *cli.Context) error {
	blocks, err := blockArgs(c, 1)
	if err != nil {
		return err
	}
	res := rangeResult{Block: blocks[0]}
	if r, ok := app.schedule.NextMaxLevelRange(blocks[0]); ok {
		res.Range = &r
	}
	if c.Bool(jsonFlagName) {
		return printJSON(c, res)
	}
	if res.Range == nil {
		printf(c, "block %d: none\n", res.Block)
		return nil
	}
	printf(c, "block %d: %v\n", res.Block, *res.Range)
	return nil
}

func (app *App) prevCmd(c *cli.Context) error {
	blocks, err := blockArgs(c, 1)
	if err != nil {
		return err
	}
	res := prevResult{Block: blocks[0]}
	if prev, ok := app.schedule.PrevMaxLevelBlock(blocks[0]); ok {
		res.Prev = &prev
	}
	if c.Bool(jsonFlagName) {
		return printJSON(c, res)
	}
	if res.Prev == nil {
		printf(c, "block %d: none\n", res.Block)
		return nil
	}
	printf(c, "block %d: %d\n", res.Block, *res.Prev)
	return nil
}

func (app *App) planCmd(c *cli.Context) error {
	blocks, err := blockArgs(c, 2)
	if err != nil {
		return err
	}
	from, to := blocks[0], blocks[1]
	limit := c.Uint(limitFlagName)

	entries := []planEntry{}
	for block, level := range app.schedule.Builds(from, to) {
		if limit > 0 && uint(len(entries)) >= limit {
			app.log.Infof("plan truncated at %d digests, next is at block %d", limit, block)
			break
		}
		entries = append(entries, planEntry{Block: block, Level: level})
	}

	if c.Bool(jsonFlagName) {
		return printJSON(c, entries)
	}
	for _, e := range entries {
		printf(c, "%d level %d interval %d step %d\n", e.Block, e.Level.Level, e.Interval, e.Step)
	}
	return nil
}

func (app *App) encodeCmd(c *cli.Context) error {
	var b []byte
	switch format := c.String(formatFlagName); format {
	case formatFixed:
		b = configcodec.EncodeFixed(app.chain.Config)
	case formatCBOR:
		codec, err := configcodec.NewCodec()
		if err != nil {
			return err
		}
		if b, err = codec.Marshal(app.chain.Config); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	printf(c, "%s\n", hex.EncodeToString(b))
	return nil
}

func (app *App) decodeCmd(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("%w: expected 1, got %d", ErrArgCount, c.NArg())
	}
	b, err := hex.DecodeString(strings.TrimPrefix(c.Args().First(), "0x"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHexInput, err)
	}

	var cfg digests.Config
	switch format := c.String(formatFlagName); format {
	case formatFixed:
		cfg, err = configcodec.DecodeFixed(b)
	case formatCBOR:
		var codec configcodec.Codec
		if codec, err = configcodec.NewCodec(); err != nil {
			return err
		}
		cfg, err = codec.Unmarshal(b)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	return printJSON(c, cfg)
}

// blockArgs parses exactly n block number arguments
func blockArgs(c *cli.Context, n int) ([]uint64, error) {
	if c.NArg() != n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrArgCount, n, c.NArg())
	}
	blocks := make([]uint64, n)
	for i, arg := range c.Args().Slice() {
		block, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBlockNumber, arg)
		}
		blocks[i] = block
	}
	return blocks, nil
}

func printf(c *cli.Context, format string, args ...any) {
	_, _ = fmt.Fprintf(c.App.Writer, format, args...)
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
