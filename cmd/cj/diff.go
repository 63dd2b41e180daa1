package main

import (
	"fmt"

	columbus "github.com/columbus-format/go-columbus"

	"github.com/scott-cotton/cli"
)

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <from> <to>").
		WithDescription("Show differences between the canonical forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadArg(args[0])
	if err != nil {
		return err
	}
	to, err := loadArg(args[1])
	if err != nil {
		return err
	}
	d := columbus.Diff(from, to)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
