package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [files]").
		WithDescription("Apply an RFC 6902 patch to documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchText, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := loadArg(arg)
		if err != nil {
			return err
		}
		if err := doc.Patch(patchText); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := doc.Write(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
