package main

import (
	"fmt"

	"github.com/columbus-format/go-columbus/encode"
	"github.com/columbus-format/go-columbus/eval"

	"github.com/scott-cotton/cli"
)

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <expr> [files]").
		WithDescription("Evaluate an expression against documents, bound as 'doc'").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		doc, err := loadArg(arg)
		if err != nil {
			return err
		}
		node, err := eval.QueryNode(doc.Root(), src)
		if err != nil {
			return fmt.Errorf("error evaluating %q on %s: %w", src, arg, err)
		}
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
