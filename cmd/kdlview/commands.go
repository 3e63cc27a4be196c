package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "kdlview").
		WithSynopsis("kdlview [opts] [command [opts]] [files]").
		WithDescription("kdlview is a tool for inspecting KDL documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kdlviewMain(cfg, cc, args)
		}).
		WithSubs(
			ReplCommand(cfg),
			JSONCommand(cfg),
			YAMLCommand(cfg),
			HTMLCommand(cfg),
			TreeCommand(cfg))
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithAliases("r").
		WithOpts(opts...).
		WithSynopsis("repl [-view ast|json]").
		WithDescription("interactively inspect KDL text as a collapsible tree or json").
		WithRun(func(cc *cli.Context, args []string) error {
			return replRun(cfg, cc, args)
		})
}

func JSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JSONConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.JSON, "json").
		WithAliases("j").
		WithSynopsis("json [files]").
		WithDescription("project KDL documents to json").
		WithRun(func(cc *cli.Context, args []string) error {
			return jsonRun(cfg, cc, args)
		})
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.YAML, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [files]").
		WithDescription("project KDL documents to yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlRun(cfg, cc, args)
		})
}

func HTMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HTMLConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.HTML, "html").
		WithSynopsis("html [opts] [files]").
		WithDescription("render KDL documents as an html tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return htmlRun(cfg, cc, args)
		})
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tree, "tree").
		WithAliases("t").
		WithSynopsis("tree [opts] [files]").
		WithDescription("render KDL documents as an indented text tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treeRun(cfg, cc, args)
		})
}
