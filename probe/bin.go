package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	. "github.com/ZenLiuCN/qgl"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, OSLoader{}).Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func newApp(out io.Writer, loader Loader) *cli.App {
	app := cli.NewApp()
	app.Name = "Probe"
	app.Usage = "opengl driver probe"
	app.Description = "probe loads an opengl driver library and reports the entry points it exports"
	app.Writer = out
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "toml config file"},
		&cli.IntFlag{Name: "cooldown", Usage: "milliseconds to wait before unload, 0 for the default, negative disables"},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "load",
			Action: func(ctx *cli.Context) error { return load(ctx, loader) },
			Usage:  "initialize then shutdown the binding, the argument overrides the configured library",
			Args:   true,
		},
		{
			Name:   "inspect",
			Action: func(ctx *cli.Context) error { return inspect(ctx, loader) },
			Usage:  "display present and missing symbols of a library",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "dump", Usage: "dump the full report"},
			},
			Args: true,
		},
		{
			Name:   "procs",
			Action: procs,
			Usage:  "display the symbol tables",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "core, platform, swap or extension"},
			},
		},
	}
	return app
}

func config(ctx *cli.Context) (c Config, err error) {
	if p := ctx.String("config"); p != "" {
		if c, err = LoadConfig(p); err != nil {
			return
		}
	} else {
		c = DefaultConfig()
	}
	if ctx.Bool("debug") {
		c.Debug = true
	}
	if ctx.IsSet("cooldown") {
		c.CoolDownMsec = ctx.Int("cooldown")
	}
	if ctx.Args().Present() {
		c.Library = ctx.Args().First()
	}
	if c.Debug {
		_, _ = fmt.Fprintf(ctx.App.Writer, "config: %+v\n", c)
	}
	return
}

func binding(ctx *cli.Context, loader Loader) (b *Binding, c Config, err error) {
	if c, err = config(ctx); err != nil {
		return
	}
	b = c.NewBinding(loader, log.New(ctx.App.Writer, "", 0))
	return
}

func load(ctx *cli.Context, loader Loader) (err error) {
	b, c, err := binding(ctx, loader)
	if err != nil {
		return
	}
	err = b.Initialize(c.Library)
	if err == nil {
		for _, g := range Groups() {
			_, _ = fmt.Fprintf(ctx.App.Writer, "%s: %d bound\n", g, len(b.Slots().Bound(g)))
		}
	}
	if e := b.Shutdown(); err == nil {
		err = e
	}
	return
}

func inspect(ctx *cli.Context, loader Loader) (err error) {
	b, c, err := binding(ctx, loader)
	if err != nil {
		return
	}
	var r *Report
	if r, err = b.Inspect(c.Library); err != nil {
		return
	}
	if ctx.Bool("dump") {
		r.Dump(ctx.App.Writer)
		return
	}
	_, err = io.WriteString(ctx.App.Writer, r.String())
	return
}

func procs(ctx *cli.Context) (err error) {
	want := strings.ToLower(ctx.String("group"))
	found := false
	for _, g := range Groups() {
		if want != "" && want != g.String() {
			continue
		}
		found = true
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s:\n", g)
		for _, name := range Procs(g) {
			_, _ = fmt.Fprintf(ctx.App.Writer, "\t%s\n", name)
		}
	}
	if !found {
		return fmt.Errorf("unknown group %q", want)
	}
	return
}
