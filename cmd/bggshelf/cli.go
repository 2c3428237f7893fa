package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/bggshelf/internal/app/shelf"
	"github.com/preston-bernstein/bggshelf/internal/bootstrap"
	"github.com/preston-bernstein/bggshelf/internal/config"
	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/logging"
	"github.com/preston-bernstein/bggshelf/internal/render"
)

const serviceName = "bggshelf"

// errReported marks failures whose message was already shown to the user.
var errReported = errors.New("reported")

// console carries the streams a command reads from and writes to.
type console struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	opts   render.Options
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli.App {
	con := &console{in: in, out: out, errOut: errOut, opts: render.Detect(out)}

	return &cli.App{
		Name:      serviceName,
		Usage:     "browse a BoardGameGeek collection from the terminal",
		Version:   appVersion,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "provider", Usage: "data source: bgg or fixture (overrides BGG_PROVIDER)"},
			&cli.StringFlag{Name: "env-file", Value: config.DefaultEnvFile, Usage: "dotenv file to read before the environment"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides LOG_LEVEL)"},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print a user's owned games once",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Required: true, Usage: "BGG username"},
					&cli.StringFlag{Name: "sort", Aliases: []string{"s"}, Value: string(collection.SortGameName), Usage: "column: " + sortKeyList()},
					&cli.StringFlag{Name: "order", Usage: "asc or desc; empty uses the column default"},
					&cli.StringFlag{Name: "open", Usage: "game name to expand with details"},
				},
				Action: con.list,
			},
			{
				Name:  "browse",
				Usage: "interactive session: search, sort and open games",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Usage: "BGG username to load first"},
				},
				Action: con.browse,
			},
		},
	}
}

// start loads configuration, applies global flag overrides and wires the app.
func (con *console) start(c *cli.Context) (*bootstrap.App, *slog.Logger, error) {
	cfg, err := config.LoadFrom(c.String("env-file"))
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if p := c.String("provider"); p != "" {
		cfg.Provider = p
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
		Output:  con.errOut,
	})
	return bootstrap.New(c.Context, cfg, logger), logger, nil
}

func (con *console) list(c *cli.Context) (err error) {
	app, _, err := con.start(c)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(context.WithoutCancel(c.Context)); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	svc := app.Shelf
	if _, err := svc.Search(c.Context, c.String("user")); err != nil {
		return con.report(err)
	}
	if err := applySort(svc, c.String("sort"), c.String("order")); err != nil {
		return err
	}
	if name := c.String("open"); name != "" {
		if err := svc.ClickItem(name); err != nil {
			return err
		}
	}
	return con.show(c.Context, svc)
}

// show renders the table and, when a row is expanded, its detail panel.
func (con *console) show(ctx context.Context, svc *shelf.Service) error {
	if err := render.Table(con.out, svc.Rows(), svc.State(), con.opts); err != nil {
		return err
	}
	d, ok, err := svc.Detail(ctx)
	if !ok {
		return nil
	}
	fmt.Fprintf(con.out, "\n%s\n", svc.State().Expanded)
	if err != nil {
		return con.report(err)
	}
	return render.Detail(con.out, d, con.opts)
}

// report prints the user-facing message for err and marks it as shown.
func (con *console) report(err error) error {
	fmt.Fprintln(con.out, render.ErrorMessage(err))
	return errReported
}

// applySort selects key and then sets the direction. An empty order keeps the
// column default.
func applySort(svc *shelf.Service, rawKey, order string) error {
	key, err := collection.ParseSortKey(rawKey)
	if err != nil {
		return fmt.Errorf("%w %q (want one of %s)", err, rawKey, sortKeyList())
	}
	if svc.State().SortKey != key {
		if err := svc.ClickSort(key); err != nil {
			return err
		}
	}

	var wantAscending bool
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "":
		wantAscending = key.DefaultAscending()
	case "asc":
		wantAscending = true
	case "desc":
		wantAscending = false
	default:
		return fmt.Errorf("unknown order %q (want asc or desc)", order)
	}
	if svc.State().SortAscending != wantAscending {
		return svc.ClickSort(key)
	}
	return nil
}

func sortKeyList() string {
	keys := make([]string, len(collection.SortKeys))
	for i, k := range collection.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}
