package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/bggshelf/internal/app/shelf"
	"github.com/preston-bernstein/bggshelf/internal/domain/collection"
	"github.com/preston-bernstein/bggshelf/internal/logging"
)

const browseHelp = `commands:
  search <user>   load a user's owned games (resets sort and selection)
  sort <column>   sort by column; again to flip direction
  open <name>     expand or collapse a game and show its details
  show            render the current view again
  help            show this help
  quit            leave`

var errQuit = errors.New("quit")

func (con *console) browse(c *cli.Context) (err error) {
	app, logger, err := con.start(c)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(context.WithoutCancel(c.Context)); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	logging.Debug(logger, "browse session started", slog.String(logging.FieldSessionID, app.Shelf.SessionID()))

	svc := app.Shelf
	if user := c.String("user"); user != "" {
		con.exec(c.Context, svc, "search "+user)
	} else {
		fmt.Fprintln(con.out, browseHelp)
	}

	scanner := bufio.NewScanner(con.in)
	for {
		fmt.Fprint(con.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(con.out)
			return scanner.Err()
		}
		if errors.Is(con.exec(c.Context, svc, scanner.Text()), errQuit) {
			return nil
		}
		if c.Context.Err() != nil {
			return nil
		}
	}
}

// exec runs one REPL line. Failures are shown inline and the session goes on.
func (con *console) exec(ctx context.Context, svc *shelf.Service, line string) error {
	cmd, arg := splitCommand(line)
	switch cmd {
	case "":
		return nil
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprintln(con.out, browseHelp)
		return nil
	case "search":
		if _, err := svc.Search(ctx, arg); err != nil {
			if errors.Is(err, shelf.ErrEmptyUsername) {
				fmt.Fprintln(con.out, "usage: search <user>")
				return nil
			}
			con.report(err)
			return nil
		}
		fmt.Fprintf(con.out, "%s owns %d games\n", svc.Owner(), len(svc.Rows()))
	case "sort":
		if err := svc.ClickSort(collection.SortKey(arg)); err != nil {
			fmt.Fprintf(con.out, "unknown column %q; choose one of %s\n", arg, sortKeyList())
			return nil
		}
	case "open":
		if err := svc.ClickItem(arg); err != nil {
			fmt.Fprintf(con.out, "no game named %q in this collection\n", arg)
			return nil
		}
	case "show":
	default:
		fmt.Fprintf(con.out, "unknown command %q; type help\n", cmd)
		return nil
	}

	if err := con.show(ctx, svc); err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(con.out, err)
	}
	return nil
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}
