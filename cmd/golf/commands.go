package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Black-And-White-Club/golf-tracker/app"
	leaderboarddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/leaderboard/domain"
	roundservice "github.com/Black-And-White-Club/golf-tracker/app/modules/round/application"
	"github.com/urfave/cli/v2"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write players and rounds as one JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
		},
		Action: func(c *cli.Context) error {
			return withApp(c, func(_ context.Context, a *app.App) error {
				data, err := a.Store.ExportJSON()
				if err != nil {
					return err
				}
				if out := c.String("out"); out != "" {
					return os.WriteFile(out, data, 0o644)
				}
				_, err = c.App.Writer.Write(append(data, '\n'))
				return err
			})
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "replace players and/or rounds from an export document",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("import needs exactly one FILE argument", 2)
			}
			raw, err := os.ReadFile(c.Args().First())
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, a *app.App) error {
				summary, err := a.Store.Import(ctx, raw)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.App.Writer, "Imported: %d players (replaced: %t), %d rounds (replaced: %t)\n",
					summary.Players, summary.PlayersReplaced, summary.Rounds, summary.RoundsReplaced)
				return nil
			})
		},
	}
}

func leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "print a course leaderboard",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "course", Required: true},
			&cli.StringFlag{Name: "holes", Value: "18", Usage: "9 or 18"},
			&cli.StringFlag{Name: "sort", Value: "gross", Usage: "gross or net"},
		},
		Action: func(c *cli.Context) error {
			bucket, err := leaderboarddomain.ParseBucket(c.String("holes"))
			if err != nil {
				return err
			}
			scoreType, err := leaderboarddomain.ParseScoreType(c.String("sort"))
			if err != nil {
				return err
			}
			return withApp(c, func(ctx context.Context, a *app.App) error {
				board, err := a.LeaderboardService.CourseLeaderboard(ctx, c.String("course"), bucket, scoreType)
				if err != nil {
					return err
				}
				return printLeaderboard(c.App.Writer, board)
			})
		},
	}
}

func printLeaderboard(w io.Writer, board leaderboarddomain.Leaderboard) error {
	if board.Empty {
		_, err := fmt.Fprintf(w, "No rounds on %s yet\n", board.Course)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tPlayer\tBest %d gross\tBest %d net\tRounds\n", board.Bucket, board.Bucket)
	for i, s := range board.Standings {
		gross := s.Score(board.Bucket, leaderboarddomain.Gross)
		net := s.Score(board.Bucket, leaderboarddomain.Net)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", i+1, s.Player, gross, net, s.RoundsPlayed)
	}
	return tw.Flush()
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list rounds, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "player"},
			&cli.StringFlag{Name: "course"},
			&cli.IntFlag{Name: "holes", Usage: "only rounds with this many holes"},
			&cli.StringFlag{Name: "since", Usage: `e.g. "2026-05-01" or "2 weeks ago"`},
		},
		Action: func(c *cli.Context) error {
			q := roundservice.HistoryQuery{
				Player:    c.String("player"),
				Course:    c.String("course"),
				HoleCount: c.Int("holes"),
				Since:     c.String("since"),
			}
			return withApp(c, func(ctx context.Context, a *app.App) error {
				entries, err := a.RoundService.History(ctx, q)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tDate\tCourse\tHoles\tPar\tTotals")
				for _, e := range entries {
					r := e.Round
					fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n",
						r.ID, r.Timestamp.Local().Format("2006-01-02 15:04"), r.CourseName, r.HoleCount, e.Par, e.Totals)
				}
				return tw.Flush()
			})
		},
	}
}

func playersCommand() *cli.Command {
	return &cli.Command{
		Name:  "players",
		Usage: "list the roster with effective handicap indexes",
		Action: func(c *cli.Context) error {
			return withApp(c, func(ctx context.Context, a *app.App) error {
				players, err := a.PlayerService.ListPlayers(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "Player\tIndex\tEffective\tRounds")
				for _, p := range players {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Name, p.HandicapIndex, p.EffectiveIndex, p.RoundsPlayed)
				}
				return tw.Flush()
			})
		},
	}
}
