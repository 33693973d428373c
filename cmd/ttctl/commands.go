package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/timetrack-backend/internal/auth"
	"github.com/heartmarshall/timetrack-backend/internal/config"
	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/elapsed"
	"github.com/heartmarshall/timetrack-backend/pkg/ttclient"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token from AUTH_JWT_* settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.AuthConfig
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return fmt.Errorf("read auth settings: %w", err)
			}
			if ttl > 0 {
				cfg.AccessTokenTTL = ttl
			}

			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			r := domain.UserRole(role)
			if !r.IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}

			tok, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL).GenerateAccessToken(id, r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (subject)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleWorker), "worker, manager or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default AUTH_ACCESS_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newStatusCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			p := c.Active(cmd.Context())
			switch p.State {
			case ttclient.StateNone:
				fmt.Fprintln(cmd.OutOrStdout(), "no active session")
			case ttclient.StateActive:
				printSession(cmd.OutOrStdout(), p.Session, time.Now())
			default:
				return fmt.Errorf("session state unknown: %w", p.Err)
			}
			return nil
		},
	}
}

func newStartCmd(g *globalFlags) *cobra.Command {
	var clientID, projectID, taskID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session on a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			ids, err := parseIDs(map[string]string{"client": clientID, "project": projectID, "task": taskID})
			if err != nil {
				return err
			}

			e, err := c.Start(cmd.Context(), ids["client"], ids["project"], ids["task"])
			var apiErr *ttclient.APIError
			if errors.As(err, &apiErr) && apiErr.ActiveSession != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "a session is already running:")
				printSession(cmd.ErrOrStderr(), apiErr.ActiveSession, time.Now())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "started %s at %s\n", e.ID, e.StartTime.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "client id")
	cmd.Flags().StringVar(&projectID, "project", "", "project id")
	cmd.Flags().StringVar(&taskID, "task", "", "task id")
	return cmd
}

func newStopCmd(g *globalFlags) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			e, err := c.Stop(cmd.Context(), note)
			if err != nil {
				return err
			}
			var hours float64
			if e.DurationHours != nil {
				hours = *e.DurationHours
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stopped %s: %.2f h\n", e.ID, hours)
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note to attach")
	return cmd
}

func newCancelCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Discard the running session without recording it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			if err := c.Cancel(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "session cancelled")
			return nil
		},
	}
}

func newWatchCmd(g *globalFlags) *cobra.Command {
	var (
		interval time.Duration
		remind   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the running session and print elapsed time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			w := ttclient.NewWatcher(c, nil, remind)
			err = w.Run(ctx, interval, func(u ttclient.Update) {
				switch {
				case u.Session == nil && u.State == ttclient.StateUnknown:
					fmt.Fprintf(out, "unknown (%v)\n", u.Err)
				case u.Session == nil:
					fmt.Fprintln(out, "no active session")
				default:
					suffix := ""
					if u.State == ttclient.StateUnknown {
						suffix = " (stale)"
					}
					fmt.Fprintf(out, "%s  %s%s\n", elapsed.Format(u.Elapsed), u.Session.ID, suffix)
				}
				if u.Remind {
					fmt.Fprintf(out, "reminder: session running for over %s\n", remind)
				}
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "poll interval")
	cmd.Flags().DurationVar(&remind, "remind-after", elapsed.DefaultThreshold, "reminder threshold")
	return cmd
}

func newReportCmd(g *globalFlags) *cobra.Command {
	var (
		month    string
		userID   string
		clientID string
		asCSV    bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a monthly report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := g.client()
			if err != nil {
				return err
			}
			q := ttclient.ReportQuery{Month: month}
			if userID != "" {
				if q.UserID, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("--user: %w", err)
				}
			}
			if clientID != "" {
				if q.ClientID, err = uuid.Parse(clientID); err != nil {
					return fmt.Errorf("--client: %w", err)
				}
			}

			if asCSV {
				return c.ReportCSV(cmd.Context(), q, cmd.OutOrStdout())
			}

			r, err := c.Report(cmd.Context(), q)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "YYYY-MM (default current month)")
	cmd.Flags().StringVar(&userID, "user", "", "filter by user id")
	cmd.Flags().StringVar(&clientID, "client", "", "filter by client id")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print the CSV export")
	return cmd
}

func parseIDs(raw map[string]string) (map[string]uuid.UUID, error) {
	out := make(map[string]uuid.UUID, len(raw))
	for name, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		out[name] = id
	}
	return out, nil
}

func printSession(w io.Writer, e *ttclient.Entry, now time.Time) {
	fmt.Fprintf(w, "session %s\n  task    %s\n  started %s\n  elapsed %s\n",
		e.ID, e.TaskID, e.StartTime.Format(time.RFC3339), elapsed.Format(elapsed.Since(e.StartTime, now)))
}

func printReport(w io.Writer, r *ttclient.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Month\t%s\n", r.Month)
	fmt.Fprintf(tw, "Total\t%.2f h\t%d entries\n", r.TotalHours, r.TotalEntries)
	printGroups(tw, "By client", r.ByClient)
	printGroups(tw, "By user", r.ByUser)
	tw.Flush() //nolint:errcheck
}

// printGroups lists groups by descending hours.
func printGroups(w io.Writer, title string, groups map[string]ttclient.Group) {
	list := make([]ttclient.Group, 0, len(groups))
	for _, g := range groups {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Hours != list[j].Hours {
			return list[i].Hours > list[j].Hours
		}
		return list[i].Name < list[j].Name
	})

	fmt.Fprintf(w, "\n%s\t\t\n", title)
	for _, g := range list {
		fmt.Fprintf(w, "  %s\t%.2f h\t%d\n", g.Name, g.Hours, g.Entries)
	}
}
