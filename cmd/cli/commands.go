package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

func newSearchCmd(flags *globalFlags) *cobra.Command {
	var page, perPage int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by name, alias, artist or difficulty",
		Args:  cobra.MaximumNArgs(1),
		RunE: withService(flags, func(cmd *cobra.Command, args []string, svc songqueue.Service) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			res := svc.Search(query, page, perPage)
			out := cmd.OutOrStdout()
			if len(res.Songs) == 0 {
				fmt.Fprintf(out, "No songs found (%s total matches)\n", humanize.Comma(int64(res.TotalCount)))
				return nil
			}

			renderSongs(out, res.Songs)
			fmt.Fprintf(out, "Page %d of %d, %s songs\n", res.Page, res.TotalPages, humanize.Comma(int64(res.TotalCount)))
			return nil
		}),
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "page number (default 1)")
	cmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "songs per page (default from config)")
	return cmd
}

func newQueueCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and edit the request queue",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List queued songs in play order",
		Args:  cobra.NoArgs,
		RunE: withService(flags, func(cmd *cobra.Command, _ []string, svc songqueue.Service) error {
			entries := svc.Snapshot()
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Queue is empty")
				return nil
			}
			renderQueue(out, entries)
			return nil
		}),
	}

	add := &cobra.Command{
		Use:   "add <song-id>",
		Short: "Request a song by catalog id",
		Args:  cobra.ExactArgs(1),
		RunE: withService(flags, func(cmd *cobra.Command, args []string, svc songqueue.Service) error {
			if err := svc.Enqueue(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s, queue length %d\n", args[0], svc.Stats().QueueLength)
			return nil
		}),
	}

	remove := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the queued song at index",
		Args:  cobra.ExactArgs(1),
		RunE: withService(flags, func(cmd *cobra.Command, args []string, svc songqueue.Service) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err := svc.Dequeue(index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed position %d\n", index)
			return nil
		}),
	}

	move := &cobra.Command{
		Use:   "move <index> <up|down>",
		Short: "Swap a queued song with its neighbour",
		Args:  cobra.ExactArgs(2),
		RunE: withService(flags, func(cmd *cobra.Command, args []string, svc songqueue.Service) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			dir, err := songqueue.ParseDirection(args[1])
			if err != nil {
				return err
			}
			if err := svc.Move(index, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved position %d %s\n", index, dir)
			return nil
		}),
	}

	cmd.AddCommand(list, add, remove, move)
	return cmd
}

func newCurrentCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the song at the head of the queue",
		Args:  cobra.NoArgs,
		RunE: withService(flags, func(cmd *cobra.Command, _ []string, svc songqueue.Service) error {
			cur, err := svc.Current()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No song in queue.")
				return nil
			}
			renderQueue(cmd.OutOrStdout(), []models.QueueEntry{cur.WithFallbacks()})
			return nil
		}),
	}
}

func newCatalogCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog information",
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog and queue counts",
		Args:  cobra.NoArgs,
		RunE: withService(flags, func(cmd *cobra.Command, _ []string, svc songqueue.Service) error {
			st := svc.Stats()

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendRows([]table.Row{
				{"Songs", humanize.Comma(int64(st.SongCount))},
				{"Aliases", humanize.Comma(int64(st.AliasCount))},
				{"Queued", humanize.Comma(int64(st.QueueLength))},
				{"Backend", st.QueueBackend},
			})
			if st.CatalogError != "" {
				t.AppendRow(table.Row{"Catalog error", st.CatalogError})
			}
			t.Render()
			return nil
		}),
	}

	cmd.AddCommand(stats)
	return cmd
}

func renderSongs(out io.Writer, songs []models.Song) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Artist", "Type", "Difficulty"})
	for _, s := range songs {
		t.AppendRow(table.Row{s.ID, s.Name, s.Artist, s.Type, formatDS(s.DS)})
	}
	t.Render()
}

func renderQueue(out io.Writer, entries []models.QueueEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", "Name", "Artist", "Type", "Difficulty"})
	for i, e := range entries {
		t.AppendRow(table.Row{i, e.ID, e.Name, e.Artist, e.Type, formatDS(e.DS)})
	}
	t.Render()
}

func formatDS(ds []models.Difficulty) string {
	return strings.Join(lo.Map(ds, func(d models.Difficulty, _ int) string { return d.String() }), " / ")
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("index must be an integer: %q", s)
	}
	return index, nil
}
