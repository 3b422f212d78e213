package main

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	"github.com/and161185/fishlog/internal/app"
	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/forms"
)

func parseID(field, s string) (uuid.UUID, error) {
	id, err := uuid.FromString(s)
	if err != nil {
		return uuid.Nil, errs.Invalid(field, "must be a uuid")
	}
	return id, nil
}

func (c *cli) diaryCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "diary", Short: "Fishing trips"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd, func(_ context.Context, a *app.App) error {
				return c.printJSON(a.Diary.Entries())
			})
		},
	}

	var limit int
	recent := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				if !cmd.Flags().Changed("limit") {
					return c.printJSON(a.Diary.Recent())
				}
				rows, err := a.DiaryGateway.ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				return c.printJSON(rows)
			})
		},
	}
	recent.Flags().IntVarP(&limit, "limit", "n", 3, "number of entries to fetch from the backend")

	var title, location, fishCount, date string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := forms.ParseDiary(title, location, fishCount, date)
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				e, err := a.Diary.Create(ctx, in)
				if err != nil {
					return err
				}
				return c.printJSON(e)
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "trip title")
	add.Flags().StringVar(&location, "location", "", "where you fished")
	add.Flags().StringVar(&fishCount, "fish-count", "", "number of fish caught")
	add.Flags().StringVar(&date, "date", "", "trip date (YYYY-MM-DD, defaults to now)")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Diary.Delete(ctx, id); err != nil {
					return err
				}
				return c.printJSON(map[string]string{"deleted": id.String()})
			})
		},
	}

	cmd.AddCommand(list, recent, add, rm)
	return cmd
}

func (c *cli) catchCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catch", Short: "Fish caught on a trip"}

	var diary string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catches of one entry, or all catches grouped by entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var diaryID uuid.UUID
			if diary != "" {
				id, err := parseID("diary", diary)
				if err != nil {
					return err
				}
				diaryID = id
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				if diaryID == uuid.Nil {
					if err := a.Catches.Refresh(ctx); err != nil {
						return err
					}
					return c.printJSON(a.Catches.Index())
				}
				if err := a.Catches.LoadByDiary(ctx, diaryID); err != nil {
					return err
				}
				rows, _ := a.Catches.ByDiary(diaryID)
				return c.printJSON(rows)
			})
		},
	}
	list.Flags().StringVar(&diary, "diary", "", "diary entry id")

	var species, size, weight, bait, notes, photo string
	add := &cobra.Command{
		Use:   "add",
		Short: "Record a catch, uploading its photo first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := forms.ParseCatch(diary, species, size, weight, bait, notes, photo)
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				fc, err := a.Catches.Create(ctx, in)
				if err != nil {
					if errs.IsUpload(err) {
						return fmt.Errorf("photo upload failed, catch not saved: %w", err)
					}
					return err
				}
				return c.printJSON(fc)
			})
		},
	}
	add.Flags().StringVar(&diary, "diary", "", "diary entry id")
	add.Flags().StringVar(&species, "species", "", "species name")
	add.Flags().StringVar(&size, "size", "", "length in cm")
	add.Flags().StringVar(&weight, "weight", "", "weight in kg")
	add.Flags().StringVar(&bait, "bait", "", "bait used")
	add.Flags().StringVar(&notes, "notes", "", "free notes")
	add.Flags().StringVar(&photo, "photo", "", "path to a JPEG photo")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a catch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Catches.Delete(ctx, id); err != nil {
					return err
				}
				return c.printJSON(map[string]string{"deleted": id.String()})
			})
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}

func (c *cli) spotCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "spot", Short: "Saved fishing spots"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved spots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withSession(cmd, func(_ context.Context, a *app.App) error {
				return c.printJSON(a.Spots.Spots())
			})
		},
	}

	var name, lat, lng string
	add := &cobra.Command{
		Use:   "add",
		Short: "Save a spot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := forms.ParseSpot(name, lat, lng)
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				s, err := a.Spots.Create(ctx, in)
				if err != nil {
					return err
				}
				return c.printJSON(s)
			})
		},
	}
	add.Flags().StringVar(&name, "name", "", "spot name")
	add.Flags().StringVar(&lat, "lat", "", "latitude in degrees")
	add.Flags().StringVar(&lng, "lng", "", "longitude in degrees")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			return c.withSession(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Spots.Delete(ctx, id); err != nil {
					return err
				}
				return c.printJSON(map[string]string{"deleted": id.String()})
			})
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}
