package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"runnerspro/internal/stats"
	"runnerspro/internal/training"
)

type planOptions struct {
	date   string
	seed   uint64
	asJSON bool
}

func (o *planOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.date, "date", "", "any date in the target week (YYYY-MM-DD, default today)")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "seed for reproducible nutrition figures (0 = random)")
	cmd.Flags().BoolVar(&o.asJSON, "json", false, "print JSON instead of a table")
}

func (o *planOptions) generate() (training.Plan, error) {
	now := time.Now()
	anchor := now
	if o.date != "" {
		d, err := training.ParseDate(o.date)
		if err != nil {
			return training.Plan{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", o.date)
		}
		anchor = d
	}
	var opts []training.Option
	if o.seed != 0 {
		opts = append(opts, training.WithSeed(o.seed))
	}
	return training.NewGenerator(opts...).GenerateWeek(anchor, now), nil
}

func newPlanCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a generated weekly plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.generate()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			fmt.Fprintf(out, "Week %s to %s\n", plan.StartDate, plan.EndDate)
			fmt.Fprintf(out, "Focus: %s\n\n", plan.WeekFocus)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tDATE\tACTIVITY\tDISTANCE\tDURATION\tPACE\tCALORIES")
			for _, day := range training.Days(&plan) {
				n := stats.DailyNutrition(day.Meals, day.Date)
				for _, a := range day.Activities {
					var m training.Metrics
					if a.Metrics != nil {
						m = *a.Metrics
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						day.Weekday, day.Date, a.Title,
						orDash(m.Distance, " km"), orDash(m.Duration, " min"), orDash(m.Pace, "/km"),
						humanize.Comma(int64(n.Calories)),
					)
				}
			}
			return w.Flush()
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func newWeekCmd() *cobra.Command {
	opts := &planOptions{}
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print weekly distance and duration totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.generate()
			if err != nil {
				return err
			}
			totals := stats.ComputeWeeklyTotals(plan.Activities)
			out := cmd.OutOrStdout()
			if opts.asJSON {
				return json.NewEncoder(out).Encode(totals)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tDISTANCE\tDURATION")
			for _, d := range training.Weekdays() {
				fmt.Fprintf(w, "%s\t%s km\t%d min\n", d.Short(),
					humanize.FtoaWithDigits(totals.DistanceByDay[d], 1), totals.DurationByDay[d])
			}
			fmt.Fprintf(w, "Total\t%s km\t%d min\n",
				humanize.FtoaWithDigits(totals.TotalDistance(), 1), totals.TotalDuration())
			return w.Flush()
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func orDash(v, unit string) string {
	if v == "" {
		return "-"
	}
	return v + unit
}
