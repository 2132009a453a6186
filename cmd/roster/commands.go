package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/roster/arr"
	"github.com/hasbyte1/roster/collections"
	"github.com/hasbyte1/roster/dataset"
	"github.com/hasbyte1/roster/query"
)

func (a *app) withinCmd() *cobra.Command {
	var (
		field    string
		from, to float64
	)
	cmd := &cobra.Command{
		Use:       "within <employees|projects>",
		Short:     "List records whose numeric field lies in [from, to]",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"employees", "projects"},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := query.Range{From: from, To: to}
			out := cmd.OutOrStdout()
			if args[0] == "projects" {
				for _, p := range query.Within(a.ds.Projects(), field, r) {
					fmt.Fprintf(out, "%s\t%s\t%s\n", p.ID, p.Name, money(p.Budget))
				}
				return nil
			}
			printEmployees(out, query.Within(a.ds.Employees(), field, r))
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "salary", "numeric field: salary or id for employees, budget for projects")
	cmd.Flags().Float64Var(&from, "from", 0, "lower bound, inclusive")
	cmd.Flags().Float64Var(&to, "to", 0, "upper bound, inclusive")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) skillsCmd() *cobra.Command {
	var withManager bool
	cmd := &cobra.Command{
		Use:   "skills <project-id>",
		Short: "List the distinct skills of a project team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skills, err := a.engine.ProjectUniqueSkills(args[0], withManager)
			if err != nil {
				return err
			}
			for _, s := range skills {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withManager, "with-manager", false, "include the project manager")
	return cmd
}

func (a *app) averageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "average <skill>",
		Short: "Average salary of the employees who know a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			avg, err := a.engine.AverageSalaryBySkill(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), money(avg))
			return nil
		},
	}
}

func (a *app) topSkillsCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top-skills",
		Short: "The most known skills, most known first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("count") {
				n = a.cfg.Query.TopSkills
			}
			for _, s := range a.engine.MostKnownSkills(n) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", s.Skill, s.Count)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 3, "number of skills; defaults to query.top_skills")
	return cmd
}

func (a *app) officesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "offices",
		Short: "Office countries by descending headcount",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, o := range a.engine.OfficesByHeadcount() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", o.Country, o.Headcount)
			}
			return nil
		},
	}
}

func (a *app) knowsCmd() *cobra.Command {
	var withManager bool
	cmd := &cobra.Command{
		Use:   "knows <project-id> <skill>",
		Short: "Report whether anyone on a project team knows a skill",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.engine.SomeoneKnowsSkill(query.TeamSkillQuery{
				ProjectID:        args[0],
				Skill:            args[1],
				IncludingManager: withManager,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return nil
		},
	}
	cmd.Flags().BoolVar(&withManager, "with-manager", false, "include the project manager")
	return cmd
}

func (a *app) employeesCmd() *cobra.Command {
	var (
		nationality, domain, column string
		reverse                     bool
	)
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees, optionally filtered, one column per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			employees := a.engine.ByNationality(nationality)
			if domain != "" {
				employees = intersect(employees, a.engine.ByEmailDomain(domain))
			}
			if reverse {
				employees = collections.From(employees).Reverse().All()
			}
			values, err := query.Select[dataset.Employee, string](employees, column)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&nationality, "nationality", query.AnyNationality, "only this nationality")
	cmd.Flags().StringVar(&domain, "domain", "", "only this email domain")
	cmd.Flags().StringVar(&column, "column", "FullName", "string method printed per employee, e.g. EmailDomain")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "list in reverse dataset order")
	return cmd
}

func (a *app) bonusCmd() *cobra.Command {
	var rule query.BonusRule
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Total bonus for employees earning under a ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), money(a.engine.TotalBonus(rule)))
			return nil
		},
	}
	cmd.Flags().StringVar(&rule.Nationality, "nationality", query.AnyNationality, "only this nationality")
	cmd.Flags().Float64Var(&rule.SalaryBelow, "below", 5000, "salary ceiling, exclusive")
	cmd.Flags().Float64Var(&rule.Rate, "rate", 0.2, "bonus as a fraction of salary")
	return cmd
}

func (a *app) richestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "richest <nationality>",
		Short: "Phone number of the best-paid employee of a nationality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.engine.RichestPhone(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phone)
			return nil
		},
	}
}

func (a *app) extremesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extremes <nationality>",
		Short: "Highest and lowest paid employee of a nationality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			highest, err := a.engine.HighestPaid(args[0])
			if err != nil {
				return err
			}
			lowest, err := a.engine.LowestPaid(args[0])
			if err != nil {
				return err
			}
			printEmployees(cmd.OutOrStdout(), []dataset.Employee{highest, lowest})
			return nil
		},
	}
}

func (a *app) flattenCmd() *cobra.Command {
	var (
		depth int
		deep  bool
	)
	cmd := &cobra.Command{
		Use:   "flatten <json-array>",
		Short: "Flatten nested JSON arrays by a number of levels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []any
			if err := json.Unmarshal([]byte(args[0]), &items); err != nil {
				return fmt.Errorf("flatten: decode input: %w", err)
			}
			nested := collections.From(items)
			if deep {
				fmt.Fprintln(cmd.OutOrStdout(), collections.FlattenDeep(nested))
				return nil
			}
			flat, err := collections.FlattenDepth(nested, depth)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), flat)
			return nil
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "levels of nesting to remove")
	cmd.Flags().BoolVar(&deep, "deep", false, "remove every level of nesting")
	return cmd
}

func (a *app) fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "BLAKE2b-256 digest of the loaded dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sum, err := a.ds.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

func printEmployees(w io.Writer, employees []dataset.Employee) {
	for _, e := range employees {
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.ID, e.FullName(), money(e.Salary))
	}
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// intersect keeps the employees of a that also appear in b, in a's order.
func intersect(a, b []dataset.Employee) []dataset.Employee {
	inB := collections.KeyBy(collections.From(b), func(e dataset.Employee) int { return e.ID })
	return arr.Filter(a, func(e dataset.Employee, _ int) bool {
		_, ok := inB[e.ID]
		return ok
	})
}
