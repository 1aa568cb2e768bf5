package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jackburrus/speakhuman/pkg/filesize"
	"github.com/jackburrus/speakhuman/pkg/humantime"
	"github.com/jackburrus/speakhuman/pkg/number"
)

func parseSeconds(arg string) (humantime.TimeDelta, error) {
	secs, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return humantime.TimeDelta{}, fmt.Errorf("invalid seconds value %q", arg)
	}
	return humantime.FromSeconds(secs), nil
}

func newDeltaCmd() *cobra.Command {
	var (
		months  bool
		minUnit string
	)
	cmd := &cobra.Command{
		Use:   "delta <seconds>",
		Short: "Describe a duration coarsely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			if minUnit == "" {
				minUnit = cfg.MinimumUnit
			}
			f := humantime.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.NaturalDelta(d, months, minUnit))
			return nil
		},
	}
	cmd.Flags().BoolVar(&months, "months", true, "approximate long day spans as months")
	cmd.Flags().StringVar(&minUnit, "min-unit", "", "minimum unit to report (seconds, milliseconds, microseconds)")
	return cmd
}

func newTimeCmd() *cobra.Command {
	var (
		future  bool
		months  bool
		minUnit string
	)
	cmd := &cobra.Command{
		Use:   "time <seconds>",
		Short: "Describe a duration with tense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			if minUnit == "" {
				minUnit = cfg.MinimumUnit
			}
			f := humantime.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.NaturalTime(d, future, months, minUnit))
			return nil
		},
	}
	cmd.Flags().BoolVar(&future, "future", false, "phrase as \"from now\" instead of \"ago\"")
	cmd.Flags().BoolVar(&months, "months", true, "approximate long day spans as months")
	cmd.Flags().StringVar(&minUnit, "min-unit", "", "minimum unit to report")
	return cmd
}

func newPreciseCmd() *cobra.Command {
	var (
		minUnit  string
		suppress []string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "precise <seconds>",
		Short: "Describe a duration precisely across units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseSeconds(args[0])
			if err != nil {
				return err
			}
			if minUnit == "" {
				minUnit = cfg.MinimumUnit
			}
			if format == "" {
				format = cfg.Format
			}
			if len(suppress) == 0 {
				suppress = cfg.Suppress
			}
			f := humantime.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.PreciseDelta(d, minUnit, suppress, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&minUnit, "min-unit", "", "minimum unit to display")
	cmd.Flags().StringSliceVar(&suppress, "suppress", nil, "units to exclude from the output")
	cmd.Flags().StringVar(&format, "format", "", "precision directive for the minimum unit (e.g. %0.2f)")
	return cmd
}

func newSizeCmd() *cobra.Command {
	var (
		binary bool
		gnu    bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "size <bytes>",
		Short: "Describe a byte count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bytes, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid byte count %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), filesize.NaturalSize(bytes, binary, gnu, format))
			return nil
		},
	}
	cmd.Flags().BoolVar(&binary, "binary", false, "use IEC binary suffixes (KiB, MiB)")
	cmd.Flags().BoolVar(&gnu, "gnu", false, "use GNU ls style suffixes (K, M)")
	cmd.Flags().StringVar(&format, "format", "%.1f", "precision directive for the scaled value")
	return cmd
}

func newOrdinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <integer>",
		Short: "Format an integer as an ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q", args[0])
			}
			f := number.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.Ordinal(n))
			return nil
		},
	}
}

func newCommaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comma <integer>",
		Short: "Group an integer's digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q", args[0])
			}
			f := number.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.Intcomma(n))
			return nil
		},
	}
}

func newIntwordCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "intword <number>",
		Short: "Describe a large number in words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			f := number.NewFormatter(provider())
			fmt.Fprintln(cmd.OutOrStdout(), f.Intword(v, format))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "%.1f", "precision directive for the leading number")
	return cmd
}
