package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/jackburrus/speakhuman/pkg/filesize"
	"github.com/jackburrus/speakhuman/pkg/humantime"
	"github.com/jackburrus/speakhuman/pkg/number"
)

const replHelp = `Commands:
  delta <seconds>        Coarse duration phrase
  time <seconds>         Tensed duration phrase (prefix negative for past)
  precise <seconds>      Precise duration phrase
  size <bytes>           Byte size
  ordinal <integer>      Ordinal number
  comma <integer>        Grouped digits
  intword <number>       Large number in words
  help                   Show this help
  exit                   Leave the session
`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          "speakhuman> ",
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
			})
			if err != nil {
				return fmt.Errorf("failed to create readline: %w", err)
			}
			defer rl.Close()

			runRepl(rl)
			return nil
		},
	}
}

// runRepl reads commands until EOF or "exit".
func runRepl(rl *readline.Instance) {
	out := rl.Stdout()
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return
		case "help":
			fmt.Fprint(out, replHelp)
		default:
			fmt.Fprintln(out, evalRepl(fields))
		}
	}
}

// evalRepl evaluates one command line and returns the text to display.
func evalRepl(fields []string) string {
	if len(fields) < 2 {
		return fmt.Sprintf("%s: missing value (try \"help\")", fields[0])
	}

	cmd, arg := fields[0], fields[1]
	ht := humantime.NewFormatter(provider())
	num := number.NewFormatter(provider())

	switch cmd {
	case "delta", "time", "precise":
		secs, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Sprintf("invalid seconds value %q", arg)
		}
		d := humantime.FromSeconds(secs)
		switch cmd {
		case "delta":
			return ht.NaturalDelta(d, true, cfg.MinimumUnit)
		case "time":
			return ht.NaturalTime(d, secs >= 0, true, cfg.MinimumUnit)
		default:
			return ht.PreciseDelta(d, cfg.MinimumUnit, cfg.Suppress, cfg.Format)
		}

	case "size":
		bytes, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Sprintf("invalid byte count %q", arg)
		}
		return filesize.NaturalSize(bytes, false, false, "%.1f")

	case "ordinal", "comma":
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Sprintf("invalid integer %q", arg)
		}
		if cmd == "ordinal" {
			return num.Ordinal(n)
		}
		return num.Intcomma(n)

	case "intword":
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Sprintf("invalid number %q", arg)
		}
		return num.Intword(v, "%.1f")

	default:
		return fmt.Sprintf("unknown command %q (try \"help\")", cmd)
	}
}
