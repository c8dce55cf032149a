package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/quantity"
)

func newBatchCommand(a *app) *cobra.Command {
	f := &formatFlags{}
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Render quantities read as JSON lines",
		Long: `Render one quantity per input line. Each line is a JSON object such as

  {"amount":"+24","unit":"1","upperBound":"+24.01","lowerBound":"+23.99"}

Blank lines are skipped. Without FILE, or with "-", lines are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer func() { _ = file.Close() }()
				in = file
			}
			return a.runBatch(cmd, f, in)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, f *formatFlags, in io.Reader) error {
	fmtr, err := a.formatter(cmd, f)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer func() { _ = out.Flush() }()

	scanner := bufio.NewScanner(in)
	line, count := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var q quantity.Quantity
		if err := json.Unmarshal([]byte(text), &q); err != nil {
			a.log.Error("invalid quantity", zap.Int("line", line), zap.Error(err))
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := fmt.Fprintln(out, fmtr.Format(q)); err != nil {
			return err
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	a.log.Debug("batch done", zap.Int("lines", line), zap.Int("quantities", count))
	return out.Flush()
}
