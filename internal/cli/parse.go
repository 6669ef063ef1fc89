package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/log"
)

const maxLineSize = 1024 * 1024

func newParseCmd(uc voice.UseCase, l log.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [transcript...]",
		Short: "Parse transcripts into task drafts",
		Long: `Parse joins its arguments into a single transcript and prints the draft as JSON.
With no arguments each line of standard input is parsed as its own transcript
and one JSON draft is printed per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			now, err := opts.referenceTime()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())

			if len(args) > 0 {
				out := uc.Parse(ctx, voice.ParseInput{Transcript: strings.Join(args, " "), Now: now})
				return enc.Encode(newParseResp(out))
			}

			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read transcripts: %w", err)
			}
			l.Debugf(ctx, "cli.parse: read %d lines from stdin", len(lines))

			out, err := uc.ParseBatch(ctx, voice.ParseBatchInput{Transcripts: lines, Now: now})
			if err != nil {
				return err
			}

			for _, r := range out.Results {
				if err := enc.Encode(newParseResp(r)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
