package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-parser/internal/model"
	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/log"
)

type reviewFlags struct {
	title    string
	status   string
	priority string
	due      string
}

// toEdits turns the flags the user actually passed into review edits.
func (f reviewFlags) toEdits(cmd *cobra.Command) voice.Edits {
	var e voice.Edits
	flags := cmd.Flags()

	if flags.Changed("title") {
		e.Title = &f.title
	}
	if flags.Changed("status") {
		s := model.Status(f.status)
		e.Status = &s
	}
	if flags.Changed("priority") {
		p := model.Priority(f.priority)
		e.Priority = &p
	}
	if flags.Changed("due") {
		e.DueDate = &f.due
	}
	return e
}

func newReviewCmd(uc voice.UseCase, l log.Logger, opts *rootOptions) *cobra.Command {
	var f reviewFlags

	cmd := &cobra.Command{
		Use:   "review <transcript...>",
		Short: "Parse a transcript, apply corrections and print the task to create",
		Long: `Review parses the transcript, overrides any field given as a flag and
validates the result. An empty --due clears the parsed due date.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			now, err := opts.referenceTime()
			if err != nil {
				return err
			}

			parsed := uc.Parse(ctx, voice.ParseInput{Transcript: strings.Join(args, " "), Now: now})

			out, err := uc.Review(ctx, voice.ReviewInput{
				Draft: parsed.Draft,
				Edits: f.toEdits(cmd),
				Now:   now,
			})
			if err != nil {
				l.Infof(ctx, "cli.review: draft rejected: %v", err)
				return err
			}

			return json.NewEncoder(cmd.OutOrStdout()).Encode(newReviewResp(parsed, out))
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "", "replace the parsed title")
	cmd.Flags().StringVar(&f.status, "status", "", "replace the parsed status (todo, in_progress, done)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "replace the parsed priority (low, medium, high, urgent)")
	cmd.Flags().StringVar(&f.due, "due", "", "replace the parsed due date (YYYY-MM-DD, empty to clear)")

	return cmd
}
