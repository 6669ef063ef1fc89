package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"voice-task-parser/internal/voice"
	"voice-task-parser/pkg/log"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	now   string
	clock func() time.Time
}

// referenceTime is the instant relative due dates are computed from.
func (o *rootOptions) referenceTime() (time.Time, error) {
	if o.now == "" {
		return o.clock(), nil
	}
	t, err := time.Parse(time.RFC3339, o.now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: %w", o.now, err)
	}
	return t, nil
}

// New builds the voicetask command tree around uc.
func New(uc voice.UseCase, l log.Logger) *cobra.Command {
	opts := &rootOptions{clock: time.Now}

	root := &cobra.Command{
		Use:   "voicetask",
		Short: "Turn spoken task descriptions into task drafts",
		Long: `voicetask reads speech-to-text transcripts such as
"create a task to review the pull request by tomorrow" and prints the
title, priority, status and due date it hears in them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = log.WithTraceID(ctx, uuid.NewString())
			cmd.SetContext(ctx)
			l.Debugf(ctx, "cli: running %s", cmd.CommandPath())
		},
	}

	root.PersistentFlags().StringVar(&opts.now, "now", "", "reference time in RFC3339 (default: current time)")

	root.AddCommand(newParseCmd(uc, l, opts))
	root.AddCommand(newReviewCmd(uc, l, opts))

	return root
}
