package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/interfacing/internal/engine"
	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion"
	"github.com/KirkDiggler/interfacing/internal/redis"
	suggestionsession "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session"
	"github.com/KirkDiggler/interfacing/internal/skills"
)

var scenePath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "interfacing",
		Short:         "Skill-voiced action suggestions for a chat scene",
		Long:          `interfacing asks your skills what to do next, rolls 2d6 checks for the option you pick and narrates the outcome.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&scenePath, "scene", "", "scene file (overrides INTERFACING_SCENE)")

	root.AddCommand(
		newSuggestCmd(),
		newExecuteCmd(),
		newShowCmd(),
		newClearCmd(),
		newRollCmd(),
		newSayCmd(),
		newPruneCmd(),
	)
	return root
}

// withApp loads config, wires the app, restores the session, runs fn and saves
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if scenePath != "" {
		cfg.ScenePath = scenePath
	}
	setupLogging(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.load(ctx); err != nil {
		return err
	}

	runErr := fn(ctx, a)
	if err := a.save(ctx); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func newSuggestCmd() *cobra.Command {
	var (
		intent string
		force  bool
		count  int
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate suggestions from the recent conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.suggestions.GenerateSuggestions(ctx, &suggestion.GenerateSuggestionsInput{
					Intent:          intent,
					Force:           force,
					SuggestionCount: count,
				})
				if err != nil {
					return err
				}
				if out.Cached {
					fmt.Fprintln(cmd.OutOrStdout(), "(cached)")
				}
				printSuggestions(cmd.OutOrStdout(), out.Suggestions)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&intent, "intent", "", "generate approaches to a stated intent")
	cmd.Flags().BoolVar(&force, "force", false, "regenerate even if the context is unchanged")
	cmd.Flags().IntVar(&count, "count", 0, "number of suggestions (3-5)")
	return cmd
}

func newExecuteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <suggestion-id>",
		Short: "Roll the check for a suggestion and narrate the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.suggestions.ExecuteSuggestion(ctx, &suggestion.ExecuteSuggestionInput{
					SuggestionID: args[0],
				})
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), out.Result)
				return nil
			})
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored session as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(_ context.Context, a *app) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(a.suggestions.Snapshot())
			})
		},
	}
}

func newClearCmd() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop the current suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				if reset {
					a.suggestions.Reset(ctx)
				} else {
					a.suggestions.ClearSuggestions(ctx)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "also forget the last result and error")
	return cmd
}

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <skill> <dc>",
		Short: "Roll a standalone 2d6 skill check",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dc, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.InvalidArgumentf("dc must be a number, got %q", args[1])
			}

			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.engine.RollCheck(ctx, &engine.RollCheckInput{SkillID: args[0], DC: dc})
				if err != nil {
					return err
				}
				if out.Check == nil {
					return errors.Unavailable("Roll failed")
				}

				c := out.Check
				outcome := "FAILURE"
				if c.Success {
					outcome = "SUCCESS"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d + %d = %d vs DC %d (%s) %s\n",
					skills.Default().DisplayName(args[0]), c.Roll, c.Modifier, c.Total, c.DC,
					skills.DifficultyForDC(c.DC).Name, outcome)
				return nil
			})
		},
	}
}

func newSayCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "say <text>",
		Short: "Append a message to the scene and react to it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app) error {
				a.scene.AppendMessage(entities.Message{
					IsUser:  name == "",
					Name:    name,
					Content: strings.Join(args, " "),
				})
				if err := a.scene.Save(a.cfg.ScenePath); err != nil {
					return err
				}

				out, err := a.suggestions.HandleNewMessage(ctx)
				if err != nil {
					return err
				}
				if out.Regenerated && out.Generation != nil {
					printSuggestions(cmd.OutOrStdout(), out.Generation.Suggestions)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "as", "", "speak as a named character instead of the player")
	return cmd
}

func newPruneCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Find stored sessions that no longer decode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			setupLogging(cfg)

			client, closeRedis, err := redis.Open(cfg.RedisURL)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
			}
			defer closeRedis()

			out, err := suggestionsession.Sweep(cmd.Context(), client, suggestionsession.SweepInput{Delete: yes})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "checked %d sessions, %d corrupt\n", out.Checked, len(out.Corrupt))
			for _, key := range out.Corrupt {
				fmt.Fprintf(w, "  - %s\n", key)
			}
			if yes {
				fmt.Fprintf(w, "deleted %d\n", out.Deleted)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "delete what the scan finds")
	return cmd
}

func printSuggestions(w io.Writer, list []entities.Suggestion) {
	for _, s := range list {
		fmt.Fprintf(w, "[%s] %s (%s, DC %d): %s\n", s.ID, s.SkillName, s.Difficulty, s.DC, s.ShortText)
		fmt.Fprintf(w, "    %q\n", s.VoiceText)
	}
}

func printResult(w io.Writer, r *entities.ExecutionResult) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "%s: rolled %d, total %d vs DC %d, %s\n",
		r.Suggestion.SkillName, r.Roll.Roll, r.Roll.Total, r.Roll.DC, r.ResultType)
	fmt.Fprintln(w, r.ResultText)
}
