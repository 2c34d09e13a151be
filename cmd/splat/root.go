package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cognicore/splat/pkg/splat"
	"github.com/cognicore/splat/pkg/splat/config"
)

// newRootCmd builds the command tree. Flags can also be set through
// SPLAT_-prefixed environment variables, e.g. SPLAT_PARSER_URL.
func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SPLAT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "splat",
		Short:         "Extract linguistic features from transcripts and text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return nil
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.String("config", "", "Settings YAML file")
	flags.String("function-words", "", "Function word list (YAML with a terms list)")
	flags.String("trees", "", "Pre-computed parse trees, one per utterance line")
	flags.String("parser-url", "", "CoreNLP server URL for parse trees")
	flags.String("sentenizer", config.SentenizerRule, "Sentenizer: rule or prose")
	flags.String("log-level", "warn", "Log level")
	flags.Bool("annotate", false, "Annotate dialog acts before running the query")
	_ = v.BindPFlags(flags)

	for _, q := range queries {
		root.AddCommand(queryCmd(v, q))
	}
	return root
}

func queryCmd(v *viper.Viper, q query) *cobra.Command {
	use := q.name + " <file|text>"
	if q.param != "" {
		use += " [" + q.param + "]"
	}
	maxArgs := 1
	if q.param != "" {
		maxArgs = 2
	}
	return &cobra.Command{
		Use:   use,
		Short: q.short,
		Args:  cobra.RangeArgs(1, maxArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBubble(cmd, v, args[0])
			if err != nil {
				return err
			}
			if v.GetBool("annotate") {
				if _, err := b.Annotate(); err != nil {
					return err
				}
			}
			return q.run(b, cmd.OutOrStdout(), args[1:])
		},
	}
}

func openBubble(cmd *cobra.Command, v *viper.Viper, src string) (*splat.Bubble, error) {
	loader := config.Loader{
		SettingsPath:      v.GetString("config"),
		FunctionWordsPath: v.GetString("function-words"),
		TreesPath:         v.GetString("trees"),
		ParserURL:         v.GetString("parser-url"),
		Sentenizer:        v.GetString("sentenizer"),
		Log:               logrus.WithField("component", "corenlp"),
	}
	components, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load configs: %w", err)
	}

	opts := splat.OptionsFrom(components)
	opts.Context = cmd.Context()
	opts.Log = logrus.WithField("component", "bubble")

	return splat.Open(src, opts)
}
