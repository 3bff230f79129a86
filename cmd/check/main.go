// Command check routes a single message through the fact-check pipeline and
// prints the reply. It reads the same environment as the server.
//
// Usage:
//
//	check "verify the earth is flat"
//	echo "Fwd: share this before it is deleted" | check --twiml
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/MisinfoX_Go/internal/bootstrap"
	"github.com/osse101/MisinfoX_Go/internal/config"
	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/twiml"
)

var (
	fromFlag  string
	twimlFlag bool
	jsonFlag  bool
	quietFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "check [message...]",
	Short: "Fact-check a message from the command line",
	Long: `Routes one message through the same pipeline as the webhook and prints the reply.
The message is taken from the arguments, or from stdin when no arguments are given.`,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&fromFlag, "from", "cli", "Sender address recorded in logs")
	rootCmd.Flags().BoolVar(&twimlFlag, "twiml", false, "Print the TwiML envelope instead of plain text")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the reply, intent, and outcome as JSON")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Discard log output")
	rootCmd.MarkFlagsMutuallyExclusive("twiml", "json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	body, err := readMessage(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var logOut io.Writer = cmd.ErrOrStderr()
	if quietFlag {
		logOut = io.Discard
	}
	bootstrap.SetupLogger(cfg, logOut)

	ctx := context.Background()
	pipeline := bootstrap.BuildPipeline(ctx, cfg)
	v := pipeline.Router.Route(ctx, domain.InboundMessage{Body: body, From: fromFlag})

	out := cmd.OutOrStdout()
	switch {
	case twimlFlag:
		xml, err := twiml.Compose(v.Text)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, xml)
	case jsonFlag:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		fmt.Fprintln(out, v.Text)
	}
	return nil
}

// readMessage joins the arguments, or reads all of stdin when there are none.
func readMessage(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read message from stdin: %w", err)
	}
	return string(data), nil
}
