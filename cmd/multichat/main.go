// Command multichat runs the assistant as an interactive terminal chat.
// Each line of input is one turn; answers stream back as they are produced.
package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gewei11/multichat"
	"github.com/gewei11/multichat/config"
	"github.com/gewei11/multichat/core"
	"github.com/gewei11/multichat/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		sessionID   string
		modelOption string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:           "multichat",
		Short:         "Rule-routed multi-domain conversational assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional; real deployments set the environment directly.
			_ = godotenv.Load()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if metricsAddr != "" {
				cfg.Metrics.Addr = metricsAddr
			}

			var m *metrics.Metrics
			if cfg.Metrics.Addr != "" {
				reg := prometheus.NewRegistry()
				m = metrics.New(reg)
				mux := http.NewServeMux()
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
				go func() {
					if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
						fmt.Fprintf(os.Stderr, "metrics endpoint failed: %v\n", err)
					}
				}()
			}

			assistant := multichat.New(func(o *multichat.Options) {
				o.Config = cfg
				o.Metrics = m
			})

			opts := assistant.DefaultOptions()
			if modelOption != "" {
				opts.ModelOption = modelOption
			}
			if sessionID == "" {
				sessionID = core.NewID()
			}

			return runREPL(cmd, assistant, sessionID, opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&sessionID, "session", "", "session id to continue (default: a fresh one)")
	cmd.Flags().StringVar(&modelOption, "model-option", "", "model strategy: auto, hybrid or a model name")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "address for the Prometheus /metrics endpoint")
	return cmd
}

func runREPL(cmd *cobra.Command, assistant *multichat.Assistant, sessionID string, opts core.Options) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "多智能体对话助手已就绪，输入 exit 退出，clear 清空当前会话。")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "clear":
			if err := assistant.ClearSession(sessionID); err != nil {
				fmt.Fprintf(out, "清空会话失败：%v\n", err)
				continue
			}
			fmt.Fprintln(out, "会话已清空。")
			continue
		}

		for frag := range assistant.ProcessInput(cmd.Context(), sessionID, input, opts) {
			fmt.Fprint(out, frag)
		}
		fmt.Fprintln(out)
	}
}
