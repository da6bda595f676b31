// Command temporalfx-demo runs the sample greeting workflow end to end: the
// worker subcommand hosts it, the start subcommand triggers an execution and
// waits for the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahrav/go-temporalfx/internal/sample"
	"github.com/ahrav/go-temporalfx/pkg/client"
	"github.com/ahrav/go-temporalfx/pkg/config"
	"github.com/ahrav/go-temporalfx/pkg/logging"
	"github.com/ahrav/go-temporalfx/pkg/worker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		hostPort  string
		namespace string
	)

	root := &cobra.Command{
		Use:           "temporalfx-demo",
		Short:         "Demo worker and starter for the greeting workflow",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&hostPort, "address", config.DefaultHostPort, "Temporal service address")
	root.PersistentFlags().StringVar(&namespace, "namespace", config.DefaultNamespace, "Temporal namespace")

	clientCfg := func() config.ClientConfig {
		cfg := config.DefaultClientConfig()
		cfg.HostPort = hostPort
		cfg.Namespace = namespace
		return cfg
	}

	root.AddCommand(newWorkerCommand(clientCfg), newStartCommand(clientCfg))
	return root
}

func newWorkerCommand(clientCfg func() config.ClientConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Host the greeting workflow until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			zl := newLogger()

			c, err := client.Dial(clientCfg(), client.WithLogger(logging.NewLogger(zl)))
			if err != nil {
				return err
			}
			defer c.Close()

			f := worker.NewFactory(c, worker.WithLogger(zl))
			_, err = f.NewWorker(config.DefaultWorkerConfig(sample.TaskQueue), func(r worker.Registry) {
				r.RegisterWorkflow(sample.GreetingWorkflow)
				r.RegisterActivity(sample.NewActivities().ComposeGreeting)
			})
			if err != nil {
				return err
			}

			if err := f.Start(); err != nil {
				return err
			}
			zl.Info().Str("task_queue", sample.TaskQueue).Msg("worker running, ctrl-c to stop")

			<-cmd.Context().Done()
			f.Shutdown()
			return nil
		},
	}
}

func newStartCommand(clientCfg func() config.ClientConfig) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a greeting workflow and wait for its result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			zl := newLogger()

			c, err := client.Dial(clientCfg(), client.WithLogger(logging.NewLogger(zl)))
			if err != nil {
				return err
			}
			defer c.Close()

			run, err := client.Execute[sample.GreetingResult](
				cmd.Context(),
				c,
				client.StartOptions{TaskQueue: sample.TaskQueue},
				sample.GreetingWorkflow,
				sample.GreetingRequest{Name: name},
			)
			if err != nil {
				return err
			}
			zl.Info().Str("workflow_id", run.ID()).Msg("workflow started")

			res, err := run.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "world", "name to greet")
	return cmd
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
