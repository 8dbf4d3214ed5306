package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sleepstars/groqgate/internal/loadgen"
)

var (
	host          string
	users         int
	spawnRate     float64
	runTime       time.Duration
	timeout       time.Duration
	questionsFile string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "loadtest",
	Short: "Generate concurrent synthetic traffic against the gateway",
	Long: `loadtest spawns simulated clients that repeatedly pick a canned
question and POST it to the gateway's /chat endpoint, occasionally also
exercising /health and /models. At the end of the run (deadline or Ctrl-C)
it prints an aggregate summary of counts and latencies.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&host, "host", "http://localhost:8000", "gateway base URL")
	rootCmd.Flags().IntVarP(&users, "users", "u", 10, "number of simulated clients")
	rootCmd.Flags().Float64VarP(&spawnRate, "spawn-rate", "r", 1, "clients started per second")
	rootCmd.Flags().DurationVarP(&runTime, "run-time", "t", 0, "run duration (0 = until interrupted)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
	rootCmd.Flags().StringVar(&questionsFile, "questions", "", "YAML file with a custom question pool")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		// Keep the report readable; the summary block is the output.
		log.SetLevel(log.WarnLevel)
	}

	questions := loadgen.DefaultQuestions()
	if questionsFile != "" {
		var err error
		questions, err = loadgen.LoadQuestions(questionsFile)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
	}

	fmt.Println("SERVICE LOAD TEST")
	fmt.Printf("Host: %s  Users: %d  Spawn Rate: %.1f/s  Questions: %d\n", host, users, spawnRate, len(questions))

	runner := loadgen.NewRunner(loadgen.Options{
		Host:      host,
		Users:     users,
		SpawnRate: spawnRate,
		RunTime:   runTime,
		Timeout:   timeout,
		Questions: questions,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary := runner.Run(ctx)
	summary.Render(os.Stdout)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
