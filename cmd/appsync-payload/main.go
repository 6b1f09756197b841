package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-appsync/internal/config"
	"github.com/cyphera/cyphera-appsync/internal/constants"
	"github.com/cyphera/cyphera-appsync/internal/logger"
	"github.com/cyphera/cyphera-appsync/internal/render"
)

func main() {
	kind := flag.String("kind", constants.CachingConfigKind, "payload kind: caching-config or api-key")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  cfg.Stage == constants.ProdEnvironment,
		EnableColor: cfg.Stage != constants.ProdEnvironment,
	})

	code := run(cfg, *kind, flag.Arg(0), os.Stdin, os.Stdout)
	_ = logger.Sync()
	os.Exit(code)
}

// run renders one document and returns the process exit code.
func run(cfg *config.Config, kind, path string, stdin io.Reader, stdout io.Writer) int {
	runLogger := logger.With(zap.String("run_id", uuid.NewString()), zap.String("kind", kind))

	input, err := readInput(path, stdin)
	if err != nil {
		runLogger.Error("Failed to read input", zap.Error(err))
		return 1
	}

	out, err := render.NewRenderer(runLogger, cfg.Pretty).Render(kind, input)
	if err != nil {
		runLogger.Error("Failed to render payload", zap.Error(err))
		return 1
	}

	fmt.Fprintln(stdout, string(out))
	return 0
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
