package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/tessem/fixmath/internal/config"
	"github.com/tessem/fixmath/internal/logging"
	math "github.com/tessem/fixmath/internal/providers/math"
	"github.com/tessem/fixmath/internal/types"
)

func main() {
	dev := flag.Bool("dev", false, "Development logging")
	dumpTools := flag.Bool("tools", false, "Print the tool catalog and exit")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *dev {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
	}

	logger, err := logging.New(logging.Config(cfg.Logging))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	provider := math.NewProvider()

	if *dumpTools {
		out, err := sonic.MarshalIndent(provider.Definition(), "", "  ")
		if err != nil {
			logger.Fatal("failed to encode tool catalog", zap.Error(err))
		}
		fmt.Println(string(out))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("fixcalc ready",
		zap.String("service", provider.Definition().ID),
		zap.Int("tools", len(provider.Definition().Tools)),
	)

	if err := run(ctx, provider, cfg, logger); err != nil {
		logger.Fatal("evaluation loop failed", zap.Error(err))
	}
}

// run consumes newline-delimited JSON tool calls from stdin and writes
// one JSON result per line to stdout.
func run(ctx context.Context, provider *math.Provider, cfg *config.Config, logger *logging.Logger) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), cfg.Eval.MaxLineBytes)

	writer := bufio.NewWriter(os.Stdout)
	defer writer.Flush()

	for scanner.Scan() {
		if ctx.Err() != nil {
			logger.Info("shutting down")
			return nil
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var call types.ToolCall
		if err := sonic.Unmarshal(line, &call); err != nil {
			logger.Warn("malformed request", zap.Error(err))
			if writeErr := emitFailure(writer, fmt.Sprintf("malformed request: %v", err)); writeErr != nil {
				return writeErr
			}
			continue
		}

		result, err := provider.Execute(ctx, call.ToolID, call.Params, nil)
		if err != nil {
			return fmt.Errorf("execute %s: %w", call.ToolID, err)
		}
		if !result.Success {
			logger.Debug("tool call failed",
				zap.String("tool", call.ToolID),
				zap.Stringp("error", result.Error),
			)
			if cfg.Eval.Strict {
				if writeErr := emit(writer, result); writeErr != nil {
					return writeErr
				}
				return fmt.Errorf("strict mode: %s failed", call.ToolID)
			}
		}

		if err := emit(writer, result); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func emit(w *bufio.Writer, result *types.Result) error {
	out, err := sonic.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return err
	}
	return w.Flush()
}

func emitFailure(w *bufio.Writer, message string) error {
	return emit(w, &types.Result{Success: false, Error: &message})
}
