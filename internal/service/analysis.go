package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/osutil"
	"golang.org/x/sync/errgroup"
)

// DefaultReadConcurrency bounds how many input files are read at once
const DefaultReadConcurrency = 8

// StdinName selects standard input in an input list
const StdinName = "-"

// AnalysisService reads notes and runs the analyzer over them
type AnalysisService struct {
	concurrency int
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(concurrency int) *AnalysisService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &AnalysisService{concurrency: concurrency}
}

// Analyze runs the analyzer over text.
func (s *AnalysisService) Analyze(text string) (*analyzer.Report, error) {
	return analyzer.Analyze(text)
}

// ReadInputs reads every path concurrently and joins the contents in argument
// order, one newline between inputs. An empty list or "-" reads stdin.
func (s *AnalysisService) ReadInputs(ctx context.Context, paths []string, stdin io.Reader) (string, error) {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}

	contents := make([]string, len(paths))
	readStdin := false

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		if path == StdinName {
			// stdin can only be consumed once
			if readStdin {
				continue
			}
			readStdin = true
			b, err := io.ReadAll(stdin)
			if err != nil {
				return "", fmt.Errorf("failed to read stdin: %w", err)
			}
			contents[i] = string(b)
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := osutil.Provider.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			contents[i] = string(b)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return strings.Join(contents, "\n"), nil
}

// AnalyzeInputs reads the inputs and analyzes their combined text.
func (s *AnalysisService) AnalyzeInputs(ctx context.Context, paths []string, stdin io.Reader) (*analyzer.Report, error) {
	text, err := s.ReadInputs(ctx, paths, stdin)
	if err != nil {
		return nil, err
	}
	return s.Analyze(text)
}
