package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/legacykit/recordconv/charset"
	"github.com/legacykit/recordconv/codemap"
	"github.com/legacykit/recordconv/copybook"
	"github.com/legacykit/recordconv/decode"
	"github.com/legacykit/recordconv/errors"
	"github.com/legacykit/recordconv/pipeline"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

func main() {
	var (
		mapFile     = flag.String("map", "", "Path to double-byte mapping file (prompted if omitted)")
		inDir       = flag.String("in", "./iBIN", "Directory with binary input files (*.bin)")
		cpyDir      = flag.String("cpy", "./iCPY", "Directory with schema files (CPY_<name>.txt)")
		outDir      = flag.String("out", "./oDAT", "Directory for converted output (LOAD_<name>.dat)")
		charsetName = flag.String("charset", charset.DefaultName, "Single-byte codec: "+strings.Join(charset.Names(), ", "))
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	logger := buildLogger(*verbose)
	defer logger.Sync()
	copybook.SetLogger(logger)
	codemap.SetLogger(logger)
	decode.SetLogger(logger)
	pipeline.SetLogger(logger)

	if *mapFile == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Usage: convert -map <mapping file> [-in dir] [-cpy dir] [-out dir] [-charset name]")
			os.Exit(1)
		}
		path, err := promptMappingPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if path == "" {
			return
		}
		*mapFile = path
	}

	if err := run(*mapFile, *inDir, *cpyDir, *outDir, *charsetName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(mapFile, inDir, cpyDir, outDir, charsetName string) error {
	codec, err := charset.Lookup(charsetName)
	if err != nil {
		return err
	}

	table, err := codemap.Load(mapFile)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		return errors.EmptyTable(mapFile)
	}
	fmt.Printf("Mapping table: %s (%d entries)\n", mapFile, table.Len())

	dec := decode.New(codec, table)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	inputs, err := filepath.Glob(filepath.Join(inDir, "*.bin"))
	if err != nil {
		return fmt.Errorf("scan input directory: %w", err)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no *.bin files in %s", inDir)
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	var succeeded, failed int

	for _, binPath := range inputs {
		base := strings.TrimSuffix(filepath.Base(binPath), ".bin")
		cpyPath := filepath.Join(cpyDir, "CPY_"+base+".txt")
		outPath := filepath.Join(outDir, "LOAD_"+base+".dat")

		res, err := pipeline.ConvertFile(binPath, cpyPath, outPath, dec)
		switch {
		case err != nil:
			failed++
			printStatus(styled, failStyle, fmt.Sprintf("FAIL  %s: %v", base, err))
		case res.OK():
			succeeded++
			printStatus(styled, okStyle, fmt.Sprintf("OK    %s: %d records", base, res.Records))
		default:
			// Output was written, but a file with any decode problem still
			// counts as failed for the summary and the exit status.
			failed++
			printStatus(styled, warnStyle, fmt.Sprintf("FAIL  %s: %d records, %d problems%s",
				base, res.Records, res.Errors(), truncNote(res)))
		}
	}

	summary := fmt.Sprintf("\n%d attempted, %d succeeded, %d failed", len(inputs), succeeded, failed)
	if styled {
		summary = summaryStyle.Render(summary)
	}
	fmt.Println(summary)

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

func truncNote(res pipeline.Result) string {
	if res.Truncated {
		return " (input truncated)"
	}
	return ""
}

func printStatus(styled bool, style lipgloss.Style, line string) {
	if styled {
		line = style.Render(line)
	}
	fmt.Println(line)
}
