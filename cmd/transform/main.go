package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"statement-transformer/internal/config"
	"statement-transformer/internal/dto"
	"statement-transformer/internal/models"
	"statement-transformer/internal/services"
	"statement-transformer/internal/transform"
	"statement-transformer/internal/validation"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	red    = color.New(color.FgRed, color.Bold)
)

type options struct {
	input      string
	output     string
	policyFile string
	uploadID   string
	sample     int
	seed       uint64
	strict     bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		red.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	config.LoadDotEnv()
	transformCfg := config.Load().Transform
	if opts.policyFile != "" {
		transformCfg.PolicyFile = opts.policyFile
	}

	policy, err := transformCfg.Policy()
	if err != nil {
		return err
	}

	engine, err := transform.NewEngine(policy)
	if err != nil {
		return err
	}

	statement, err := loadStatement(opts, stdin)
	if err != nil {
		return err
	}
	if opts.uploadID != "" {
		statement.Merchant.UploadID = opts.uploadID
	}

	result := engine.Run(statement)

	if err := writeStatement(opts.output, stdout, result.Statement); err != nil {
		return err
	}

	report(stderr, result)

	if opts.strict && len(result.Statement.Metadata.Errors) > 0 {
		return fmt.Errorf("%d row(s) rejected", len(result.Statement.Metadata.Errors))
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.input, "input", "-", "extracted statement JSON file, - for stdin")
	fs.StringVar(&opts.output, "output", "-", "output file for the transformed statement, - for stdout")
	fs.StringVar(&opts.policyFile, "policy", "", "YAML policy file with tag defaults and tolerance")
	fs.StringVar(&opts.uploadID, "upload-id", "", "override the merchant statement upload ID")
	fs.IntVar(&opts.sample, "sample", 0, "generate a sample statement with this many rows instead of reading input")
	fs.Uint64Var(&opts.seed, "seed", 0, "seed for -sample, 0 picks one from the clock")
	fs.BoolVar(&opts.strict, "strict", false, "exit non-zero when any row is rejected")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.sample < 0 {
		return options{}, errors.New("-sample must not be negative")
	}
	return opts, nil
}

func loadStatement(opts options, stdin io.Reader) (models.ExtractedStatement, error) {
	if opts.sample > 0 {
		seed := opts.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return services.NewStatementGenerator(seed).GenerateStatement(opts.sample), nil
	}

	var r io.Reader = stdin
	if opts.input != "-" {
		f, err := os.Open(opts.input)
		if err != nil {
			return models.ExtractedStatement{}, fmt.Errorf("failed to open input %q: %w", opts.input, err)
		}
		defer f.Close()
		r = f
	}

	var req dto.TransformStatementRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return models.ExtractedStatement{}, fmt.Errorf("failed to decode extracted statement: %w", err)
	}

	if err := validation.GetValidator().Struct(&req); err != nil {
		return models.ExtractedStatement{}, fmt.Errorf("invalid extracted statement: %w", err)
	}

	return req.ToExtractedStatement(), nil
}

func writeStatement(path string, stdout io.Writer, statement *models.NewMerchantStatement) error {
	if path == "-" {
		return encodeStatement(stdout, statement)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output %q: %w", path, err)
	}
	return closeOutput(f, path, encodeStatement(f, statement))
}

func encodeStatement(w io.Writer, statement *models.NewMerchantStatement) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(statement); err != nil {
		return fmt.Errorf("failed to write statement: %w", err)
	}
	return nil
}

// closeOutput closes f and reports the write error first, then the close error.
func closeOutput(f io.Closer, path string, writeErr error) error {
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output %q: %w", path, closeErr)
	}
	return nil
}

func report(w io.Writer, result transform.Result) {
	meta := result.Statement.Metadata

	green.Fprintf(w, "%d row(s) into %d bucket(s)\n", meta.TotalTransactionRows, meta.UniqueBuckets)

	for _, d := range result.Diagnostics {
		if d.Kind.Severity() == transform.SeverityError {
			red.Fprintf(w, "  x %s\n", d)
		} else {
			yellow.Fprintf(w, "  ! %s\n", d)
		}
	}
}
