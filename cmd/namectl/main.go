package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danmuck/monctl/internal/config"
	"github.com/danmuck/monctl/internal/logging"
	"github.com/danmuck/monctl/internal/protocol/args"
	"github.com/danmuck/monctl/internal/protocol/byteorder"
	"github.com/danmuck/monctl/internal/protocol/format"
	"github.com/danmuck/monctl/internal/protocol/naming"
	"github.com/danmuck/monctl/internal/protocol/quality"
	"github.com/danmuck/monctl/internal/record"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const usage = `namectl inspects service names, format descriptors and quality words.

Usage:
  namectl [--config FILE] <command> [flags] [args]

Commands:
  parse     parse names (args or stdin) and print both forms and tree rows
  format    parse format descriptors
  quality   decode <word>... | encode <state> <type> <visibility> <mode>
  swap      byte-swap 32-bit values, or read wire integers from stdin with --read
  arg       convert command argument text for a format descriptor
  ingest    build records from the items listed in the config file
  template  write a config template
`

var errUsage = errors.New("usage")

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout io.Writer) error {
	global := pflag.NewFlagSet("namectl", pflag.ContinueOnError)
	global.SetInterspersed(false)
	configPath := global.String("config", "", "config file (.toml, .yaml or .yml)")
	if err := global.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stdout, usage)
			return nil
		}
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
			zerolog.SetGlobalLevel(lvl)
		}
	}

	rest := global.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, rest := rest[0], rest[1:]
	switch cmd {
	case "parse":
		return runParse(cfg, rest, stdin, stdout)
	case "format":
		return runFormat(rest, stdout)
	case "quality":
		return runQuality(rest, stdout)
	case "swap":
		return runSwap(cfg, rest, stdin, stdout)
	case "arg":
		return runArg(cfg, rest, stdout)
	case "ingest":
		return runIngest(cfg, rest, stdout)
	case "template":
		return runTemplate(rest, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func runParse(cfg config.Config, argv []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	modeFlag := fs.StringP("mode", "m", cfg.Mode.String(), "name ordering: parameter|command")
	cache := fs.Bool("cache", cfg.CacheForms, "precompute both forms at parse time")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	mode, err := naming.ParseMode(*modeFlag)
	if err != nil {
		return err
	}

	names := fs.Args()
	if len(names) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				names = append(names, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	logger := logging.New("parse")
	failed := 0
	for _, raw := range names {
		n, err := naming.Parse(raw, mode, naming.CacheForms(*cache))
		if err != nil {
			logger.Warn().Err(err).Msg("skip name")
			fmt.Fprintf(stdout, "%s\terror: %v\n", raw, err)
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s\n  standard: %s\n  command:  %s\n", raw, n.StandardForm(), n.CommandForm())
		for level := 0; ; level++ {
			row, ok := n.Field(level, mode)
			if !ok {
				break
			}
			fmt.Fprintf(stdout, "  %s%s\n", strings.Repeat("  ", level), row)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d names failed to parse", failed, len(names))
	}
	return nil
}

func runFormat(argv []string, stdout io.Writer) error {
	if len(argv) == 0 {
		return errUsage
	}
	for _, spec := range argv {
		d, err := format.Parse(spec)
		if err != nil {
			return err
		}
		size := "variable"
		if n, ok := d.FixedSize(); ok {
			size = strconv.Itoa(n)
		}
		fmt.Fprintf(stdout, "%s\telements=%s struct=%t array=%t int32=%t int64=%t float=%t double=%t char=%t bytes=%s\n",
			spec, d, d.IsStruct(), d.IsArray, d.IsInt32, d.IsInt64Alias, d.IsFloat, d.IsDouble, d.IsChar, size)
	}
	return nil
}

func runQuality(argv []string, stdout io.Writer) error {
	if len(argv) == 0 {
		return errUsage
	}
	switch argv[0] {
	case "decode":
		for _, raw := range argv[1:] {
			v, err := strconv.ParseInt(raw, 0, 64)
			if err != nil {
				return fmt.Errorf("quality word %q: %w", raw, err)
			}
			q := quality.Decode(int32(v))
			fmt.Fprintf(stdout, "%s\t%s\n", raw, q)
		}
		return nil
	case "encode":
		if len(argv) != 5 {
			return errUsage
		}
		lanes := make([]int, 4)
		for i, raw := range argv[1:] {
			v, err := strconv.ParseUint(raw, 0, 8)
			if err != nil {
				return fmt.Errorf("quality lane %q: %w", raw, err)
			}
			lanes[i] = int(v)
		}
		fmt.Fprintf(stdout, "%d\n", quality.Encode(lanes[0], lanes[1], lanes[2], lanes[3]))
		return nil
	default:
		return errUsage
	}
}

func runSwap(cfg config.Config, argv []string, stdin io.Reader, stdout io.Writer) error {
	fs := pflag.NewFlagSet("swap", pflag.ContinueOnError)
	endian := fs.Int32("endian", cfg.Endian, "endian flag: 1 keeps host order, anything else swaps")
	read := fs.Bool("read", false, "read 4-byte wire integers from stdin")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if *read {
		for {
			v, err := byteorder.ReadI32(stdin, *endian)
			var ioErr *byteorder.IOError
			if errors.As(err, &ioErr) && ioErr.Got == 0 && errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%d\t0x%08x\n", v, uint32(v))
		}
	}
	if fs.NArg() == 0 {
		return errUsage
	}
	for _, raw := range fs.Args() {
		v, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return fmt.Errorf("value %q: %w", raw, err)
		}
		out := byteorder.SwapI32(int32(v), *endian)
		fmt.Fprintf(stdout, "0x%08x\n", uint32(out))
	}
	return nil
}

func runArg(cfg config.Config, argv []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("arg", pflag.ContinueOnError)
	spec := fs.StringP("format", "f", "C:0", "format descriptor of the command")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	desc, err := format.Parse(*spec)
	if err != nil {
		return err
	}
	a, err := args.ParseArg(desc, fs.Arg(0))
	if err != nil {
		return err
	}
	wire, err := args.Encode(a, cfg.Endian)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", a.Kind, a, hex.EncodeToString(wire))
	return nil
}

func runIngest(cfg config.Config, argv []string, stdout io.Writer) error {
	if len(argv) != 0 {
		return errUsage
	}
	items := make([]record.RawItem, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		raw := record.RawItem{Name: item.Name, Format: item.Format, Quality: quality.Raw}
		if item.Quality != nil {
			raw.Quality = *item.Quality
		}
		items = append(items, raw)
	}
	batch := record.Ingest(logging.New("ingest"), cfg.Mode, items, naming.CacheForms(cfg.CacheForms))
	for _, r := range batch.Records {
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", r.Kind, r.Key(), r.Format, r.Quality)
	}
	for _, s := range batch.Skipped {
		fmt.Fprintf(stdout, "skipped\t%s\t%v\n", s.Item.Name, s.Err)
	}
	return nil
}

func runTemplate(argv []string, stdout io.Writer) error {
	fs := pflag.NewFlagSet("template", pflag.ContinueOnError)
	kind := fs.String("kind", "toml", "template kind: toml|yaml")
	output := fs.StringP("output", "o", "", "output path for config template")
	force := fs.Bool("force", false, "overwrite existing config file")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if *output == "" {
		tmpl, err := config.Template(*kind)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, tmpl)
		return nil
	}
	if err := config.WriteTemplate(*output, *kind, *force); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s config template to %s\n", *kind, *output)
	return nil
}
