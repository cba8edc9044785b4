package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"

	"github.com/n-ulricksen/nes-cpu/monitor"
	"github.com/n-ulricksen/nes-cpu/nes"
)

// Command line flags
var (
	flagDebug    bool
	flagLogging  bool
	flagStep     bool
	flagDisasm   bool
	flagStart    string
	flagLogLevel string
	flagMax      uint64
)

const (
	exitRunError    = 1
	exitConfigError = 2
)

type logLevel int

const (
	levelOff logLevel = iota
	levelWarn
	levelInfo
	levelDebug
)

var logLevels = map[string]logLevel{
	"off":   levelOff,
	"warn":  levelWarn,
	"info":  levelInfo,
	"debug": levelDebug,
}

func parseLogLevel(s string) (logLevel, error) {
	level, ok := logLevels[strings.ToLower(s)]
	if !ok {
		return levelOff, errors.Errorf("unknown log level %q (want off, warn, info or debug)", s)
	}
	return level, nil
}

var (
	warnLog = log.New(os.Stderr, "WARN: ", log.Ltime)
	infoLog = log.New(os.Stderr, "INFO: ", log.Ltime)
)

// config is everything resolved from the command line before the CPU runs.
type config struct {
	file     string
	start    uint16
	hasStart bool
	level    logLevel
}

func main() {
	os.Exit(run())
}

func run() int {
	parseFlags()

	cfg, err := configure(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "nes: %v\n", err)
		return exitConfigError
	}
	setupLoggers(cfg.level)

	defer nes.TimeTrack(infoLog, time.Now())

	cpu := nes.NewCpu6502()
	if cfg.file != "" {
		if err := loadFile(cpu, cfg.file); err != nil {
			fmt.Fprintf(os.Stderr, "nes: %v\n", err)
			return exitConfigError
		}
	}

	if flagDisasm {
		fmt.Print(nes.Listing(nes.Disassemble(cpu.Bus, nes.RomStart, 0xFFFF)))
		return 0
	}

	trace, err := openTrace(cfg.level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nes: %v\n", err)
		return exitConfigError
	}
	if trace != nil {
		defer trace.Close()
		cpu.Logger = log.New(trace, "", 0)
	}

	if err := execute(cpu, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "nes: %v\n", err)
		return exitRunError
	}

	infoLog.Printf("halted after %d instructions, %d cycles", cpu.InstCount, cpu.CycleCount)
	infoLog.Printf("exiting successfully")
	return 0
}

func parseFlags() {
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable logging of the cpu trace to ./logs")
	flag.BoolVar(&flagStep, "step", false, "single step one instruction per key press")
	flag.BoolVar(&flagDisasm, "disasm", false, "print a disassembly of ROM and exit")
	flag.StringVar(&flagStart, "s", "", "start address `expression` (names: ram, ram_size, rom, rom_size)")
	flag.StringVar(&flagStart, "start", "", "same as -s")
	flag.StringVar(&flagLogLevel, "log", "", "log `level`: off, warn, info or debug (env NES_LOG_LEVEL)")
	flag.Uint64Var(&flagMax, "max", 0, "stop after `n` instructions, 0 for no limit")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [FILE]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()
}

// configure validates arguments and evaluates the start address. Nothing
// here touches the CPU.
func configure(args []string) (config, error) {
	var cfg config

	if len(args) > 1 {
		return cfg, errors.Errorf("expected at most one program file, got %d", len(args))
	}
	if len(args) == 1 {
		cfg.file = args[0]
	}

	levelName := flagLogLevel
	if levelName == "" {
		levelName = os.Getenv("NES_LOG_LEVEL")
	}
	if levelName == "" {
		levelName = "warn"
	}
	level, err := parseLogLevel(levelName)
	if err != nil {
		return cfg, err
	}
	cfg.level = level

	if flagStart != "" {
		addr, err := evalAddressExpression(flagStart)
		if err != nil {
			return cfg, err
		}
		cfg.start = addr
		cfg.hasStart = true
	}

	if flagDebug && flagStep {
		return cfg, errors.New("-d and -step cannot be used together")
	}

	return cfg, nil
}

func setupLoggers(level logLevel) {
	if level < levelWarn {
		warnLog.SetOutput(io.Discard)
	}
	if level < levelInfo {
		infoLog.SetOutput(io.Discard)
	}
}

func loadFile(cpu *nes.Cpu6502, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening program")
	}
	defer f.Close()

	n, err := cpu.LoadFrom(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", path)
	}
	if n == nes.RomSize {
		// LoadFrom stops at the end of ROM; anything left in the file is ignored.
		if extra, _ := f.Read(make([]byte, 1)); extra > 0 {
			warnLog.Printf("%s is larger than ROM, only the first %d bytes were loaded", path, n)
		}
	}
	infoLog.Printf("loaded %d bytes from %s", n, path)
	return nil
}

// openTrace returns where the per-instruction trace goes, or nil for nowhere.
func openTrace(level logLevel) (io.WriteCloser, error) {
	if flagLogging {
		if err := os.MkdirAll("logs", 0755); err != nil {
			return nil, errors.Wrap(err, "creating log directory")
		}
		name := filepath.Join("logs", "cpu"+time.Now().Format("20060102-150405")+".log")
		f, err := os.Create(name)
		if err != nil {
			return nil, errors.Wrap(err, "creating trace file")
		}
		infoLog.Printf("writing cpu trace to %s", name)
		return f, nil
	}
	if level >= levelDebug {
		return nopCloser{os.Stderr}, nil
	}
	return nil, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// execute runs the loaded program in whichever mode the flags chose.
func execute(cpu *nes.Cpu6502, cfg config) error {
	if cfg.hasStart {
		infoLog.Printf("starting from address $%04X", cfg.start)
	}

	switch {
	case flagDebug:
		resetCpu(cpu, cfg)
		mon := monitor.New(cpu)
		pixelgl.Run(mon.Run)
		return mon.Err()

	case flagStep:
		resetCpu(cpu, cfg)
		s := &stepper{cpu: cpu, in: os.Stdin, out: os.Stdout}
		return s.run()

	case flagMax > 0:
		resetCpu(cpu, cfg)
		halted, err := cpu.Run(flagMax)
		if err != nil {
			return err
		}
		if !halted {
			warnLog.Printf("stopped after %d instructions without halting (PC $%04X)", flagMax, cpu.Pc)
		}
		return nil

	case cfg.hasStart:
		return cpu.StartFrom(cfg.start)

	default:
		return cpu.Start()
	}
}

func resetCpu(cpu *nes.Cpu6502, cfg config) {
	if cfg.hasStart {
		cpu.ResetTo(cfg.start)
		return
	}
	cpu.Reset()
}
