// Command ofmon decodes OpenFlow 1.3 matches and messages.
//
//	ofmon [flags] match HEX         decode an ofp_match
//	ofmon [flags] encode TEXT       encode "field=value,..." into an ofp_match
//	ofmon [flags] pcap FILE         decode the OpenFlow stream of a capture
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/little-dude/ofpkt"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	programName     = "ofmon"
	programVersion  = "0.1.0"
	defaultLogLevel = logging.WARNING
)

var (
	logger      = logging.MustGetLogger("main")
	showVersion = flag.Bool("version", false, "Show program version and exit")
	logLevel    = flag.String("log-level", "warning", "debug, info, notice, warning or error")
	format      = flag.String("format", "text", "output format: text or yaml")
	port        = flag.Int("port", 6653, "OpenFlow TCP port to pick out of a capture")
	streams     = flag.Int("streams", 1024, "number of TCP streams pcap reassembles at once")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] match|encode|pcap ARG\n", programName)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Printf("Version: %v\n", programVersion)
		os.Exit(0)
	}
	initLog(getLogLevel(*logLevel))

	defer func() {
		if r := recover(); r != nil {
			logger.Critical(ofpkt.SysError{Err: errors.Errorf("%v", r), Stack: debug.Stack()})
			os.Exit(2)
		}
	}()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	out, err := newPrinter(os.Stdout, *format)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	switch args[0] {
	case "match":
		err = decodeMatch(out, args[1])
	case "encode":
		err = encodeMatch(out, args[1])
	case "pcap":
		err = readPcap(out, args[1], *port, *streams)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Errorf("%s: %v", args[0], err)
		os.Exit(1)
	}
}

func initLog(level logging.Level) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(`%{level}: %{shortpkg}.%{shortfunc}: %{message}`))

	leveled := logging.AddModuleLevel(formatted)
	// Set log level for all modules
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func getLogLevel(level string) logging.Level {
	level = strings.ToUpper(level)
	ret, err := logging.LogLevel(level)
	if err != nil {
		logger.Infof("invalid log level=%v, defaulting to %v..", level, defaultLogLevel)
		return defaultLogLevel
	}

	return ret
}
