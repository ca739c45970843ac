// Command redisd runs the store's TCP server (spec.md §6: the process
// entry point / collaborator boundary that config.Config and
// internal/server stay agnostic of).
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rsms/go-log"

	"github.com/rsms/redisd/config"
	"github.com/rsms/redisd/internal/server"
)

// cli options, named in the teacher's entgen/entgen.go "opt_" convention.
var (
	opt_host       string
	opt_port       uint
	opt_maxclients int
	opt_daemonize  bool
	opt_verbose    bool
)

func parseopts() {
	def := config.Default()
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\noptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&opt_host, "host", def.Host, "Address to bind the listener to")
	flag.UintVar(&opt_port, "port", uint(def.Port), "TCP port to bind the listener to")
	flag.IntVar(&opt_maxclients, "maxclients", def.MaxClients, "Maximum simultaneous client connections")
	flag.BoolVar(&opt_daemonize, "daemonize", def.Daemonize, "Recognized, not acted upon")
	flag.BoolVar(&opt_verbose, "v", false, "Verbose logging")
	flag.Parse()
}

func main() {
	parseopts()

	logger := log.New("redisd")
	if opt_verbose {
		logger.Debug("verbose logging enabled")
	}

	cfg := config.Config{
		Host:       opt_host,
		Port:       uint16(opt_port),
		MaxClients: opt_maxclients,
		Daemonize:  opt_daemonize,
	}

	srv := server.New(cfg)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received %s, stopping", sig)
		srv.Stop()
	}()

	if err := srv.Run(); err != nil {
		logger.Warn("%s", err)
		os.Exit(1)
	}
}
