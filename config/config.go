// Package config defines the collaborator contract of spec.md §6: a small
// options struct with exactly the recognized fields, each with its stated
// default. Loading it from a file or flags is outside this core's scope
// (spec.md §1); callers construct it directly or via Default().
package config

// Config holds the server's externally configurable options.
type Config struct {
	// Host is the address the listener binds to.
	Host string

	// Port is the TCP port the listener binds to.
	Port uint16

	// MaxClients caps the number of simultaneously accepted connections;
	// beyond it, new connections are accepted then immediately closed
	// (spec.md §4.D).
	MaxClients int

	// Daemonize is recognized but never acted upon: the teacher's
	// collaborator boundary (process entry point, forking, pidfiles) is out
	// of this core's scope, and spec.md §9 leaves its behavior
	// unimplemented.
	Daemonize bool
}

// Default returns the configuration spec.md §6 specifies as default.
func Default() Config {
	return Config{
		Host:       "127.0.0.1",
		Port:       6379,
		MaxClients: 10000,
		Daemonize:  false,
	}
}
