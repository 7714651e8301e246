package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

var (
	knownFlags = []string{"-s", "-f", "-d", "-r", "-p", "-l", "-seed"}
	boolFlags  = []string{"-seed"}
)

// parseFlags populates cfg from the flags listed in the package doc. Other
// arguments are filtered out first. A malformed value panics.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], knownFlags, boolFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (memory, sqlite, postgres, redis)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "Postgres DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.PasswordHasher, "p", cfg.PasswordHasher, "password hasher (sha256, argon2id)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.SeedDemoData, "seed", cfg.SeedDemoData, "seed demo products into an empty catalog")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// jsonConfigPath returns the value of -c or -config, or "".
func jsonConfigPath() string {
	var path string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"}, nil)

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(args)

	return path
}

// filterArgs keeps only the allowed flags and their values from args.
// It understands "-f value" and "-f=value". A bool flag never takes the
// next argument as a value, except for a literal boolean ("-seed false"),
// which is folded into "-seed=false".
func filterArgs(args []string, allowedFlags []string, boolFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}
	isBool := make(map[string]struct{}, len(boolFlags))
	for _, f := range boolFlags {
		isBool[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}

		if _, ok := isBool[arg]; ok {
			if i+1 < len(args) {
				if _, err := strconv.ParseBool(args[i+1]); err == nil {
					filtered = append(filtered, arg+"="+args[i+1])
					i++
					continue
				}
			}
			filtered = append(filtered, arg)
			continue
		}

		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}
