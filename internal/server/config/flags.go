package config

import (
	"flag"
	"os"

	"github.com/ASLawan/alx-files-manager/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   MongoDB host
//	-p string   MongoDB port
//	-n string   MongoDB database name
//	-r string   Redis address
//	-f string   blob-store root directory
//	-b string   storage backend ("local" or "s3")
//
// The arguments are pre-filtered with flagx.FilterArgs so the -c/-config
// flag handled by the JSON overlay does not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-n", "-r", "-f", "-b"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DBHost, "d", config.DBHost, "MongoDB host")
	fs.StringVar(&config.DBPort, "p", config.DBPort, "MongoDB port")
	fs.StringVar(&config.DBDatabase, "n", config.DBDatabase, "MongoDB database name")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address")
	fs.StringVar(&config.FolderPath, "f", config.FolderPath, "blob storage root directory")
	fs.StringVar(&config.StorageBackend, "b", config.StorageBackend, "storage backend (local or s3)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
