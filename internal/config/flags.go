package config

import (
	"errors"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BindFlags registers the configuration flags on fs and returns the config
// they write into. The returned value is only meaningful after fs is parsed.
//
// Flags:
//
//	-c/--config          json file path with configs
//	-n/--namespace       vault namespace
//	-b/--base-dir        vault base directory
//	--backend            secret store backend (files, sqlite, badger, s3)
//	--secrets-dir        directory of the files backend
//	-d/--dsn             sqlite DSN
//	--badger-dir         badger database directory
//	--s3-endpoint        object store address in format [host]:[port]
//	--s3-bucket          object store bucket
//	--s3-prefix          object name prefix
//	--s3-ssl             use TLS for the object store
//	-k/--private-key     master key path
//	--export-path        default export location
//	--export-format      legacy or v2
//	--tick               tick interval (e.g. "8ms")
//	--timeout            vault operation timeout (e.g. "10s")
//	--terminate-pages    pages where q and Ctrl+c quit
//	--log-file           client log file
//	--log-level          client log level
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}
	s3Endpoint := &NetAddress{}
	s3 := &cfg.Storage.S3

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVarP(&cfg.App.Namespace, "namespace", "n", "", "Vault namespace")
	fs.StringVarP(&cfg.Storage.BaseDir, "base-dir", "b", "", "Vault base directory")
	fs.StringVar(&cfg.Storage.Backend, "backend", "", "Secret store backend: files, sqlite, badger or s3")
	fs.StringVar(&cfg.Storage.Files.SecretsDir, "secrets-dir", "", "Secrets directory for the files backend")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "SQLite DSN")
	fs.StringVar(&cfg.Storage.Badger.Dir, "badger-dir", "", "Badger database directory")
	fs.Var(&s3EndpointValue{addr: s3Endpoint, target: &s3.Endpoint}, "s3-endpoint", "Object store address host:port")
	fs.StringVar(&s3.Bucket, "s3-bucket", "", "Object store bucket")
	fs.StringVar(&s3.Prefix, "s3-prefix", "", "Object name prefix")
	fs.BoolVar(&s3.UseSSL, "s3-ssl", false, "Use TLS for the object store")
	fs.StringVarP(&cfg.Keys.PrivateKeyPath, "private-key", "k", "", "Master key path")
	fs.StringVar(&cfg.Keys.ExportPath, "export-path", "", "Default export location")
	fs.StringVar(&cfg.App.ExportFormat, "export-format", "", "Export format: legacy or v2")
	fs.DurationVar(&cfg.App.TickInterval, "tick", 0, "Tick interval (e.g. 8ms)")
	fs.DurationVar(&cfg.App.OperationTimeout, "timeout", 0, "Vault operation timeout (e.g. 10s)")
	fs.StringSliceVar(&cfg.App.TerminatePages, "terminate-pages", nil, "Pages where q and Ctrl+c quit")
	fs.StringVar(&cfg.Log.Path, "log-file", "", "Client log file")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Client log level")

	return cfg
}

// s3EndpointValue validates the endpoint as a NetAddress and stores its
// canonical form in the config field.
type s3EndpointValue struct {
	addr   *NetAddress
	target *string
}

func (v *s3EndpointValue) String() string { return v.addr.String() }

func (v *s3EndpointValue) Set(s string) error {
	if err := v.addr.Set(s); err != nil {
		return err
	}
	*v.target = v.addr.String()
	return nil
}

func (v *s3EndpointValue) Type() string { return v.addr.Type() }

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be a name or an IP address; the port must be positive.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
