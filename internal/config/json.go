package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		Namespace        string   `json:"namespace"`
		TickInterval     Duration `json:"tick_interval"`
		OperationTimeout Duration `json:"operation_timeout"`
		ExportFormat     string   `json:"export_format"`
		TerminatePages   []string `json:"terminate_pages"`
	} `json:"app,omitempty"`

	Storage struct {
		BaseDir string `json:"base_dir"`
		Backend string `json:"backend"`

		Files struct {
			SecretsDir string `json:"secrets_dir"`
		} `json:"files,omitempty"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Badger struct {
			Dir string `json:"dir"`
		} `json:"badger,omitempty"`

		S3 struct {
			Endpoint        string `json:"endpoint"`
			Bucket          string `json:"bucket"`
			Prefix          string `json:"prefix"`
			Region          string `json:"region"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UseSSL          bool   `json:"use_ssl"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Keys struct {
		PrivateKeyPath string `json:"private_key_path"`
		ExportPath     string `json:"export_path"`
	} `json:"keys,omitempty"`

	Log struct {
		Path  string `json:"path"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	s3 := jsonCfg.Storage.S3
	cfg := &StructuredConfig{
		App: App{
			Namespace:        jsonCfg.App.Namespace,
			TickInterval:     time.Duration(jsonCfg.App.TickInterval),
			OperationTimeout: time.Duration(jsonCfg.App.OperationTimeout),
			ExportFormat:     jsonCfg.App.ExportFormat,
			TerminatePages:   jsonCfg.App.TerminatePages,
		},
		Storage: Storage{
			BaseDir: jsonCfg.Storage.BaseDir,
			Backend: jsonCfg.Storage.Backend,
			Files:   Files{SecretsDir: jsonCfg.Storage.Files.SecretsDir},
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Badger:  Badger{Dir: jsonCfg.Storage.Badger.Dir},
			S3: S3{
				Endpoint:        s3.Endpoint,
				Bucket:          s3.Bucket,
				Prefix:          s3.Prefix,
				Region:          s3.Region,
				AccessKeyID:     s3.AccessKeyID,
				SecretAccessKey: s3.SecretAccessKey,
				UseSSL:          s3.UseSSL,
			},
		},
		Keys: Keys{
			PrivateKeyPath: jsonCfg.Keys.PrivateKeyPath,
			ExportPath:     jsonCfg.Keys.ExportPath,
		},
		Log: Log{
			Path:  jsonCfg.Log.Path,
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
