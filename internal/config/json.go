package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with snake_case keys and string
// durations.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		LogFile       string   `json:"log_file"`
	} `json:"app"`

	Account struct {
		UID   string `json:"uid"`
		Email string `json:"email"`
	} `json:"account"`

	Crypto struct {
		KDF              string `json:"kdf"`
		ArgonTime        uint32 `json:"argon_time"`
		ArgonMemory      uint32 `json:"argon_memory"`
		ArgonThreads     uint8  `json:"argon_threads"`
		PBKDF2Iterations int    `json:"pbkdf2_iterations"`
		Parallelism      int    `json:"parallelism"`
	} `json:"crypto"`

	Session struct {
		IdleTimeout    Duration `json:"idle_timeout"`
		UnlockInterval Duration `json:"unlock_interval"`
		UnlockBurst    int      `json:"unlock_burst"`
	} `json:"session"`

	Storage struct {
		EnvelopeBackend string `json:"envelope_backend"`
		DB              struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Mongo struct {
			URI        string `json:"uri"`
			Database   string `json:"database"`
			Collection string `json:"collection"`
		} `json:"mongo"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter"`

	Workers struct {
		AutoLockInterval Duration `json:"auto_lock_interval"`
	} `json:"workers"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
			LogLevel:      j.App.LogLevel,
			LogFile:       j.App.LogFile,
		},
		Account: Account{
			UID:   j.Account.UID,
			Email: j.Account.Email,
		},
		Crypto: Crypto{
			KDF:              j.Crypto.KDF,
			ArgonTime:        j.Crypto.ArgonTime,
			ArgonMemory:      j.Crypto.ArgonMemory,
			ArgonThreads:     j.Crypto.ArgonThreads,
			PBKDF2Iterations: j.Crypto.PBKDF2Iterations,
			Parallelism:      j.Crypto.Parallelism,
		},
		Session: Session{
			IdleTimeout:    time.Duration(j.Session.IdleTimeout),
			UnlockInterval: time.Duration(j.Session.UnlockInterval),
			UnlockBurst:    j.Session.UnlockBurst,
		},
		Storage: Storage{
			EnvelopeBackend: j.Storage.EnvelopeBackend,
			DB:              DB{DSN: j.Storage.DB.DSN},
			Mongo: Mongo{
				URI:        j.Storage.Mongo.URI,
				Database:   j.Storage.Mongo.Database,
				Collection: j.Storage.Mongo.Collection,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			Token:          j.Adapter.Token,
		},
		Workers: Workers{
			AutoLockInterval: time.Duration(j.Workers.AutoLockInterval),
		},
	}, nil
}

// Duration accepts "1h"-style strings or integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
