package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"fp-miner/mine_config"
)

// All loaded configuration
var All *AllConfig

var DefaultPath = "./config"
var DebugPath = "./config/debug"

// InitConfig reads config.yml from DefaultPath, panics when it can't be read
func InitConfig() {
	v, err := load(DefaultPath)
	if err != nil {
		panic(err)
	}

	// DEBUG=true overlays debug.yml when it exists
	if os.Getenv("DEBUG") == "true" {
		debugFile := DebugPath + "/debug.yml"
		exists, _ := isExists(debugFile)
		if exists {
			fmt.Printf("%s exists\n", debugFile)
			v.AddConfigPath(DebugPath)
			v.SetConfigName("debug")
			if err := v.MergeInConfig(); err != nil {
				panic(err)
			}
		} else {
			fmt.Printf("%s not exists\n", debugFile)
		}
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
	})

	All = &AllConfig{}
	if err := v.Unmarshal(All); err != nil {
		panic(err)
	}
	All.fillDefaults()
	fmt.Printf("config file content:\n%+v\n", *All)
}

// Load reads config.yml under dir without touching All
func Load(dir string) (*AllConfig, error) {
	v, err := load(dir)
	if err != nil {
		return nil, err
	}
	conf := &AllConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}
	conf.fillDefaults()
	return conf, nil
}

func load(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

// Default configuration used when no config file is around
func Default() *AllConfig {
	conf := &AllConfig{}
	conf.fillDefaults()
	return conf
}

func (c *AllConfig) fillDefaults() {
	if c.Server.HttpPort == "" {
		c.Server.HttpPort = mine_config.GinPort
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Path == "" {
		c.Logger.Path = "./logs"
	}
	if c.Logger.MaxAge == 0 {
		c.Logger.MaxAge = 7
	}
	if c.Logger.RotationTime == 0 {
		c.Logger.RotationTime = 24
	}
	if c.Mine.Column == "" {
		c.Mine.Column = mine_config.ItemColumn
	}
	if c.Mine.Separator == "" {
		c.Mine.Separator = mine_config.ItemSeparator
	}
	if c.Mine.Support == 0 {
		c.Mine.Support = mine_config.Support
	}
	if c.Mine.Confidence == 0 {
		c.Mine.Confidence = mine_config.Confidence
	}
	if c.Mine.Workers == 0 {
		c.Mine.Workers = mine_config.Workers
	}
	if c.Mine.TopK == 0 {
		c.Mine.TopK = mine_config.TopK
	}
	if c.Mine.OutputDir == "" {
		c.Mine.OutputDir = mine_config.ResultDir
	}
	if c.Mine.Format == "" {
		c.Mine.Format = mine_config.FormatCsv
	}
}

// AllConfig whole config file
type AllConfig struct {
	Server ServerConfig `mapstructure:"server_config"`
	Logger LoggerConfig `mapstructure:"logger_config"`
	Mine   MineConfig   `mapstructure:"mine_config"`
}

type ServerConfig struct {
	HttpPort  string `mapstructure:"http_port"`
	SentryDsn string `mapstructure:"sentry_dsn"`
}

type LoggerConfig struct {
	Level        string        `mapstructure:"level"`
	Path         string        `mapstructure:"path"`
	MaxAge       time.Duration `mapstructure:"max_age"`       // MaxAge days
	RotationTime time.Duration `mapstructure:"rotation_time"` // RotationTime hours
	RotationSize uint32        `mapstructure:"rotation_size"` // RotationSize MB
}

// MineConfig defaults of a mining task, request fields override them
type MineConfig struct {
	Column     string  `mapstructure:"column"`
	Separator  string  `mapstructure:"separator"`
	Support    float64 `mapstructure:"support"`    // Support min support as a fraction of the transactions
	Confidence float64 `mapstructure:"confidence"` // Confidence min confidence in (0,1]
	Workers    int     `mapstructure:"workers"`    // Workers 1 mines sequentially
	TopK       int     `mapstructure:"top_k"`      // TopK rows printed per report table
	OutputDir  string  `mapstructure:"output_dir"`
	Format     string  `mapstructure:"format"` // Format csv or yaml
	Filter     string  `mapstructure:"filter"` // Filter optional rule filter expression
}

// isExists whether a file or directory exists
func isExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
