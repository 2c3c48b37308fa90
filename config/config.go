package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOPMART_CONFIG_FILE"

type demoUser struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type checkout struct {
	ProcessingDelay time.Duration `mapstructure:"processing_delay"`
	FreeShippingMin float64       `mapstructure:"free_shipping_min"`
	ShippingFee     float64       `mapstructure:"shipping_fee"`
}

type events struct {
	ClientEventsTopic string `mapstructure:"client_events_topic"`
	Buffer            int64  `mapstructure:"buffer"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	CatalogFile    string     `mapstructure:"catalog_file"`
	DemoUser       demoUser   `mapstructure:"demo_user"`
	Checkout       checkout   `mapstructure:"checkout"`
	Events         events     `mapstructure:"events"`
}

// Load reads the optional config file and overlays it on the defaults.
// A missing file is fine; a malformed one is fatal.
func Load() Config {
	setDefaults()
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		die(err)
	}

	var cfg Config
	err = viper.Unmarshal(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	))
	if err != nil {
		die(err)
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("http_server_addr", ":8080")
	viper.SetDefault("catalog_file", "")
	viper.SetDefault("demo_user.name", "Demo User")
	viper.SetDefault("demo_user.email", "user@gmail.com")
	viper.SetDefault("demo_user.password", "Namasthe")
	viper.SetDefault("checkout.processing_delay", "2s")
	viper.SetDefault("checkout.free_shipping_min", 99)
	viper.SetDefault("checkout.shipping_fee", 9.99)
	viper.SetDefault("events.client_events_topic", "client-events")
	viper.SetDefault("events.buffer", 64)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	CatalogFile=%q

	DemoUser:
	Name=%q
	Email=%q

	Checkout:
	ProcessingDelay=%q
	FreeShippingMin=%v
	ShippingFee=%v

	Events:
	ClientEventsTopic=%q
	Buffer=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.CatalogFile,
		c.DemoUser.Name,
		c.DemoUser.Email,
		c.Checkout.ProcessingDelay,
		c.Checkout.FreeShippingMin,
		c.Checkout.ShippingFee,
		c.Events.ClientEventsTopic,
		c.Events.Buffer,
	)
}
