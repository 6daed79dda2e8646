package main

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config drives one report run. Values come from a YAML file, overridable
// via environment, with flags taking final precedence for the paths most
// often changed between runs.
type Config struct {
	RulesPath   string `yaml:"rules_path" env:"RULES_PATH" env-required:"true"`
	PartiesPath string `yaml:"parties_path" env:"PARTIES_PATH" env-required:"true"`
	CatalogPath string `yaml:"catalog_path" env:"CATALOG_PATH" env-required:"true"`
	DBPath      string `yaml:"db_path" env:"DB_PATH"`
	OutDir      string `yaml:"out_dir" env:"OUT_DIR" env-default:"./reports"`
	Workers     int    `yaml:"workers" env:"WORKERS" env-default:"4"`
	AfterYear   int    `yaml:"after_year" env:"AFTER_YEAR" env-default:"0"`
}

// mustLoad reads configuration with flag > env > file precedence.
func mustLoad() *Config {
	configPathFlag := flag.String("config", "", "Path to the config file")
	dbPathFlag := flag.String("db", "", "Database path override")
	outDirFlag := flag.String("out", "", "Output directory override")
	flag.Parse()

	configPath := *configPathFlag
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	if configPath == "" {
		configPath = "./configs/report.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("error loading config file: " + err.Error())
	}

	if *dbPathFlag != "" {
		cfg.DBPath = *dbPathFlag
	}
	if *outDirFlag != "" {
		cfg.OutDir = *outDirFlag
	}

	return &cfg
}
