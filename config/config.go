package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/adrianliechti/briefing/pkg/broker"
	"github.com/adrianliechti/briefing/pkg/pipeline"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

// Environment holds the process settings read before the config file.
type Environment struct {
	ConfigFile string `env:"CONFIG_FILE" envDefault:"config.yaml"`
	Address    string `env:"ADDRESS" envDefault:":8080"`

	Debug     bool `env:"DEBUG"`
	Telemetry bool `env:"TELEMETRY"`

	ServiceName    string `env:"SERVICE_NAME" envDefault:"briefing"`
	ServiceVersion string `env:"SERVICE_VERSION" envDefault:"dev"`
}

func LoadEnvironment() (*Environment, error) {
	e, err := env.ParseAs[Environment]()

	if err != nil {
		return nil, err
	}

	return &e, nil
}

type Config struct {
	Address string

	Pipeline *pipeline.Pipeline
	Broker   broker.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	return build(file)
}

func build(file *configFile) (*Config, error) {
	c := &Config{
		Address: ":8080",
	}

	summarizer, err := createSummarizer(file.Summarizer)

	if err != nil {
		return nil, err
	}

	exporter, err := createExporter(file.Exporter)

	if err != nil {
		return nil, err
	}

	storage, err := createStorage(file.Storage)

	if err != nil {
		return nil, err
	}

	options := []pipeline.Option{
		pipeline.WithComposer(createComposer(file.Document)),
		pipeline.WithMaxTokens(file.Summarizer.MaxTokens),
		pipeline.WithConcurrency(file.Pipeline.Concurrency),
	}

	c.Pipeline = pipeline.New(summarizer, exporter, storage, options...)

	if file.Broker != nil && file.Broker.Role != "" {
		p, err := createBroker(*file.Broker)

		if err != nil {
			return nil, err
		}

		c.Broker = p
	}

	return c, nil
}

type configFile struct {
	Summarizer summarizerConfig `yaml:"summarizer"`

	Storage  storageConfig  `yaml:"storage"`
	Exporter exporterConfig `yaml:"exporter"`
	Document documentConfig `yaml:"document"`

	Broker *brokerConfig `yaml:"broker"`

	Pipeline pipelineConfig `yaml:"pipeline"`
}

type pipelineConfig struct {
	Concurrency int `yaml:"concurrency"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return parseData(data)
}

func parseData(data []byte) (*configFile, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("config file is empty")
		}

		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
