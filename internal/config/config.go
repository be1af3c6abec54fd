package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort       int
	GinMode        string
	StorageDriver  string
	MetricsEnabled bool
	DraftTTL       time.Duration

	AWS struct {
		Region           string
		AccessKeyID      string
		SecretAccessKey  string
		DynamoDBEndpoint string
	}

	Tables struct {
		Materials      string
		PriceTables    string
		Orders         string
		OrderMaterials string
		Customers      string
	}

	Postgres struct {
		URL         string
		AutoMigrate bool
	}

	Geocoder struct {
		URL       string
		UserAgent string
		Timeout   time.Duration
	}

	Company struct {
		Name  string
		Phone string
	}
}

// Load reads configuration from the environment and, when path is not empty,
// from a config file. Environment variables always win over the file.
//
// Supported env vars:
//   - HTTP_PORT (default 8080), GIN_MODE
//   - STORAGE_DRIVER: dynamodb (default) | postgres
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - MATERIALS_TABLE, PRICE_TABLES_TABLE, ORDERS_TABLE, ORDER_MATERIALS_TABLE, CUSTOMERS_TABLE
//   - DATABASE_URL, POSTGRES_AUTO_MIGRATE
//   - GEOCODER_URL (empty disables reverse geocoding), GEOCODER_USER_AGENT, GEOLOCATION_TIMEOUT
//   - DRAFT_TTL, COMPANY_NAME, COMPANY_PHONE, METRICS_ENABLED
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var c Config
	c.HTTPPort = v.GetInt("HTTP_PORT")
	c.GinMode = v.GetString("GIN_MODE")
	c.StorageDriver = strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER")))
	c.MetricsEnabled = v.GetBool("METRICS_ENABLED")
	c.DraftTTL = v.GetDuration("DRAFT_TTL")

	c.AWS.Region = v.GetString("AWS_REGION")
	c.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	c.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	c.AWS.DynamoDBEndpoint = v.GetString("DYNAMODB_ENDPOINT")

	c.Tables.Materials = v.GetString("MATERIALS_TABLE")
	c.Tables.PriceTables = v.GetString("PRICE_TABLES_TABLE")
	c.Tables.Orders = v.GetString("ORDERS_TABLE")
	c.Tables.OrderMaterials = v.GetString("ORDER_MATERIALS_TABLE")
	c.Tables.Customers = v.GetString("CUSTOMERS_TABLE")

	c.Postgres.URL = v.GetString("DATABASE_URL")
	c.Postgres.AutoMigrate = v.GetBool("POSTGRES_AUTO_MIGRATE")

	c.Geocoder.URL = strings.TrimRight(v.GetString("GEOCODER_URL"), "/")
	c.Geocoder.UserAgent = v.GetString("GEOCODER_USER_AGENT")
	c.Geocoder.Timeout = v.GetDuration("GEOLOCATION_TIMEOUT")

	c.Company.Name = v.GetString("COMPANY_NAME")
	c.Company.Phone = v.GetString("COMPANY_PHONE")

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("DRAFT_TTL", 12*time.Hour)

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")

	v.SetDefault("MATERIALS_TABLE", "materials")
	v.SetDefault("PRICE_TABLES_TABLE", "price_tables")
	v.SetDefault("ORDERS_TABLE", "orders")
	v.SetDefault("ORDER_MATERIALS_TABLE", "order_materials")
	v.SetDefault("CUSTOMERS_TABLE", "customers")

	v.SetDefault("POSTGRES_AUTO_MIGRATE", false)

	v.SetDefault("GEOCODER_URL", "")
	v.SetDefault("GEOCODER_USER_AGENT", "refrigeracao-os/1.0")
	v.SetDefault("GEOLOCATION_TIMEOUT", 5*time.Second)

	v.SetDefault("COMPANY_NAME", "Refrigeração")
	v.SetDefault("COMPANY_PHONE", "")
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB:
	case StoragePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.HTTPPort <= 0 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.DraftTTL <= 0 {
		return fmt.Errorf("invalid DRAFT_TTL %s", c.DraftTTL)
	}
	return nil
}
