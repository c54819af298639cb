package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	DocsPath string
}

// MongoConfig conexión a la base documental.
type MongoConfig struct {
	URI            string
	Database       string
	Transactions   bool // requiere replica set
	ConnectTimeout int  // segundos
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig topes de listado y forma canónica de las listas de relación de Category.
type CatalogConfig struct {
	ListLimit         int
	ItemListLimit     int
	BrandsForm        string // bare | wrapped
	SubCategoriesForm string // bare | wrapped
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. MONGOOSE_CONNECTION se acepta como alias de MONGO_URI.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	uri := getString(v, "MONGO_URI", "")
	if uri == "" {
		uri = getString(v, "MONGOOSE_CONNECTION", "mongodb://localhost:27017")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "fakeshop-admin-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			DocsPath: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
		Mongo: MongoConfig{
			URI:            uri,
			Database:       getString(v, "DB_NAME", "fake_shop"),
			Transactions:   getBool(v, "MONGO_TRANSACTIONS", false),
			ConnectTimeout: getInt(v, "MONGO_CONNECT_TIMEOUT_SECONDS", 10),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalog: CatalogConfig{
			ListLimit:         getInt(v, "CATALOG_LIST_LIMIT", 100),
			ItemListLimit:     getInt(v, "ITEM_LIST_LIMIT", 1000),
			BrandsForm:        getString(v, "CATEGORY_BRANDS_FORM", "bare"),
			SubCategoriesForm: getString(v, "CATEGORY_SUBCATEGORIES_FORM", "wrapped"),
		},
	}

	if cfg.Catalog.ListLimit <= 0 || cfg.Catalog.ItemListLimit <= 0 {
		return nil, fmt.Errorf("los topes de listado deben ser positivos")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		default:
			b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return b
		}
	}
	return def
}
