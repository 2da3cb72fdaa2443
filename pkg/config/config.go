package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Mongo     MongoConfig
	Hierarchy HierarchyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// MongoConfig configuración de la conexión a MongoDB.
// El pool es pequeño y de capacidad fija: cada operación toma una conexión
// del pool y la devuelve al terminar, con éxito o con error.
type MongoConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64 // capacidad fija del pool
	MaxIdleSeconds int    // tiempo máximo de inactividad de una conexión
	TimeoutSeconds int    // timeout por operación del driver
}

// HierarchyConfig opciones de validación de la jerarquía Location→Department→Category.
type HierarchyConfig struct {
	// Strict activa la validación de la cadena de ancestros en las operaciones
	// de Category: el department del path debe pertenecer al location del path.
	// En modo permisivo (por defecto) cada hijo se valida solo contra su padre
	// inmediato, que es el comportamiento histórico del servicio.
	Strict bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, MONGO_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "facility-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Mongo: MongoConfig{
			URI:            getString(v, "MONGO_URL", "mongodb://localhost:27017"),
			Database:       getString(v, "MONGO_DATABASE", "sst_facilities"),
			MaxPoolSize:    uint64(getInt(v, "MONGO_MAX_POOL_SIZE", 3)),
			MaxIdleSeconds: getInt(v, "MONGO_MAX_IDLE_SECONDS", 30),
			TimeoutSeconds: getInt(v, "MONGO_TIMEOUT_SECONDS", 10),
		},
		Hierarchy: HierarchyConfig{
			Strict: getBool(v, "HIERARCHY_STRICT", false),
		},
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
			n, err := strconv.Atoi(v.GetString(key))
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
		return v.GetBool(key)
	}
	return def
}
