package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación. Orden de resolución:
// secrets.toml (almacén de secretos) → variables de entorno → valores de
// emergencia embebidos.
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Store StoreConfig
	Mail  MailConfig
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

// StoreConfig ubicación del archivo CSV del inventario.
type StoreConfig struct {
	CSVPath string
}

// MailConfig credenciales y relay para la alerta por correo. El núcleo las
// recibe inyectadas; solo este paquete conoce de dónde salen.
type MailConfig struct {
	Emisor      string // dirección remitente
	PasswordApp string // contraseña de aplicación del remitente
	Receptor    string // destinatario fijo de las alertas
	Host        string
	Port        int
}

// Load lee la configuración. Primero intenta el archivo de secretos
// (secrets.toml), luego variables de entorno; lo que falte cae en los
// valores de emergencia.
func Load() (*Config, error) {
	v := viper.New()

	// Almacén de secretos: secrets.toml junto al binario o en ./config
	v.SetConfigName("secrets")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-joyeria"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Store: StoreConfig{
			CSVPath: getString(v, "INVENTORY_CSV_PATH", "inventario_joyas.csv"),
		},
		Mail: MailConfig{
			// Valores de emergencia por si no hay secretos ni entorno
			Emisor:      getString(v, "EMAIL_EMISOR", "emisor@example.com"),
			PasswordApp: getString(v, "EMAIL_PASSWORD_APP", "tu_password_de_aplicacion"),
			Receptor:    getString(v, "EMAIL_RECEPTOR", "receptor@example.com"),
			Host:        getString(v, "SMTP_HOST", "smtp.gmail.com"),
			Port:        getInt(v, "SMTP_PORT", 587),
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
