package config

import (
	"os"

	authservice "expensedesk/auth/service"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host           string `toml:"host"`
	Port           int    `toml:"port"`
	Debug          bool   `toml:"debug_mode"`
	SqliteFile     string `toml:"sqlite_file"`
	AuthSqliteFile string `toml:"auth_sqlite_file"`
	RedisAddr      string `toml:"redis_addr"`
}

type Config struct {
	Server Server
	Auth   authservice.Config
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		serverCfg.RedisAddr = addr
	}

	var authCfg authservice.Config
	_, err = toml.DecodeFile("configs/auth.toml", &authCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		authCfg.Token = token
	}
	if password := os.Getenv("ROOT_PASSWORD"); password != "" {
		authCfg.RootPassword = password
	}

	return Config{
		Server: serverCfg,
		Auth:   authCfg,
	}, nil
}
