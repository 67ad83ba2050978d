package service

type Config struct {
	Token        string `toml:"token"`
	Expiration   string `toml:"expiration"`
	CacheTTL     string `toml:"cache_ttl"`
	RootEmail    string `toml:"root_email"`
	RootName     string `toml:"root_name"`
	RootPassword string `toml:"root_password"`
	Rules        []Rule `toml:"rules"`
}

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
	Order  int      `toml:"order"`
}
