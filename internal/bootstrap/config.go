package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort           string `mapstructure:"SERVER_PORT"`
	MongoUri             string `mapstructure:"MONGO_URI"`
	RedisUrl             string `mapstructure:"REDIS_URL"`
	DiscordToken         string `mapstructure:"DISCORD_TOKEN"`
	GuildID              string `mapstructure:"GUILD_ID"`
	WordsFile            string `mapstructure:"WORDS_FILE"`
	IsLocalCors          bool   `mapstructure:"LOCAL_CORS"`
	PageLimitLeaderboard int    `mapstructure:"PAGE_LIMIT_LEADERBOARD"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
