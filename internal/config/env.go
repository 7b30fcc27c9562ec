package config

import (
	"os"
	"strconv"
)

// FromEnv overlays environment variables on top of a config.
func (c *Config) FromEnv() {
	if v := os.Getenv("HUBOGO_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("HUBOGO_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := getEnvInt("HUBOGO_ESCALATE_URGENT_DAYS"); v > 0 {
		c.Escalation.UrgentAfterDays = v
	}
	if v := getEnvInt("HUBOGO_ESCALATE_VERY_URGENT_DAYS"); v > 0 {
		c.Escalation.VeryUrgentAfterDays = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
