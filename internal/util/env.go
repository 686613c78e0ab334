package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/subosito/gotenv"
)

// DotEnvTryLoad loads the given dotenv file into the process environment if it exists.
// Existing environment variables take precedence.
func DotEnvTryLoad(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := gotenv.Load(path); err != nil {
		log.Warn().Str("path", path).Err(err).Msg("Failed to load dotenv file")
	}
}

func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	strVal := GetEnv(key, "")

	if len(strVal) == 0 {
		return defaultVal
	}

	sep := ","
	if len(separator) >= 1 {
		sep = separator[0]
	}

	return strings.Split(strVal, sep)
}

// GetEnvAsChainEndpoints parses a chain to RPC endpoint mapping of the form
// "1=https://a|https://b,137=https://c".
func GetEnvAsChainEndpoints(key string, defaultVal map[int64][]string) map[int64][]string {
	strVal := GetEnv(key, "")

	if len(strVal) == 0 {
		return defaultVal
	}

	endpoints := make(map[int64][]string)

	for _, entry := range strings.Split(strVal, ",") {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			log.Warn().Str("key", key).Str("entry", entry).Msg("Skipping malformed chain endpoint entry")
			continue
		}

		chainID, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			log.Warn().Str("key", key).Str("entry", entry).Msg("Skipping chain endpoint entry with invalid chain id")
			continue
		}

		endpoints[chainID] = strings.Split(parts[1], "|")
	}

	return endpoints
}

// GetMgmtSecret returns the management secret from the environment or generates
// a random one, logging it so local development still works.
func GetMgmtSecret(envKey string) string {
	val := GetEnv(envKey, "")

	if len(val) > 0 {
		return val
	}

	val = GenerateRandomHexString(16)
	log.Warn().Str("envKey", envKey).Str("generated", val).Msg("Management secret is not set, using a random secret")

	return val
}
