package config

import (
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvAPIURL        = "JOBSEEKER_API_URL"
	EnvToken         = "JOBSEEKER_API_TOKEN"
	EnvSessionCookie = "JOBSEEKER_SESSION_COOKIE"
	EnvTimeout       = "JOBSEEKER_TIMEOUT"
	EnvVerbose       = "JOBSEEKER_VERBOSE"
)

// FromEnv builds a Config from environment variables. Unset variables leave
// fields empty so they can be filled by MergeWithDefaults.
func FromEnv() Config {
	verbose, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return Config{
		APIURL:        os.Getenv(EnvAPIURL),
		Token:         os.Getenv(EnvToken),
		SessionCookie: os.Getenv(EnvSessionCookie),
		Timeout:       os.Getenv(EnvTimeout),
		Verbose:       verbose,
	}
}

// Resolve layers flags over the optional config file over the environment.
func Resolve(path string, flags Config) (Config, error) {
	merged := flags
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	merged = merged.MergeWithDefaults(FromEnv())
	if merged.Timeout == "" {
		merged.Timeout = DefaultTimeout
	}
	return merged, nil
}
