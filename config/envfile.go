package config

import (
	"os"
	"strings"
)

// ParseEnvFile parses KEY=VALUE lines. Blank lines and lines starting with
// '#' are skipped; the first '=' separates key from value so values may
// themselves contain '='. Pairs with an empty key or value are dropped.
func ParseEnvFile(text string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "=")
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(strings.Join(parts[1:], "="))
		if key == "" || value == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

// ParseEnviron turns an os.Environ-style slice into a map. Variables set to
// the empty string count as unset so an env file can still supply them.
func ParseEnviron(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" || value == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

// readEnvFile returns the parsed file, or (nil, false, nil) if it does not exist.
func readEnvFile(path string) (map[string]string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return ParseEnvFile(string(data)), true, nil
}

// mergeEnv overlays process variables on top of file variables: a file value
// only applies when the process does not already define the key.
func mergeEnv(process map[string]string, files ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		for k, v := range files[i] {
			merged[k] = v
		}
	}
	for k, v := range process {
		merged[k] = v
	}
	return merged
}
