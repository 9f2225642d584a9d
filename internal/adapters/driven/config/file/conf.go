package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// ParseSessionConf reads the legacy two-line session configuration:
//
//	mode: record
//	endpoint: /path/to/session.json
//
// The colon after the field name is optional; older conf files used
// plain space separation ("mode log"). Legacy mode names are accepted
// via domain.ParseMode.
func ParseSessionConf(r io.Reader) (domain.SessionConfig, error) {
	cfg := domain.SessionConfig{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return cfg, fmt.Errorf("%w: conf line %q", domain.ErrInvalidInput, line)
		}

		key := strings.TrimSuffix(strings.ToLower(fields[0]), ":")
		value := fields[1]

		switch key {
		case "mode":
			mode, err := domain.ParseMode(value)
			if err != nil {
				return cfg, err
			}
			cfg.Mode = mode
		case "endpoint":
			cfg.Endpoint = value
		default:
			return cfg, fmt.Errorf("%w: unknown conf field %q", domain.ErrInvalidInput, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg, fmt.Errorf("reading conf: %w", err)
	}

	if cfg.Mode == "" {
		return cfg, fmt.Errorf("%w: conf missing mode line", domain.ErrInvalidInput)
	}
	return cfg, nil
}

// ParseSessionConfFile loads a session conf from path. An empty path
// yields the default configuration: live mode, no endpoint.
func ParseSessionConfFile(path string) (domain.SessionConfig, error) {
	if path == "" {
		return domain.DefaultSessionConfig(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.SessionConfig{}, fmt.Errorf("opening conf %s: %w", path, err)
	}
	defer f.Close()

	return ParseSessionConf(f)
}
