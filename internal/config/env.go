// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names come
// from the env and envPrefix tags, so STORAGE_FILES_UPLOAD_DIR lands in
// cfg.Storage.Files.UploadDir.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("environment config: %w", err)
	}
	return nil
}
