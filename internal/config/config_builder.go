// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder stacks configuration layers. Layers added later win over
// earlier ones field by field. Errors from every layer are collected and
// reported together by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

// add appends layer, or records err when the layer could not be loaded.
func (b *configBuilder) add(layer *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if layer != nil {
		b.configs = append(b.configs, layer)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaults(), nil)
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := new(StructuredConfig)
	if err := parseEnv(layer); err != nil {
		return b.add(nil, err)
	}
	return b.add(layer, nil)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withJSON loads the file named by the last layer that sets a JSON path.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("load config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}

	files := &merged.Storage.Files
	files.AllowedExtensions = normalizeExtensions(files.AllowedExtensions)

	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
