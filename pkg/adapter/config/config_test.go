// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lavadero/cwweb/pkg/adapter/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err, "writing temporary config file")
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database:
    host: 127.0.0.1
    port: 5432
    name: cwweb
    pass-dir: /var/lib/cwweb/db
gin:
    logger: true
usecases:
    services:
        default-cost: 25.5
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", c.Database.Host)
	require.Equal(t, 5432, c.Database.Port)
	require.Equal(t, "cwweb", c.Database.Name)
	require.Equal(t, "/var/lib/cwweb/db", c.Database.PassDir)
	require.Equal(t, "scram-sha-256", c.Database.AuthMethod)
	require.NotNil(t, c.Database.Hasher())
	require.NotNil(t, c.Gin.Logger)
	require.True(t, *c.Gin.Logger)
	require.NotNil(t, c.Gin.Recovery, "missing settings take defaults")
	require.False(t, *c.Gin.Recovery)
	require.NotNil(t, c.Usecases.Services.DefaultCost)
	require.Equal(t, 25.5, *c.Usecases.Services.DefaultCost)
}

func TestLoadBadAuthMethod(t *testing.T) {
	path := writeConfig(t, `
database:
    host: 127.0.0.1
    port: 5432
    name: cwweb
    auth-method: md5
`)
	_, err := config.Load(path)
	require.ErrorContains(
		t, err, "unsupported database authentication method",
	)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-config.yaml")
	_, err := config.Load(path)
	require.ErrorContains(t, err, "reading config file")
}
