// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"code.lyraprotocol.io/lyra/config"
	"code.lyraprotocol.io/lyra/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	root := t.TempDir()

	written := config.NewDefaultConfig()
	written.Metrics.Enabled = true
	written.Engine.Level.Level = logging.DebugLevel
	require.NoError(t, config.Write(root, written))

	read, err := config.Read(root)
	require.NoError(t, err)

	assert.True(t, read.Metrics.Enabled)
	assert.Equal(t, logging.DebugLevel, read.Engine.Level.Level)
	assert.Equal(t, written.Metrics.Port, read.Metrics.Port)
	require.Len(t, read.Assets, len(written.Assets))
	assert.Equal(t, written.Assets[0].Symbol, read.Assets[0].Symbol)
}

func TestConfigReadMissingFile(t *testing.T) {
	_, err := config.Read(t.TempDir())
	assert.Error(t, err)
}

func TestConfigPartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	partial := "[Metrics]\nEnabled = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(partial), 0o644))

	read, err := config.Read(root)
	require.NoError(t, err)

	assert.True(t, read.Metrics.Enabled)
	// everything the file does not set keeps its default
	def := config.NewDefaultConfig()
	assert.Equal(t, def.Metrics.Port, read.Metrics.Port)
	assert.Equal(t, def.Logging.Environment, read.Logging.Environment)
}
